package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ledgerbook/backend/internal/httputil"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/validation"
	"golang.org/x/exp/slices"
)

// RegisterIncomeRoutes registers the routes for incomes with
// the RouterGroup that is passed.
func (co Controller) RegisterIncomeRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsIncomeList)
		r.GET("", co.GetIncomes)
		r.POST("", co.CreateIncome)
	}

	// Income with ID
	{
		r.OPTIONS("/:id", co.OptionsIncomeDetail)
		r.GET("/:id", co.GetIncome)
		r.PATCH("/:id", co.UpdateIncome)
		r.DELETE("/:id", co.DeleteIncome)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Incomes
// @Success		204
// @Router			/v1/incomes [options]
func OptionsIncomeList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Incomes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/incomes/{id} [options]
func (co Controller) OptionsIncomeDetail(c *gin.Context) {
	co.resourceOptionsDetail(c, &models.Income{})
}

// @Summary		Create income
// @Description	Validates and creates a new income record. The date defaults to today
// @Tags			Incomes
// @Accept			json
// @Produce		json
// @Success		201		{object}	IncomeResponse
// @Failure		400		{object}	IncomeResponse
// @Failure		500		{object}	IncomeResponse
// @Param			income	body		validation.IncomeInput	true	"Income"
// @Router			/v1/incomes [post]
func (co Controller) CreateIncome(c *gin.Context) {
	var editable validation.IncomeInput

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	income, err := co.validator.Income(editable, validation.Create)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	err = co.db.Create(&income).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	data := newIncome(c, income)
	c.JSON(http.StatusCreated, IncomeResponse{Data: &data})
}

// @Summary		Get incomes
// @Description	Returns a list of incomes, newest first
// @Tags			Incomes
// @Produce		json
// @Success		200			{object}	IncomeListResponse
// @Failure		400			{object}	IncomeListResponse
// @Failure		500			{object}	IncomeListResponse
// @Router			/v1/incomes [get]
// @Param			from		query	string	false	"Only incomes on or after this date, YYYY-MM-DD"
// @Param			until		query	string	false	"Only incomes on or before this date, YYYY-MM-DD"
// @Param			source		query	string	false	"Filter by source"
// @Param			offset		query	uint	false	"The offset of the first Income returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Incomes to return. Defaults to 50."
func (co Controller) GetIncomes(c *gin.Context) {
	var filter IncomeQueryFilter
	err := c.ShouldBindQuery(&filter)
	if err != nil {
		s := errQueryString.Error()
		c.JSON(http.StatusBadRequest, IncomeListResponse{
			Error: &s,
		})
		return
	}

	setFields := httputil.GetURLFields(c.Request.URL, filter)

	f, err := co.incomeFilter(filter)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeListResponse{
			Error: &s,
		})
		return
	}

	incomes, err := co.store.ListIncome(c.Request.Context(), f)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeListResponse{
			Error: &s,
		})
		return
	}

	limit := defaultLimit
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}

	page, pagination := paginate(incomes, filter.Offset, limit)

	data := make([]Income, 0, len(page))
	for _, income := range page {
		data = append(data, newIncome(c, income))
	}

	c.JSON(http.StatusOK, IncomeListResponse{
		Data:       data,
		Pagination: pagination,
	})
}

// @Summary		Get income
// @Description	Returns a specific income
// @Tags			Incomes
// @Produce		json
// @Success		200	{object}	IncomeResponse
// @Failure		400	{object}	IncomeResponse
// @Failure		404	{object}	IncomeResponse
// @Failure		500	{object}	IncomeResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/incomes/{id} [get]
func (co Controller) GetIncome(c *gin.Context) {
	income, err := getResource[models.Income](co, c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	data := newIncome(c, income)
	c.JSON(http.StatusOK, IncomeResponse{Data: &data})
}

// @Summary		Update income
// @Description	Update an existing income. Only values to be updated need to be specified. The resulting income is validated as a whole.
// @Tags			Incomes
// @Accept			json
// @Produce		json
// @Success		200		{object}	IncomeResponse
// @Failure		400		{object}	IncomeResponse
// @Failure		404		{object}	IncomeResponse
// @Failure		500		{object}	IncomeResponse
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			income	body		validation.IncomeInput	true	"Income"
// @Router			/v1/incomes/{id} [patch]
func (co Controller) UpdateIncome(c *gin.Context) {
	income, err := getResource[models.Income](co, c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	editable := incomeEditable(income)
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	update, err := co.validator.Income(editable, validation.Update)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	err = co.db.Model(&income).Select("Date", "Source", "Amount", "Description").Updates(update).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	err = co.db.First(&income, "id = ?", income.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	data := newIncome(c, income)
	c.JSON(http.StatusOK, IncomeResponse{Data: &data})
}

// @Summary		Delete income
// @Description	Deletes an income
// @Tags			Incomes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/incomes/{id} [delete]
func (co Controller) DeleteIncome(c *gin.Context) {
	income, err := getResource[models.Income](co, c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = co.db.Delete(&income).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
