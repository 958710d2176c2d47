package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ledgerbook/backend/internal/httputil"
	"github.com/ledgerbook/backend/internal/types"
	"github.com/ledgerbook/backend/internal/validation"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgetList)
		r.GET("", co.GetBudgets)
		r.POST("", co.SetBudget)
	}

	// Budget for a category
	{
		r.OPTIONS("/:category", co.OptionsBudgetDetail)
		r.GET("/:category", co.GetBudget)
		r.DELETE("/:category", co.DeleteBudget)
	}
}

// category binds the category from the URI and validates it.
func (co Controller) category(c *gin.Context) (types.Category, error) {
	var uri URICategory
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return "", err
	}

	return co.validator.Category(uri.Category)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			category	path		string	true	"Name of the category"
// @Router			/v1/budgets/{category} [options]
func (co Controller) OptionsBudgetDetail(c *gin.Context) {
	category, err := co.category(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = co.store.FindBudget(c.Request.Context(), category)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Set budget
// @Description	Sets the monthly limit for a category. If the category already has a budget, only its limit is changed.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse	"The existing budget was updated"
// @Success		201		{object}	BudgetResponse	"The budget was created"
// @Failure		400		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			budget	body		validation.BudgetInput	true	"Budget"
// @Router			/v1/budgets [post]
func (co Controller) SetBudget(c *gin.Context) {
	var editable validation.BudgetInput

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	category, limit, err := co.validator.Budget(editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	_, created, err := co.budgets.Set(c.Request.Context(), category, limit)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	report, err := co.budgets.Status(c.Request.Context(), category)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	code := http.StatusOK
	if created {
		code = http.StatusCreated
	}

	data := co.newBudget(c, report)
	c.JSON(code, BudgetResponse{Data: &data})
}

// @Summary		Get budgets
// @Description	Returns all budgets with their state for the current month, ordered by category
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetListResponse
// @Failure		500	{object}	BudgetListResponse
// @Router			/v1/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	reports, err := co.budgets.StatusAll(c.Request.Context())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Budget, 0, len(reports))
	for _, report := range reports {
		data = append(data, co.newBudget(c, report))
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: data})
}

// @Summary		Get budget
// @Description	Returns the budget for a category with its state for the current month
// @Tags			Budgets
// @Produce		json
// @Success		200			{object}	BudgetResponse
// @Failure		400			{object}	BudgetResponse
// @Failure		404			{object}	BudgetResponse
// @Failure		500			{object}	BudgetResponse
// @Param			category	path		string	true	"Name of the category"
// @Router			/v1/budgets/{category} [get]
func (co Controller) GetBudget(c *gin.Context) {
	category, err := co.category(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	report, err := co.budgets.Status(c.Request.Context(), category)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	data := co.newBudget(c, report)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// @Summary		Delete budget
// @Description	Deletes the budget for a category
// @Tags			Budgets
// @Success		204
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			category	path		string	true	"Name of the category"
// @Router			/v1/budgets/{category} [delete]
func (co Controller) DeleteBudget(c *gin.Context) {
	category, err := co.category(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = co.store.DeleteBudget(c.Request.Context(), category)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
