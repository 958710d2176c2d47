package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ledgerbook/backend/internal/analytics"
	"github.com/ledgerbook/backend/internal/httputil"
	"github.com/ledgerbook/backend/internal/models"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

const (
	defaultTrendMonths = 6
	maxTrendMonths     = 24
)

// RegisterAnalyticsRoutes registers the routes for analytics with
// the RouterGroup that is passed.
func (co Controller) RegisterAnalyticsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsAnalytics)
	r.GET("", GetAnalytics)

	for _, path := range []string{"/categories", "/sources", "/daily", "/monthly", "/summary", "/trend"} {
		r.OPTIONS(path, OptionsAnalytics)
	}

	r.GET("/categories", co.GetCategoryBreakdown)
	r.GET("/sources", co.GetSourceBreakdown)
	r.GET("/daily", co.GetDailySeries)
	r.GET("/monthly", co.GetMonthlyTotals)
	r.GET("/summary", co.GetSummary)
	r.GET("/trend", co.GetTrend)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Analytics
// @Success		204
// @Router			/v1/analytics [options]
func OptionsAnalytics(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Analytics
// @Description	Returns the links to all analytics endpoints
// @Tags			Analytics
// @Success		200	{object}	AnalyticsResponse
// @Router			/v1/analytics [get]
func GetAnalytics(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL)) + "/v1/analytics"

	c.JSON(http.StatusOK, AnalyticsResponse{
		Links: AnalyticsLinks{
			Categories: url + "/categories",
			Sources:    url + "/sources",
			Daily:      url + "/daily",
			Monthly:    url + "/monthly",
			Summary:    url + "/summary",
			Trend:      url + "/trend",
		},
	})
}

// filters returns the expense and income filters for the query string.
// Income is filtered by the date range only.
func (co Controller) filters(c *gin.Context) (models.ExpenseFilter, models.IncomeFilter, error) {
	var filter AnalyticsQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		return models.ExpenseFilter{}, models.IncomeFilter{}, errQueryString
	}

	ef, err := co.expenseFilter(ExpenseQueryFilter{
		From:     filter.From,
		Until:    filter.Until,
		Category: filter.Category,
	})
	if err != nil {
		return models.ExpenseFilter{}, models.IncomeFilter{}, err
	}

	return ef, models.IncomeFilter{Range: ef.Range}, nil
}

// expenses returns the expenses matching the query string.
func (co Controller) expenses(c *gin.Context) ([]models.Expense, error) {
	f, _, err := co.filters(c)
	if err != nil {
		return nil, err
	}

	return co.store.ListExpenses(c.Request.Context(), f)
}

// income returns the income records within the date range of the query string.
func (co Controller) income(c *gin.Context) ([]models.Income, error) {
	_, f, err := co.filters(c)
	if err != nil {
		return nil, err
	}

	return co.store.ListIncome(c.Request.Context(), f)
}

// @Summary		Spending by category
// @Description	Returns the total and share of every category with spending, largest first
// @Tags			Analytics
// @Produce		json
// @Success		200		{object}	BreakdownResponse
// @Failure		400		{object}	BreakdownResponse
// @Failure		500		{object}	BreakdownResponse
// @Param			from	query		string	false	"Only expenses on or after this date, YYYY-MM-DD"
// @Param			until	query		string	false	"Only expenses on or before this date, YYYY-MM-DD"
// @Router			/v1/analytics/categories [get]
func (co Controller) GetCategoryBreakdown(c *gin.Context) {
	expenses, err := co.expenses(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BreakdownResponse{
			Error: &s,
		})
		return
	}

	data := make([]Share, 0)

	seq, err := analytics.CategoryBreakdown(expenses)
	if errors.Is(err, analytics.ErrNoData) {
		c.JSON(http.StatusOK, BreakdownResponse{Data: data})
		return
	}

	for s := range seq {
		data = append(data, categoryShare(co, s))
	}

	c.JSON(http.StatusOK, BreakdownResponse{Data: data})
}

// @Summary		Income by source
// @Description	Returns the total and share of every income source, largest first
// @Tags			Analytics
// @Produce		json
// @Success		200		{object}	BreakdownResponse
// @Failure		400		{object}	BreakdownResponse
// @Failure		500		{object}	BreakdownResponse
// @Param			from	query		string	false	"Only income on or after this date, YYYY-MM-DD"
// @Param			until	query		string	false	"Only income on or before this date, YYYY-MM-DD"
// @Router			/v1/analytics/sources [get]
func (co Controller) GetSourceBreakdown(c *gin.Context) {
	income, err := co.income(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BreakdownResponse{
			Error: &s,
		})
		return
	}

	data := make([]Share, 0)

	seq, err := analytics.SourceBreakdown(income)
	if errors.Is(err, analytics.ErrNoData) {
		c.JSON(http.StatusOK, BreakdownResponse{Data: data})
		return
	}

	for s := range seq {
		data = append(data, sourceShare(co, s))
	}

	c.JSON(http.StatusOK, BreakdownResponse{Data: data})
}

// @Summary		Spending per day
// @Description	Returns the total spent per day in chronological order. Days without expenses are omitted.
// @Tags			Analytics
// @Produce		json
// @Success		200			{object}	SeriesResponse
// @Failure		400			{object}	SeriesResponse
// @Failure		500			{object}	SeriesResponse
// @Param			from		query		string	false	"Only expenses on or after this date, YYYY-MM-DD"
// @Param			until		query		string	false	"Only expenses on or before this date, YYYY-MM-DD"
// @Param			category	query		string	false	"Only expenses of this category"
// @Router			/v1/analytics/daily [get]
func (co Controller) GetDailySeries(c *gin.Context) {
	expenses, err := co.expenses(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SeriesResponse{
			Error: &s,
		})
		return
	}

	data := make([]Point, 0)
	for p := range analytics.DailySeries(expenses) {
		data = append(data, co.newPoint(p))
	}

	c.JSON(http.StatusOK, SeriesResponse{Data: data})
}

// @Summary		Spending per month
// @Description	Returns the total spent per month in chronological order
// @Tags			Analytics
// @Produce		json
// @Success		200			{object}	SeriesResponse
// @Failure		400			{object}	SeriesResponse
// @Failure		500			{object}	SeriesResponse
// @Param			from		query		string	false	"Only expenses on or after this date, YYYY-MM-DD"
// @Param			until		query		string	false	"Only expenses on or before this date, YYYY-MM-DD"
// @Param			category	query		string	false	"Only expenses of this category"
// @Router			/v1/analytics/monthly [get]
func (co Controller) GetMonthlyTotals(c *gin.Context) {
	expenses, err := co.expenses(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SeriesResponse{
			Error: &s,
		})
		return
	}

	data := make([]Point, 0)
	for p := range analytics.MonthlyTotals(expenses) {
		data = append(data, co.newPoint(p))
	}

	c.JSON(http.StatusOK, SeriesResponse{Data: data})
}

// @Summary		Financial summary
// @Description	Returns income, expenses, net savings and the savings rate. The savings rate is null when there is no income.
// @Tags			Analytics
// @Produce		json
// @Success		200		{object}	SummaryResponse
// @Failure		400		{object}	SummaryResponse
// @Failure		500		{object}	SummaryResponse
// @Param			from	query		string	false	"Only records on or after this date, YYYY-MM-DD"
// @Param			until	query		string	false	"Only records on or before this date, YYYY-MM-DD"
// @Router			/v1/analytics/summary [get]
func (co Controller) GetSummary(c *gin.Context) {
	ef, inf, err := co.filters(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &s,
		})
		return
	}

	var (
		expenses []models.Expense
		income   []models.Income
	)

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() (err error) {
		expenses, err = co.store.ListExpenses(ctx, ef)
		return
	})
	g.Go(func() (err error) {
		income, err = co.store.ListIncome(ctx, inf)
		return
	})

	if err := g.Wait(); err != nil {
		s := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &s,
		})
		return
	}

	data := co.newSummary(analytics.Summarize(expenses, income))
	c.JSON(http.StatusOK, SummaryResponse{Data: &data})
}

// @Summary		Spending trend
// @Description	Returns the monthly totals of the last months, ending with the current month. Months without expenses are omitted.
// @Tags			Analytics
// @Produce		json
// @Success		200			{object}	SeriesResponse
// @Failure		400			{object}	SeriesResponse
// @Failure		500			{object}	SeriesResponse
// @Param			months		query		int		false	"Number of months, 1 to 24. Defaults to 6."
// @Param			category	query		string	false	"Only expenses of this category"
// @Router			/v1/analytics/trend [get]
func (co Controller) GetTrend(c *gin.Context) {
	var filter TrendQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		s := errTrendMonths.Error()
		c.JSON(http.StatusBadRequest, SeriesResponse{
			Error: &s,
		})
		return
	}

	months := defaultTrendMonths
	if slices.Contains(httputil.GetURLFields(c.Request.URL, filter), "Months") {
		months = filter.Months
	}

	if months < 1 || months > maxTrendMonths {
		s := errTrendMonths.Error()
		c.JSON(http.StatusBadRequest, SeriesResponse{
			Error: &s,
		})
		return
	}

	today := co.today()
	f, err := co.expenseFilter(ExpenseQueryFilter{
		From:     today.Month().AddDate(0, -(months - 1)).First().String(),
		Until:    today.Month().Last().String(),
		Category: filter.Category,
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SeriesResponse{
			Error: &s,
		})
		return
	}

	expenses, err := co.store.ListExpenses(c.Request.Context(), f)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SeriesResponse{
			Error: &s,
		})
		return
	}

	data := make([]Point, 0)
	for p := range analytics.SpendingTrend(expenses, months, today) {
		data = append(data, co.newPoint(p))
	}

	c.JSON(http.StatusOK, SeriesResponse{Data: data})
}
