// Package v1 implements the v1 HTTP API.
package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ledgerbook/backend/internal/budget"
	"github.com/ledgerbook/backend/internal/httputil"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/types"
	"github.com/ledgerbook/backend/internal/validation"
	"gorm.io/gorm"
)

// Controller holds the dependencies of the v1 handlers.
type Controller struct {
	db        *gorm.DB
	store     models.Store
	validator validation.Validator
	budgets   budget.Engine
	money     types.MoneyFormat
	now       func() time.Time
}

// New returns a Controller working on db. now determines the current
// date for defaults, future date checks and budget evaluation.
func New(db *gorm.DB, opts validation.Options, money types.MoneyFormat, now func() time.Time) Controller {
	if now == nil {
		now = time.Now
	}
	opts.Now = now

	store := models.NewStore(db)

	return Controller{
		db:        db,
		store:     store,
		validator: validation.New(opts),
		budgets:   budget.NewEngine(store, now),
		money:     money,
		now:       now,
	}
}

func (co Controller) today() types.Date {
	return types.DateOf(co.now())
}

// RegisterRoutes registers all v1 routes with the RouterGroup.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)

	RegisterCategoryRoutes(r.Group("/categories"))
	co.RegisterExpenseRoutes(r.Group("/expenses"))
	co.RegisterIncomeRoutes(r.Group("/incomes"))
	co.RegisterBudgetRoutes(r.Group("/budgets"))
	co.RegisterAnalyticsRoutes(r.Group("/analytics"))
	co.RegisterExportRoutes(r.Group("/export"))
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Categories string `json:"categories" example:"https://example.com/api/v1/categories"` // URL of the category and source list
	Expenses   string `json:"expenses" example:"https://example.com/api/v1/expenses"`     // URL of Expense collection endpoint
	Incomes    string `json:"incomes" example:"https://example.com/api/v1/incomes"`       // URL of Income collection endpoint
	Budgets    string `json:"budgets" example:"https://example.com/api/v1/budgets"`       // URL of Budget collection endpoint
	Analytics  string `json:"analytics" example:"https://example.com/api/v1/analytics"`   // URL of the analytics endpoints
	Export     string `json:"export" example:"https://example.com/api/v1/export"`         // URL of the CSV export
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Categories: url + "/v1/categories",
			Expenses:   url + "/v1/expenses",
			Incomes:    url + "/v1/incomes",
			Budgets:    url + "/v1/budgets",
			Analytics:  url + "/v1/analytics",
			Export:     url + "/v1/export",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
