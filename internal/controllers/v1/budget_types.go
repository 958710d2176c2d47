package v1

import (
	"fmt"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/ledgerbook/backend/internal/budget"
	"github.com/ledgerbook/backend/internal/models"
)

type BudgetLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/budgets/Transportation"` // The budget itself
}

// BudgetFormatted contains the amounts of the evaluation formatted in the configured currency.
type BudgetFormatted struct {
	Limit     string `json:"limit" example:"$310.00"`
	Spent     string `json:"spent" example:"$150.00"`
	Remaining string `json:"remaining" example:"$160.00"`
	Expected  string `json:"expected" example:"$150.00"`
}

type Budget struct {
	models.Budget
	Evaluation budget.Evaluation `json:"evaluation"` // State of the budget for the current month
	Formatted  BudgetFormatted   `json:"formatted"`
	Links      BudgetLinks       `json:"links"`
}

func (co Controller) newBudget(c *gin.Context, report budget.Report) Budget {
	base := c.GetString(string(models.DBContextURL))
	e := report.Evaluation

	return Budget{
		Budget:     report.Budget,
		Evaluation: e,
		Formatted: BudgetFormatted{
			Limit:     co.money.Format(e.Limit),
			Spent:     co.money.Format(e.Spent),
			Remaining: co.money.Format(e.Remaining),
			Expected:  co.money.Format(e.Expected),
		},
		Links: BudgetLinks{
			Self: fmt.Sprintf("%s/v1/budgets/%s", base, url.PathEscape(string(report.Budget.Category))),
		},
	}
}

type BudgetListResponse struct {
	Data  []Budget `json:"data"`                                                          // List of Budgets
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                // Data for the Budget
	Error *string `json:"error" example:"Budget limit must be greater than 0"` // The error, if any occurred
}
