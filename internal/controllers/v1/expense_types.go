package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/types"
	"github.com/ledgerbook/backend/internal/validation"
)

type ExpenseLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/expenses/4c8aa8a9-5e4e-4d25-8c66-2a7f0e0c2d61"` // The expense itself
}

type Expense struct {
	models.Expense
	Links ExpenseLinks `json:"links"`
}

func newExpense(c *gin.Context, model models.Expense) Expense {
	url := c.GetString(string(models.DBContextURL))

	return Expense{
		Expense: model,
		Links: ExpenseLinks{
			Self: fmt.Sprintf("%s/v1/expenses/%s", url, model.ID),
		},
	}
}

// expenseEditable returns the stored values of an expense as input, so
// that a partial update can be bound onto it and validated as a whole.
func expenseEditable(model models.Expense) validation.ExpenseInput {
	return validation.ExpenseInput{
		Date:        model.Date.String(),
		Category:    string(model.Category),
		Amount:      model.Amount.StringFixed(2),
		Description: model.Description,
	}
}

type ExpenseListResponse struct {
	Data       []Expense   `json:"data"`                                                          // List of Expenses
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ExpenseResponse struct {
	Data  *Expense `json:"data"`                                                          // Data for the Expense
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ExpenseQueryFilter struct {
	From        string `form:"from" example:"2025-10-01"`      // Only expenses on or after this date
	Until       string `form:"until" example:"2025-10-31"`     // Only expenses on or before this date
	Category    string `form:"category" example:"Shopping"`    // By category
	Description string `form:"description" example:"*coffee*"` // By description, glob pattern
	Offset      uint   `form:"offset"`                         // The offset of the first Expense returned. Defaults to 0.
	Limit       int    `form:"limit"`                          // Maximum number of Expenses to return. Defaults to 50.
}

func (co Controller) expenseFilter(f ExpenseQueryFilter) (models.ExpenseFilter, error) {
	r, err := co.validator.DateRange(f.From, f.Until)
	if err != nil {
		return models.ExpenseFilter{}, err
	}

	var category types.Category
	if f.Category != "" {
		category, err = co.validator.Category(f.Category)
		if err != nil {
			return models.ExpenseFilter{}, err
		}
	}

	return models.ExpenseFilter{
		Range:       r,
		Category:    category,
		Description: f.Description,
	}, nil
}
