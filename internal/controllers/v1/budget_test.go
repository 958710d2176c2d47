package v1_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	v1 "github.com/ledgerbook/backend/internal/controllers/v1"
	"github.com/ledgerbook/backend/internal/budget"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/types"
	"github.com/ledgerbook/backend/internal/validation"
	"github.com/ledgerbook/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestBudget(t *testing.T, b validation.BudgetInput, expectedStatus ...int) v1.BudgetResponse {
	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/budgets", b)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.BudgetResponse
	test.DecodeResponse(t, &r, &response)

	return response
}

func budgetURL(category types.Category) string {
	return fmt.Sprintf("http://example.com/v1/budgets/%s", url.PathEscape(string(category)))
}

func (suite *TestSuiteStandard) TestBudgetsSet() {
	_ = createTestExpense(suite.T(), validation.ExpenseInput{Date: "2025-10-03", Category: "Transportation", Amount: "100"})
	_ = createTestExpense(suite.T(), validation.ExpenseInput{Date: "2025-10-15", Category: "Transportation", Amount: "50"})

	// Not in the current month up to today
	_ = createTestExpense(suite.T(), validation.ExpenseInput{Date: "2025-09-30", Category: "Transportation", Amount: "1000"})
	_ = createTestExpense(suite.T(), validation.ExpenseInput{Date: "2025-10-16", Category: "Transportation", Amount: "1000"})

	// Other category
	_ = createTestExpense(suite.T(), validation.ExpenseInput{Date: "2025-10-05", Category: "Shopping", Amount: "1000"})

	b := setTestBudget(suite.T(), validation.BudgetInput{Category: "Transportation", MonthlyLimit: "310"})
	suite.Require().NotNil(b.Data)

	e := b.Data.Evaluation
	suite.Assert().Equal(types.CategoryTransportation, b.Data.Category)
	suite.Assert().True(decimal.NewFromInt(310).Equal(b.Data.MonthlyLimit))
	suite.Assert().True(decimal.NewFromInt(150).Equal(e.Spent), e.Spent.String())
	suite.Assert().True(decimal.NewFromInt(160).Equal(e.Remaining))
	suite.Assert().True(decimal.RequireFromString("48.39").Equal(e.Percentage))
	suite.Assert().True(decimal.NewFromInt(150).Equal(e.Expected))
	suite.Assert().Equal(budget.StatusOnTrack, e.Status)
	suite.Assert().Equal(budget.PaceOnPace, e.Pace)
	suite.Assert().Equal(31, e.DaysInMonth)
	suite.Assert().Equal(15, e.DaysElapsed)
	suite.Assert().Equal(types.NewMonth(2025, 10), e.Month)

	suite.Assert().Equal("$310.00", b.Data.Formatted.Limit)
	suite.Assert().Equal("$150.00", b.Data.Formatted.Spent)
	suite.Assert().Equal("http://example.com/v1/budgets/Transportation", b.Data.Links.Self)
}

// TestBudgetsUpsert verifies that setting the limit of an existing budget
// keeps the budget and only changes the limit.
func (suite *TestSuiteStandard) TestBudgetsUpsert() {
	created := setTestBudget(suite.T(), validation.BudgetInput{Category: "Food & Dining", MonthlyLimit: "400"})
	updated := setTestBudget(suite.T(), validation.BudgetInput{Category: "Food & Dining", MonthlyLimit: "450.50"}, http.StatusOK)

	suite.Assert().Equal(created.Data.ID, updated.Data.ID)
	suite.Assert().True(created.Data.CreatedAt.Equal(updated.Data.CreatedAt))
	suite.Assert().True(decimal.RequireFromString("450.50").Equal(updated.Data.MonthlyLimit))

	var list v1.BudgetListResponse
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Len(list.Data, 1)
}

func (suite *TestSuiteStandard) TestBudgetsSetFails() {
	tests := []struct {
		name  string
		input any
		err   string
	}{
		{"Empty body", "", "the request body must not be empty"},
		{"Missing category", map[string]any{"monthlyLimit": "10"}, "Category is required"},
		{"Missing limit", map[string]any{"category": "Shopping"}, "Monthly limit is required"},
		{"Not a number", map[string]any{"category": "Shopping", "monthlyLimit": "lots"}, "Monthly limit must be a valid number"},
		{"Zero", map[string]any{"category": "Shopping", "monthlyLimit": "0"}, "Budget limit must be greater than 0"},
		{"Negative", map[string]any{"category": "Shopping", "monthlyLimit": "-10"}, "Budget limit must be greater than 0"},
		{"Unknown category", map[string]any{"category": "Pets", "monthlyLimit": "10"}, "Invalid category. Must be one of: "},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/budgets", tt.input)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.BudgetResponse
			test.DecodeResponse(t, &r, &response)
			require.NotNil(t, response.Error)
			assert.Contains(t, *response.Error, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsStatus() {
	_ = setTestBudget(suite.T(), validation.BudgetInput{Category: "Shopping", MonthlyLimit: "100"})
	_ = setTestBudget(suite.T(), validation.BudgetInput{Category: "Entertainment", MonthlyLimit: "100"})
	_ = setTestBudget(suite.T(), validation.BudgetInput{Category: "Bills & Utilities", MonthlyLimit: "100"})

	_ = createTestExpense(suite.T(), validation.ExpenseInput{Date: "2025-10-02", Category: "Shopping", Amount: "85"})
	_ = createTestExpense(suite.T(), validation.ExpenseInput{Date: "2025-10-02", Category: "Entertainment", Amount: "120"})

	var list v1.BudgetListResponse
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &list)

	// Ordered by category
	suite.Require().Len(list.Data, 3)
	suite.Assert().Equal(types.CategoryBillsUtilities, list.Data[0].Category)
	suite.Assert().Equal(types.CategoryEntertainment, list.Data[1].Category)
	suite.Assert().Equal(types.CategoryShopping, list.Data[2].Category)

	suite.Assert().Equal(budget.StatusOnTrack, list.Data[0].Evaluation.Status)

	over := list.Data[1].Evaluation
	suite.Assert().Equal(budget.StatusOverBudget, over.Status)
	suite.Assert().True(decimal.NewFromInt(20).Equal(over.Overage))
	suite.Assert().True(decimal.NewFromInt(-20).Equal(over.Remaining))
	suite.Assert().True(decimal.NewFromInt(120).Equal(over.Percentage))
	suite.Assert().True(decimal.NewFromInt(100).Equal(over.Fill))
	suite.Assert().Equal(budget.PaceAhead, over.Pace)

	suite.Assert().Equal(budget.StatusWarning, list.Data[2].Evaluation.Status)

	// A single budget
	var single v1.BudgetResponse
	r = test.Request(suite.T(), http.MethodGet, budgetURL(types.CategoryEntertainment), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &single)
	suite.Assert().Equal(over.Status, single.Data.Evaluation.Status)
}

func (suite *TestSuiteStandard) TestBudgetsEmpty() {
	var list v1.BudgetListResponse
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &list)

	suite.Assert().NotNil(list.Data)
	suite.Assert().Len(list.Data, 0)
}

func (suite *TestSuiteStandard) TestBudgetsSingle() {
	_ = setTestBudget(suite.T(), validation.BudgetInput{Category: "Food & Dining", MonthlyLimit: "250"})

	tests := []struct {
		name   string
		path   string
		method string
		status int
	}{
		{"GET existing", budgetURL(types.CategoryFoodDining), http.MethodGet, http.StatusOK},
		{"GET no budget", budgetURL(types.CategoryHealthcare), http.MethodGet, http.StatusNotFound},
		{"GET unknown category", budgetURL("Pets"), http.MethodGet, http.StatusBadRequest},
		{"OPTIONS existing", budgetURL(types.CategoryFoodDining), http.MethodOptions, http.StatusNoContent},
		{"OPTIONS no budget", budgetURL(types.CategoryHealthcare), http.MethodOptions, http.StatusNotFound},
		{"DELETE unknown category", budgetURL("Pets"), http.MethodDelete, http.StatusBadRequest},
		{"DELETE no budget", budgetURL(types.CategoryHealthcare), http.MethodDelete, http.StatusNotFound},
		{"DELETE existing", budgetURL(types.CategoryFoodDining), http.MethodDelete, http.StatusNoContent},
		{"GET deleted", budgetURL(types.CategoryFoodDining), http.MethodGet, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, tt.path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.method == http.MethodOptions && tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsDBClosed() {
	suite.CloseDB()

	b := setTestBudget(suite.T(), validation.BudgetInput{Category: "Shopping", MonthlyLimit: "10"}, http.StatusInternalServerError)
	suite.Assert().Equal(models.ErrGeneral.Error(), *b.Error)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
