package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/ledgerbook/backend/internal/controllers/v1"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/types"
	"github.com/ledgerbook/backend/internal/validation"
	"github.com/ledgerbook/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestIncome(t *testing.T, i validation.IncomeInput, expectedStatus ...int) v1.IncomeResponse {
	if i.Source == "" {
		i.Source = string(types.SourceSalary)
	}

	if i.Amount == "" {
		i.Amount = "1000"
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/incomes", i)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var income v1.IncomeResponse
	test.DecodeResponse(t, &r, &income)

	return income
}

func (suite *TestSuiteStandard) TestIncomesCreate() {
	i := createTestIncome(suite.T(), validation.IncomeInput{
		Date:        "2025-10-01",
		Source:      "Freelance",
		Amount:      "450.25",
		Description: "Logo design",
	})

	suite.Require().NotNil(i.Data)
	suite.Assert().Equal(types.NewDate(2025, 10, 1), i.Data.Date)
	suite.Assert().Equal(types.SourceFreelance, i.Data.Source)
	suite.Assert().True(decimal.RequireFromString("450.25").Equal(i.Data.Amount))
	suite.Assert().Equal("Logo design", i.Data.Description)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/incomes/%s", i.Data.ID), i.Data.Links.Self)
}

// TestIncomesCreateDefaultDate verifies that income without a date is
// recorded for today.
func (suite *TestSuiteStandard) TestIncomesCreateDefaultDate() {
	i := createTestIncome(suite.T(), validation.IncomeInput{Date: "   "})
	suite.Assert().Equal(types.NewDate(2025, 10, 15), i.Data.Date)
}

func (suite *TestSuiteStandard) TestIncomesCreateFails() {
	tests := []struct {
		name  string
		input any
		err   string
	}{
		{"Empty body", "", "the request body must not be empty"},
		{"Missing source", map[string]any{"amount": "5"}, "Source is required"},
		{"Missing amount", map[string]any{"source": "Gift"}, "Amount is required"},
		{"Unknown source", map[string]any{"source": "Lottery", "amount": "5"}, "Invalid source. Must be one of: Salary, Freelance, "},
		{"Negative amount", map[string]any{"source": "Gift", "amount": "-5"}, "Amount must be greater than 0"},
		{"Too small", map[string]any{"source": "Gift", "amount": "0.001"}, "Amount must be at least 0.01"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/incomes", tt.input)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.IncomeResponse
			test.DecodeResponse(t, &r, &response)
			require.NotNil(t, response.Error)
			assert.Contains(t, *response.Error, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestIncomesGetFilter() {
	_ = createTestIncome(suite.T(), validation.IncomeInput{Date: "2025-09-01", Source: "Salary", Amount: "3000"})
	_ = createTestIncome(suite.T(), validation.IncomeInput{Date: "2025-10-01", Source: "Salary", Amount: "3000"})
	_ = createTestIncome(suite.T(), validation.IncomeInput{Date: "2025-10-07", Source: "Gift", Amount: "50"})

	tests := []struct {
		name  string
		query string
		len   int   // Number of records on the page
		total int64 // Number of matching records
	}{
		{"All", "", 3, 3},
		{"From", "from=2025-10-01", 2, 2},
		{"Until", "until=2025-09-30", 1, 1},
		{"Source", "source=Salary", 2, 2},
		{"Source and range", "source=Salary&from=2025-10-01", 1, 1},
		{"Limit 1", "limit=1", 1, 3},
		{"Offset 1", "offset=1", 2, 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.IncomeListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/incomes?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data))
			assert.Equal(t, tt.total, re.Pagination.Total)
		})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/incomes?source=Lottery", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestIncomesUpdate() {
	i := createTestIncome(suite.T(), validation.IncomeInput{Date: "2025-10-01", Source: "Bonus", Amount: "500"})

	r := test.Request(suite.T(), http.MethodPatch, i.Data.Links.Self, map[string]any{
		"source": "Investment",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.IncomeResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal(types.SourceInvestment, updated.Data.Source)
	suite.Assert().Equal(types.NewDate(2025, 10, 1), updated.Data.Date)
	suite.Assert().True(decimal.NewFromInt(500).Equal(updated.Data.Amount))

	// On update, the date does not default to today
	r = test.Request(suite.T(), http.MethodPatch, i.Data.Links.Self, map[string]any{
		"date": "",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal("Date is required", *updated.Error)
}

func (suite *TestSuiteStandard) TestIncomesGetSingleAndDelete() {
	i := createTestIncome(suite.T(), validation.IncomeInput{})

	r := test.Request(suite.T(), http.MethodGet, i.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodOptions, i.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodDelete, i.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, i.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/incomes/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestIncomesDBClosed() {
	suite.CloseDB()

	i := createTestIncome(suite.T(), validation.IncomeInput{}, http.StatusInternalServerError)
	suite.Assert().Equal(models.ErrGeneral.Error(), *i.Error)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/incomes", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
