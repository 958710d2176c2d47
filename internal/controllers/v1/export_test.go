package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/ledgerbook/backend/internal/validation"
	"github.com/ledgerbook/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestExport() {
	_ = createTestExpense(suite.T(), validation.ExpenseInput{Date: "2025-10-01", Category: "Food & Dining", Amount: "4.5", Description: "Coffee, large"})
	_ = createTestExpense(suite.T(), validation.ExpenseInput{Date: "2025-10-03", Category: "Shopping", Amount: "20", Description: `The "good" socks`})
	_ = createTestExpense(suite.T(), validation.ExpenseInput{Date: "2025-09-12", Category: "Transportation", Amount: "33.10"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	suite.Assert().Equal("attachment; filename=expenses_2025-10-15.csv", r.Header().Get("Content-Disposition"))
	suite.Assert().Equal("text/csv; charset=utf-8", r.Header().Get("Content-Type"))
	suite.Assert().Equal(`Date,Category,Amount,Description
2025-10-03,Shopping,20.00,"The ""good"" socks"
2025-10-01,Food & Dining,4.50,"Coffee, large"
2025-09-12,Transportation,33.10,
`, r.Body.String())
}

func (suite *TestSuiteStandard) TestExportEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Equal("Date,Category,Amount,Description\n", r.Body.String())
}

func (suite *TestSuiteStandard) TestExportFilter() {
	_ = createTestExpense(suite.T(), validation.ExpenseInput{Date: "2025-10-01", Category: "Food & Dining", Amount: "4.5", Description: "Coffee"})
	_ = createTestExpense(suite.T(), validation.ExpenseInput{Date: "2025-10-03", Category: "Shopping", Amount: "20", Description: "Socks"})
	_ = createTestExpense(suite.T(), validation.ExpenseInput{Date: "2025-09-12", Category: "Food & Dining", Amount: "12", Description: "Lunch"})

	tests := []struct {
		name  string
		query string
		rows  string
	}{
		{"Category", "category=Food+%26+Dining", "2025-10-01,Food & Dining,4.50,Coffee\n2025-09-12,Food & Dining,12.00,Lunch\n"},
		{"Range", "from=2025-10-02", "2025-10-03,Shopping,20.00,Socks\n"},
		{"Description", "description=L*", "2025-09-12,Food & Dining,12.00,Lunch\n"},
		{"No match", "until=2025-01-01", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/export?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			assert.Equal(t, "Date,Category,Amount,Description\n"+tt.rows, r.Body.String())
		})
	}
}

func (suite *TestSuiteStandard) TestExportFails() {
	tests := []struct {
		name  string
		query string
		err   string
	}{
		{"Bad date", "from=10/01/2025", "Invalid date format"},
		{"Inverted range", "from=2025-10-02&until=2025-10-01", "Start date must be before or equal to end date"},
		{"Unknown category", "category=Pets", "Invalid category"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/export?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Contains(t, r.Body.String(), tt.err)
			assert.Empty(t, r.Header().Get("Content-Disposition"))
		})
	}
}

func (suite *TestSuiteStandard) TestExportDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
