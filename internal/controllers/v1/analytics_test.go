package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/ledgerbook/backend/internal/controllers/v1"
	"github.com/ledgerbook/backend/internal/validation"
	"github.com/ledgerbook/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) createAnalyticsData() {
	expenses := []validation.ExpenseInput{
		{Date: "2025-08-20", Category: "Shopping", Amount: "40"},
		{Date: "2025-09-02", Category: "Food & Dining", Amount: "30"},
		{Date: "2025-10-01", Category: "Food & Dining", Amount: "50"},
		{Date: "2025-10-01", Category: "Transportation", Amount: "20"},
		{Date: "2025-10-03", Category: "Shopping", Amount: "10"},
	}

	for _, e := range expenses {
		_ = createTestExpense(suite.T(), e)
	}

	_ = createTestIncome(suite.T(), validation.IncomeInput{Date: "2025-10-01", Source: "Salary", Amount: "300"})
	_ = createTestIncome(suite.T(), validation.IncomeInput{Date: "2025-10-10", Source: "Gift", Amount: "100"})
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	assert.True(t, decimal.RequireFromString(expected).Equal(actual), "expected %s, got %s", expected, actual)
}

func (suite *TestSuiteStandard) TestAnalyticsLinks() {
	var response v1.AnalyticsResponse
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/analytics", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal("http://example.com/v1/analytics/categories", response.Links.Categories)
	suite.Assert().Equal("http://example.com/v1/analytics/trend", response.Links.Trend)
}

func (suite *TestSuiteStandard) TestAnalyticsCategories() {
	suite.createAnalyticsData()

	var response v1.BreakdownResponse
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/analytics/categories?from=2025-10-01", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 3)

	suite.Assert().Equal("Food & Dining", response.Data[0].Label)
	assertDecimal(suite.T(), "50", response.Data[0].Amount)
	assertDecimal(suite.T(), "62.5", response.Data[0].Percentage)
	suite.Assert().Equal("#FF6B6B", response.Data[0].Color)
	suite.Assert().Equal("$50.00", response.Data[0].Formatted)

	suite.Assert().Equal("Transportation", response.Data[1].Label)
	assertDecimal(suite.T(), "25", response.Data[1].Percentage)

	suite.Assert().Equal("Shopping", response.Data[2].Label)
	assertDecimal(suite.T(), "12.5", response.Data[2].Percentage)
}

func (suite *TestSuiteStandard) TestAnalyticsCategoriesNoData() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/analytics/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().JSONEq(`{"data": [], "error": null}`, r.Body.String())

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/analytics/sources", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().JSONEq(`{"data": [], "error": null}`, r.Body.String())
}

func (suite *TestSuiteStandard) TestAnalyticsSources() {
	suite.createAnalyticsData()

	var response v1.BreakdownResponse
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/analytics/sources", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("Salary", response.Data[0].Label)
	assertDecimal(suite.T(), "75", response.Data[0].Percentage)
	suite.Assert().Equal("Gift", response.Data[1].Label)
	assertDecimal(suite.T(), "25", response.Data[1].Percentage)
}

func (suite *TestSuiteStandard) TestAnalyticsSeries() {
	suite.createAnalyticsData()

	tests := []struct {
		name   string
		path   string
		labels []string
		totals []string
	}{
		{"Daily", "daily", []string{"2025-08-20", "2025-09-02", "2025-10-01", "2025-10-03"}, []string{"40", "30", "70", "10"}},
		{"Daily, category", "daily?category=Shopping", []string{"2025-08-20", "2025-10-03"}, []string{"40", "10"}},
		{"Daily, range", "daily?from=2025-10-02&until=2025-10-31", []string{"2025-10-03"}, []string{"10"}},
		{"Monthly", "monthly", []string{"2025-08", "2025-09", "2025-10"}, []string{"40", "30", "80"}},
		{"Monthly, category", "monthly?category=Food+%26+Dining", []string{"2025-09", "2025-10"}, []string{"30", "50"}},
		{"Trend, default months", "trend", []string{"2025-08", "2025-09", "2025-10"}, []string{"40", "30", "80"}},
		{"Trend, 2 months", "trend?months=2", []string{"2025-09", "2025-10"}, []string{"30", "80"}},
		{"Trend, 1 month", "trend?months=1", []string{"2025-10"}, []string{"80"}},
		{"Trend, category", "trend?months=24&category=Shopping", []string{"2025-08", "2025-10"}, []string{"40", "10"}},
		{"No data", "monthly?until=2025-01-01", []string{}, []string{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var response v1.SeriesResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/analytics/%s", tt.path), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &response)

			require.NotNil(t, response.Data)
			require.Len(t, response.Data, len(tt.labels))
			for i, p := range response.Data {
				assert.Equal(t, tt.labels[i], p.Label)
				assertDecimal(t, tt.totals[i], p.Amount)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestAnalyticsSummary() {
	suite.createAnalyticsData()

	var response v1.SummaryResponse
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/analytics/summary?from=2025-10-01&until=2025-10-31", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)

	s := response.Data
	suite.Require().NotNil(s)
	assertDecimal(suite.T(), "400", s.TotalIncome)
	assertDecimal(suite.T(), "80", s.TotalExpenses)
	assertDecimal(suite.T(), "320", s.NetSavings)
	suite.Require().NotNil(s.SavingsRate)
	assertDecimal(suite.T(), "80", *s.SavingsRate)
	suite.Assert().False(s.Deficit)
	suite.Assert().Equal(3, s.ExpenseCount)
	suite.Assert().Equal(2, s.IncomeCount)
	assertDecimal(suite.T(), "26.67", s.AverageExpense)
	suite.Assert().Equal("$320.00", s.Formatted.NetSavings)

	// Without income, there is no savings rate
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/analytics/summary?until=2025-09-30", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	response = v1.SummaryResponse{}
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Nil(response.Data.SavingsRate)
	suite.Assert().True(response.Data.Deficit)
	suite.Assert().Equal("-$70.00", response.Data.Formatted.NetSavings)
}

func (suite *TestSuiteStandard) TestAnalyticsErrors() {
	tests := []struct {
		name string
		path string
		err  string
	}{
		{"Categories, bad date", "categories?from=2025-1-1", "Invalid date format"},
		{"Sources, inverted range", "sources?from=2025-10-02&until=2025-10-01", "Start date must be before or equal to end date"},
		{"Daily, unknown category", "daily?category=Pets", "Invalid category"},
		{"Monthly, bad until", "monthly?until=never", "Invalid date format"},
		{"Summary, bad from", "summary?from=x", "Invalid date format"},
		{"Trend, zero months", "trend?months=0", "months must be a number between 1 and 24"},
		{"Trend, too many months", "trend?months=25", "months must be a number between 1 and 24"},
		{"Trend, not a number", "trend?months=six", "months must be a number between 1 and 24"},
		{"Trend, unknown category", "trend?category=Pets", "Invalid category"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/analytics/%s", tt.path), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Contains(t, r.Body.String(), tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestAnalyticsDBClosed() {
	suite.CloseDB()

	for _, path := range []string{"categories", "sources", "daily", "monthly", "summary", "trend"} {
		suite.T().Run(path, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/analytics/%s", path), "")
			test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)
		})
	}
}
