package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/ledgerbook/backend/internal/controllers/v1"
	"github.com/ledgerbook/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGet() {
	var response v1.Response
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal(v1.Links{
		Categories: "http://example.com/v1/categories",
		Expenses:   "http://example.com/v1/expenses",
		Incomes:    "http://example.com/v1/incomes",
		Budgets:    "http://example.com/v1/budgets",
		Analytics:  "http://example.com/v1/analytics",
		Export:     "http://example.com/v1/export",
	}, response.Links)
}

func (suite *TestSuiteStandard) TestGetCategories() {
	var response v1.CategoryListResponse
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data.Categories, 8)
	suite.Assert().Equal(v1.Label{Name: "Food & Dining", Color: "#FF6B6B"}, response.Data.Categories[0])
	suite.Assert().Equal("Other", response.Data.Categories[7].Name)

	suite.Require().Len(response.Data.Sources, 8)
	suite.Assert().Equal(v1.Label{Name: "Salary", Color: "#10B981"}, response.Data.Sources[0])
	suite.Assert().Equal("Other", response.Data.Sources[7].Name)
}

func (suite *TestSuiteStandard) TestOptions() {
	tests := []struct {
		path  string
		allow string
	}{
		{"v1", "OPTIONS, GET"},
		{"v1/categories", "OPTIONS, GET"},
		{"v1/expenses", "OPTIONS, GET, POST"},
		{"v1/incomes", "OPTIONS, GET, POST"},
		{"v1/budgets", "OPTIONS, GET, POST"},
		{"v1/analytics", "OPTIONS, GET"},
		{"v1/analytics/categories", "OPTIONS, GET"},
		{"v1/analytics/sources", "OPTIONS, GET"},
		{"v1/analytics/daily", "OPTIONS, GET"},
		{"v1/analytics/monthly", "OPTIONS, GET"},
		{"v1/analytics/summary", "OPTIONS, GET"},
		{"v1/analytics/trend", "OPTIONS, GET"},
		{"v1/export", "OPTIONS, GET"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, fmt.Sprintf("http://example.com/%s", tt.path), "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestMethodNotAllowed() {
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "v1"},
		{http.MethodDelete, "v1/categories"},
		{http.MethodPatch, "v1/budgets/Shopping"},
		{http.MethodPost, "v1/analytics/summary"},
		{http.MethodDelete, "v1/export"},
	}

	for _, tt := range tests {
		suite.T().Run(fmt.Sprintf("%s %s", tt.method, tt.path), func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/%s", tt.path), "")
			test.AssertHTTPStatus(t, &r, http.StatusMethodNotAllowed)
		})
	}
}
