package v1

import (
	"github.com/ledgerbook/backend/internal/analytics"
	"github.com/ledgerbook/backend/internal/types"
	"github.com/shopspring/decimal"
)

type AnalyticsLinks struct {
	Categories string `json:"categories" example:"https://example.com/api/v1/analytics/categories"` // Spending by category
	Sources    string `json:"sources" example:"https://example.com/api/v1/analytics/sources"`       // Income by source
	Daily      string `json:"daily" example:"https://example.com/api/v1/analytics/daily"`           // Spending per day
	Monthly    string `json:"monthly" example:"https://example.com/api/v1/analytics/monthly"`       // Spending per month
	Summary    string `json:"summary" example:"https://example.com/api/v1/analytics/summary"`       // Financial summary
	Trend      string `json:"trend" example:"https://example.com/api/v1/analytics/trend"`           // Spending of the last months
}

type AnalyticsResponse struct {
	Links AnalyticsLinks `json:"links"`
}

type AnalyticsQueryFilter struct {
	From     string `form:"from" example:"2025-10-01"`
	Until    string `form:"until" example:"2025-10-31"`
	Category string `form:"category" example:"Shopping"`
}

type TrendQueryFilter struct {
	Months   int    `form:"months" example:"6"`
	Category string `form:"category" example:"Shopping"`
}

// Share is the part of one label in a breakdown.
type Share struct {
	Label      string          `json:"label" example:"Food & Dining"`
	Amount     decimal.Decimal `json:"amount" example:"80"`
	Percentage decimal.Decimal `json:"percentage" example:"42.11"`
	Color      string          `json:"color" example:"#FF6B6B"`
	Formatted  string          `json:"formatted" example:"$80.00"`
}

type BreakdownResponse struct {
	Data  []Share `json:"data"`                                                                   // Shares, largest first. Empty when there is no data
	Error *string `json:"error" example:"Invalid date format. Use YYYY-MM-DD (e.g., 2025-10-01)"` // The error, if any occurred
}

type Point struct {
	Label     string          `json:"label" example:"2025-10"` // Day as YYYY-MM-DD or month as YYYY-MM
	Amount    decimal.Decimal `json:"amount" example:"1250.40"`
	Formatted string          `json:"formatted" example:"$1,250.40"`
}

type SeriesResponse struct {
	Data  []Point `json:"data"`                                                                   // Points in chronological order
	Error *string `json:"error" example:"Invalid date format. Use YYYY-MM-DD (e.g., 2025-10-01)"` // The error, if any occurred
}

type SummaryFormatted struct {
	TotalIncome    string `json:"totalIncome" example:"$3,000.00"`
	TotalExpenses  string `json:"totalExpenses" example:"$2,250.50"`
	NetSavings     string `json:"netSavings" example:"$749.50"`
	AverageExpense string `json:"averageExpense" example:"$53.58"`
}

type Summary struct {
	analytics.Summary
	Formatted SummaryFormatted `json:"formatted"`
}

type SummaryResponse struct {
	Data  *Summary `json:"data"`
	Error *string  `json:"error" example:"Invalid date format. Use YYYY-MM-DD (e.g., 2025-10-01)"` // The error, if any occurred
}

func (co Controller) newPoint(p analytics.Point) Point {
	return Point{
		Label:     p.Label,
		Amount:    p.Amount,
		Formatted: co.money.Format(p.Amount),
	}
}

func (co Controller) newSummary(s analytics.Summary) Summary {
	return Summary{
		Summary: s,
		Formatted: SummaryFormatted{
			TotalIncome:    co.money.Format(s.TotalIncome),
			TotalExpenses:  co.money.Format(s.TotalExpenses),
			NetSavings:     co.money.Format(s.NetSavings),
			AverageExpense: co.money.Format(s.AverageExpense),
		},
	}
}

func categoryShare(co Controller, s analytics.Slice[types.Category]) Share {
	return Share{
		Label:      string(s.Label),
		Amount:     s.Amount,
		Percentage: s.Percentage,
		Color:      s.Label.Color(),
		Formatted:  co.money.Format(s.Amount),
	}
}

func sourceShare(co Controller, s analytics.Slice[types.Source]) Share {
	return Share{
		Label:      string(s.Label),
		Amount:     s.Amount,
		Percentage: s.Percentage,
		Color:      s.Label.Color(),
		Formatted:  co.money.Format(s.Amount),
	}
}
