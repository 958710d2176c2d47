// Package budget relates month-to-date spending to the monthly limit of
// a category.
package budget

import (
	"context"
	"errors"
	"time"

	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Status is the band a budget's usage falls into.
type Status string

const (
	StatusOnTrack    Status = "on-track"
	StatusWarning    Status = "warning"
	StatusOverBudget Status = "over-budget"
)

// Pace compares spending to a linear spend of the limit over the month.
type Pace string

const (
	PaceOnPace Pace = "on-pace"
	PaceAhead  Pace = "ahead"
)

// ErrInvalidLimit is returned for limits that are not positive.
var ErrInvalidLimit = errors.New("the budget limit must be greater than 0")

var (
	hundred        = decimal.NewFromInt(100)
	warningPercent = decimal.NewFromInt(80)
)

// Evaluation is the state of a budget on a given day.
type Evaluation struct {
	Limit       decimal.Decimal `json:"limit" example:"310"`                          // Monthly limit
	Spent       decimal.Decimal `json:"spent" example:"150"`                          // Spending of the month up to and including today
	Remaining   decimal.Decimal `json:"remaining" example:"160"`                      // Limit minus spent. Negative when over budget
	Percentage  decimal.Decimal `json:"percentage" example:"48.39"`                   // Share of the limit that has been spent. Not capped at 100
	Fill        decimal.Decimal `json:"fill" example:"48.39"`                         // Percentage capped at 100, for progress bars
	Overage     decimal.Decimal `json:"overage" example:"0"`                          // Amount over the limit. Only non-zero when over budget
	Status      Status          `json:"status" example:"on-track"`                    // on-track, warning or over-budget
	Expected    decimal.Decimal `json:"expected" example:"150"`                       // Spending expected by today with a linear pace
	Pace        Pace            `json:"pace" example:"on-pace"`                       // on-pace or ahead
	DaysInMonth int             `json:"daysInMonth" example:"31"`                     // Number of days in the month
	DaysElapsed int             `json:"daysElapsed" example:"15"`                     // Days of the month up to and including today
	Month       types.Month     `json:"month" example:"2025-07" swaggertype:"string"` // The month that is evaluated
}

// Evaluate computes the budget state for a limit and the spending of the
// month up to and including today.
func Evaluate(limit, spent decimal.Decimal, today types.Date) (Evaluation, error) {
	if !limit.IsPositive() {
		return Evaluation{}, ErrInvalidLimit
	}

	month := today.Month()
	days := decimal.NewFromInt(int64(month.Days()))
	elapsed := decimal.NewFromInt(int64(today.Day()))

	e := Evaluation{
		Limit:       limit,
		Spent:       spent,
		Remaining:   limit.Sub(spent),
		Percentage:  spent.Mul(hundred).DivRound(limit, 2),
		Overage:     decimal.Zero,
		Expected:    limit.Mul(elapsed).DivRound(days, 2),
		DaysInMonth: month.Days(),
		DaysElapsed: today.Day(),
		Month:       month,
	}

	e.Fill = decimal.Min(e.Percentage, hundred)

	// Bands are decided on exact values, the percentage is rounded for display
	switch {
	case spent.GreaterThanOrEqual(limit):
		e.Status = StatusOverBudget
		e.Overage = spent.Sub(limit)
	case spent.Mul(hundred).GreaterThanOrEqual(limit.Mul(warningPercent)):
		e.Status = StatusWarning
	default:
		e.Status = StatusOnTrack
	}

	// spent > limit / days * elapsed, without dividing
	e.Pace = PaceOnPace
	if spent.Mul(days).GreaterThan(limit.Mul(elapsed)) {
		e.Pace = PaceAhead
	}

	return e, nil
}

// Store is the persistence the Engine needs.
type Store interface {
	FindBudget(ctx context.Context, category types.Category) (models.Budget, error)
	ListBudgets(ctx context.Context) ([]models.Budget, error)
	UpsertBudget(ctx context.Context, category types.Category, limit decimal.Decimal, preserveCreatedAt bool) (models.Budget, bool, error)
	SumExpenses(ctx context.Context, category types.Category, r types.DateRange) (decimal.Decimal, error)
}

// Report is a budget together with its current evaluation.
type Report struct {
	Budget     models.Budget
	Evaluation Evaluation
}

// Engine evaluates budgets against the stored expenses.
type Engine struct {
	store Store
	now   func() time.Time
}

// NewEngine returns an Engine. now is used to determine today's date and
// defaults to time.Now.
func NewEngine(store Store, now func() time.Time) Engine {
	if now == nil {
		now = time.Now
	}

	return Engine{store: store, now: now}
}

// Today returns the current date of the engine's clock.
func (e Engine) Today() types.Date {
	return types.DateOf(e.now())
}

// Set creates or updates the budget for a category. An existing budget
// keeps its identity and creation time, only the limit changes.
func (e Engine) Set(ctx context.Context, category types.Category, limit decimal.Decimal) (models.Budget, bool, error) {
	if !limit.IsPositive() {
		return models.Budget{}, false, ErrInvalidLimit
	}

	return e.store.UpsertBudget(ctx, category, limit, true)
}

// Status evaluates the budget for a category for the current month.
func (e Engine) Status(ctx context.Context, category types.Category) (Report, error) {
	b, err := e.store.FindBudget(ctx, category)
	if err != nil {
		return Report{}, err
	}

	return e.report(ctx, b)
}

// StatusAll evaluates all budgets for the current month.
func (e Engine) StatusAll(ctx context.Context) ([]Report, error) {
	budgets, err := e.store.ListBudgets(ctx)
	if err != nil {
		return nil, err
	}

	reports := make([]Report, 0, len(budgets))
	for _, b := range budgets {
		r, err := e.report(ctx, b)
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}

	return reports, nil
}

func (e Engine) report(ctx context.Context, b models.Budget) (Report, error) {
	today := e.Today()

	spent, err := e.store.SumExpenses(ctx, b.Category, types.MonthToDate(today))
	if err != nil {
		return Report{}, err
	}

	evaluation, err := Evaluate(b.MonthlyLimit, spent, today)
	if err != nil {
		return Report{}, err
	}

	return Report{Budget: b, Evaluation: evaluation}, nil
}
