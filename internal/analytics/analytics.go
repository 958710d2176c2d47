// Package analytics reshapes stored records into the aggregate views used
// for charts and summaries.
//
// All views are returned as sequences that are computed when they are
// iterated. Iterating a sequence again recomputes it from the input, so a
// sequence is never exhausted. Totals are exact decimal sums and do not
// depend on the order of the input.
package analytics

import (
	"cmp"
	"errors"
	"iter"

	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// ErrNoData is returned when a view would divide by a zero total.
var ErrNoData = errors.New("no data")

var hundred = decimal.NewFromInt(100)

// Slice is the share of one label in a breakdown.
type Slice[T ~string] struct {
	Label      T               `json:"label"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"` // Rounded to two decimal places
}

// Point is the total for one period of a series.
type Point struct {
	Label  string          `json:"label"` // The period, YYYY-MM-DD for days and YYYY-MM for months
	Amount decimal.Decimal `json:"amount"`
}

// CategoryBreakdown returns the total and the share of the overall total
// for every category with spending, largest first. Categories without
// spending are omitted.
//
// If the total of all expenses is zero, ErrNoData is returned.
func CategoryBreakdown(expenses []models.Expense) (iter.Seq[Slice[types.Category]], error) {
	return breakdown(expenses, func(e models.Expense) (types.Category, decimal.Decimal) {
		return e.Category, e.Amount
	})
}

// SourceBreakdown is the CategoryBreakdown for income sources.
func SourceBreakdown(income []models.Income) (iter.Seq[Slice[types.Source]], error) {
	return breakdown(income, func(i models.Income) (types.Source, decimal.Decimal) {
		return i.Source, i.Amount
	})
}

func breakdown[R any, T ~string](records []R, split func(R) (T, decimal.Decimal)) (iter.Seq[Slice[T]], error) {
	total := decimal.Zero
	for _, r := range records {
		_, amount := split(r)
		total = total.Add(amount)
	}

	if total.IsZero() {
		return nil, ErrNoData
	}

	return func(yield func(Slice[T]) bool) {
		sums, total := group(records, split)

		out := make([]Slice[T], 0, len(sums))
		for label, amount := range sums {
			if amount.IsZero() {
				continue
			}

			out = append(out, Slice[T]{
				Label:      label,
				Amount:     amount,
				Percentage: amount.Mul(hundred).DivRound(total, 2),
			})
		}

		slices.SortFunc(out, func(a, b Slice[T]) int {
			if c := b.Amount.Cmp(a.Amount); c != 0 {
				return c
			}
			return cmp.Compare(a.Label, b.Label)
		})

		for _, s := range out {
			if !yield(s) {
				return
			}
		}
	}, nil
}

// DailySeries returns the total spent per day in chronological order.
// Days without expenses are not part of the series.
func DailySeries(expenses []models.Expense) iter.Seq[Point] {
	return series(expenses, func(e models.Expense) string {
		return e.Date.String()
	})
}

// MonthlyTotals returns the total spent per month in chronological order.
func MonthlyTotals(expenses []models.Expense) iter.Seq[Point] {
	return series(expenses, func(e models.Expense) string {
		return e.Date.Month().String()
	})
}

// SpendingTrend returns the monthly totals of the last months, ending with
// the month of today. Months without expenses are omitted.
func SpendingTrend(expenses []models.Expense, months int, today types.Date) iter.Seq[Point] {
	last := today.Month()
	first := last.AddDate(0, -(months - 1))

	r := types.DateRange{From: first.First(), Until: last.Last()}

	return func(yield func(Point) bool) {
		for p := range MonthlyTotals(expenses) {
			m, _ := types.ParseMonth(p.Label)
			if !r.Contains(m.First()) {
				continue
			}

			if !yield(p) {
				return
			}
		}
	}
}

func series(expenses []models.Expense, period func(models.Expense) string) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		sums, _ := group(expenses, func(e models.Expense) (string, decimal.Decimal) {
			return period(e), e.Amount
		})

		labels := make([]string, 0, len(sums))
		for label := range sums {
			labels = append(labels, label)
		}

		// ISO dates sort chronologically as strings
		slices.SortFunc(labels, cmp.Compare[string])

		for _, label := range labels {
			if !yield(Point{Label: label, Amount: sums[label]}) {
				return
			}
		}
	}
}

func group[R any, K comparable](records []R, split func(R) (K, decimal.Decimal)) (map[K]decimal.Decimal, decimal.Decimal) {
	sums := make(map[K]decimal.Decimal)
	total := decimal.Zero

	for _, r := range records {
		key, amount := split(r)
		sums[key] = sums[key].Add(amount)
		total = total.Add(amount)
	}

	return sums, total
}
