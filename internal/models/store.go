package models

import (
	"context"
	"errors"
	"time"

	"github.com/ledgerbook/backend/internal/types"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExpenseFilter selects expenses. Zero fields do not filter.
type ExpenseFilter struct {
	Range       types.DateRange
	Category    types.Category
	Description string // glob pattern, e.g. "*coffee*"
}

// IncomeFilter selects income records. Zero fields do not filter.
type IncomeFilter struct {
	Range  types.DateRange
	Source types.Source
}

// Store persists records in the database.
type Store struct {
	db *gorm.DB
}

// NewStore returns a Store backed by the database connection.
func NewStore(db *gorm.DB) Store {
	return Store{db: db}
}

// FindBudget returns the budget for the category.
func (s Store) FindBudget(ctx context.Context, category types.Category) (Budget, error) {
	var budget Budget
	err := s.db.WithContext(ctx).Where(&Budget{Category: category}).First(&budget).Error
	return budget, err
}

// ListBudgets returns all budgets, ordered by category.
func (s Store) ListBudgets(ctx context.Context) ([]Budget, error) {
	var budgets []Budget
	err := s.db.WithContext(ctx).Order("category ASC").Find(&budgets).Error
	return budgets, err
}

// UpsertBudget sets the monthly limit for a category. When a budget for
// the category exists, only its limit is overwritten. Its creation time is
// kept unless preserveCreatedAt is false.
//
// The boolean return value reports whether a new budget was created.
func (s Store) UpsertBudget(ctx context.Context, category types.Category, limit decimal.Decimal, preserveCreatedAt bool) (Budget, bool, error) {
	var budget Budget
	var created bool

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where(&Budget{Category: category}).First(&budget).Error
		if errors.Is(err, ErrResourceNotFound) {
			budget = Budget{Category: category, MonthlyLimit: limit}
			created = true
			return tx.Create(&budget).Error
		} else if err != nil {
			return err
		}

		updates := map[string]any{"monthly_limit": limit}
		if !preserveCreatedAt {
			updates["created_at"] = time.Now()
		}

		err = tx.Model(&budget).Updates(updates).Error
		if err != nil {
			return err
		}

		return tx.First(&budget, "id = ?", budget.ID).Error
	})
	if err != nil {
		// Transactions that cannot be started bypass the callbacks
		return Budget{}, false, general(err)
	}

	return budget, created, nil
}

// DeleteBudget removes the budget for the category.
func (s Store) DeleteBudget(ctx context.Context, category types.Category) error {
	budget, err := s.FindBudget(ctx, category)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Delete(&budget).Error
}

// SumExpenses returns the total amount spent in the category within the
// date range. An empty category sums over all categories.
func (s Store) SumExpenses(ctx context.Context, category types.Category, r types.DateRange) (decimal.Decimal, error) {
	expenses, err := s.ListExpenses(ctx, ExpenseFilter{Range: r, Category: category})
	if err != nil {
		return decimal.Zero, err
	}

	sum := decimal.Zero
	for _, e := range expenses {
		sum = sum.Add(e.Amount)
	}
	return sum, nil
}

// CreateExpenses stores all expenses or none of them.
func (s Store) CreateExpenses(ctx context.Context, expenses []Expense) error {
	if len(expenses) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&expenses, 100).Error
	})
	return general(err)
}

// ListExpenses returns the matching expenses, newest first.
func (s Store) ListExpenses(ctx context.Context, f ExpenseFilter) ([]Expense, error) {
	expenses := make([]Expense, 0)
	if f.Range.Empty() {
		return expenses, nil
	}

	q := dateRange(s.db.WithContext(ctx), f.Range).
		Order("date DESC, created_at DESC")

	if f.Category != "" {
		q = q.Where(&Expense{Category: f.Category})
	}

	err := q.Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	if f.Description == "" {
		return expenses, nil
	}

	matching := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		if glob.Glob(f.Description, e.Description) {
			matching = append(matching, e)
		}
	}
	return matching, nil
}

// ListIncome returns the matching income records, newest first.
func (s Store) ListIncome(ctx context.Context, f IncomeFilter) ([]Income, error) {
	income := make([]Income, 0)
	if f.Range.Empty() {
		return income, nil
	}

	q := dateRange(s.db.WithContext(ctx), f.Range).
		Order("date DESC, created_at DESC")

	if f.Source != "" {
		q = q.Where(&Income{Source: f.Source})
	}

	err := q.Find(&income).Error
	if err != nil {
		return nil, err
	}
	return income, nil
}

// dateRange limits the query to records dated within the range.
func dateRange(q *gorm.DB, r types.DateRange) *gorm.DB {
	if !r.From.IsZero() {
		q = q.Where("date >= ?", r.From)
	}

	if !r.Until.IsZero() {
		q = q.Where("date <= ?", r.Until)
	}

	return q
}
