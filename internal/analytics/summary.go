package analytics

import (
	"github.com/ledgerbook/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Summary is the financial overview for a set of expenses and income.
type Summary struct {
	TotalIncome    decimal.Decimal  `json:"totalIncome" example:"3000"`
	TotalExpenses  decimal.Decimal  `json:"totalExpenses" example:"2250.50"`
	NetSavings     decimal.Decimal  `json:"netSavings" example:"749.50"`    // Income minus expenses
	SavingsRate    *decimal.Decimal `json:"savingsRate" example:"24.98"`    // Net savings in percent of income. null when there is no income
	Deficit        bool             `json:"deficit" example:"false"`        // Expenses exceed income
	ExpenseCount   int              `json:"expenseCount" example:"42"`      // Number of expenses
	IncomeCount    int              `json:"incomeCount" example:"2"`        // Number of income records
	AverageExpense decimal.Decimal  `json:"averageExpense" example:"53.58"` // Average amount per expense, rounded to two decimal places
}

// Summarize computes the financial summary.
func Summarize(expenses []models.Expense, income []models.Income) Summary {
	s := Summary{
		TotalIncome:    decimal.Zero,
		TotalExpenses:  decimal.Zero,
		AverageExpense: decimal.Zero,
		ExpenseCount:   len(expenses),
		IncomeCount:    len(income),
	}

	for _, e := range expenses {
		s.TotalExpenses = s.TotalExpenses.Add(e.Amount)
	}

	for _, i := range income {
		s.TotalIncome = s.TotalIncome.Add(i.Amount)
	}

	s.NetSavings = s.TotalIncome.Sub(s.TotalExpenses)
	s.Deficit = s.NetSavings.IsNegative()

	if rate, err := SavingsRate(s.TotalIncome, s.NetSavings); err == nil {
		s.SavingsRate = &rate
	}

	if len(expenses) > 0 {
		s.AverageExpense = s.TotalExpenses.DivRound(decimal.NewFromInt(int64(len(expenses))), 2)
	}

	return s
}

// SavingsRate returns the net savings in percent of the income. Without
// income, the rate is undefined and ErrNoData is returned.
func SavingsRate(income, savings decimal.Decimal) (decimal.Decimal, error) {
	if income.IsZero() {
		return decimal.Zero, ErrNoData
	}

	return savings.Mul(hundred).DivRound(income, 2), nil
}
