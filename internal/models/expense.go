package models

import (
	"github.com/ledgerbook/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Expense is money spent on a single day in one category.
type Expense struct {
	DefaultModel
	Date        types.Date      `json:"date" gorm:"index" example:"2025-10-01"`
	Category    types.Category  `json:"category" gorm:"index" example:"Food & Dining"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"12.50"`
	Description string          `json:"description" example:"Coffee, pastry"`
}
