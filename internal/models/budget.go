package models

import (
	"github.com/ledgerbook/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Budget is the monthly spending limit for a category. There is at most
// one budget per category.
type Budget struct {
	DefaultModel
	Category     types.Category  `json:"category" gorm:"uniqueIndex" example:"Transportation"`
	MonthlyLimit decimal.Decimal `json:"monthlyLimit" gorm:"type:DECIMAL(20,8)" example:"310"`
}
