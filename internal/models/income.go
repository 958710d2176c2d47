package models

import (
	"github.com/ledgerbook/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Income is money received on a single day from one source.
type Income struct {
	DefaultModel
	Date        types.Date      `json:"date" gorm:"index" example:"2025-10-01"`
	Source      types.Source    `json:"source" example:"Salary"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"2500.00"`
	Description string          `json:"description" example:"October paycheck"`
}

