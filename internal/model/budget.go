package model

import "github.com/shopspring/decimal"

// Budget is a monthly spending cap for one expense category.
type Budget struct {
	Category ExpenseCategory `json:"category"`
	Monthly  decimal.Decimal `json:"monthly"`
}
