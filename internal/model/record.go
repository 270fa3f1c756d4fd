package model

import "github.com/shopspring/decimal"

// IncomeCategory classifies a source of income.
type IncomeCategory string

const (
	IncomeSalary     IncomeCategory = "salary"
	IncomeFreelance  IncomeCategory = "freelance"
	IncomeBusiness   IncomeCategory = "business"
	IncomeInvestment IncomeCategory = "investment"
	IncomeRental     IncomeCategory = "rental"
	IncomeGift       IncomeCategory = "gift"
	IncomeOther      IncomeCategory = "other"
)

// ParseIncomeCategory normalizes a raw string; unknown values map to IncomeOther.
func ParseIncomeCategory(s string) IncomeCategory {
	switch IncomeCategory(s) {
	case IncomeSalary, IncomeFreelance, IncomeBusiness, IncomeInvestment,
		IncomeRental, IncomeGift:
		return IncomeCategory(s)
	}
	return IncomeOther
}

// ExpenseCategory classifies a spending bucket.
type ExpenseCategory string

const (
	ExpenseHousing       ExpenseCategory = "housing"
	ExpenseFood          ExpenseCategory = "food"
	ExpenseTransport     ExpenseCategory = "transport"
	ExpenseUtilities     ExpenseCategory = "utilities"
	ExpenseHealth        ExpenseCategory = "health"
	ExpenseEntertainment ExpenseCategory = "entertainment"
	ExpenseSubscriptions ExpenseCategory = "subscriptions"
	ExpenseShopping      ExpenseCategory = "shopping"
	ExpenseOther         ExpenseCategory = "other"
)

// ParseExpenseCategory normalizes a raw string; unknown values map to ExpenseOther.
func ParseExpenseCategory(s string) ExpenseCategory {
	switch ExpenseCategory(s) {
	case ExpenseHousing, ExpenseFood, ExpenseTransport, ExpenseUtilities,
		ExpenseHealth, ExpenseEntertainment, ExpenseSubscriptions, ExpenseShopping:
		return ExpenseCategory(s)
	}
	return ExpenseOther
}

// IncomeRecord is an aggregated income amount for one category over a
// trailing period (typically the last 30 days). Immutable snapshot input.
type IncomeRecord struct {
	Category   IncomeCategory  `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	PeriodDays int             `json:"period_days,omitempty"`
}

// ExpenseRecord is an aggregated expense amount for one category over a
// trailing period. Immutable snapshot input.
type ExpenseRecord struct {
	Category   ExpenseCategory `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	PeriodDays int             `json:"period_days,omitempty"`
}
