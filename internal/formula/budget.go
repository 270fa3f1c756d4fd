package formula

import "github.com/shopspring/decimal"

// BudgetTier classifies spending against a budget.
type BudgetTier string

const (
	BudgetUnder   BudgetTier = "under"   // <= 70% spent
	BudgetWarning BudgetTier = "warning" // <= 95% spent
	BudgetOver    BudgetTier = "over"    // > 95% spent
)

// BudgetStatus is the classification of one spending bucket.
type BudgetStatus struct {
	Percentage float64
	Tier       BudgetTier
}

// EvaluateBudget classifies spent against budget. Precondition:
// budget > 0. A non-positive budget degrades to a zero under-budget
// status instead of dividing by zero.
func EvaluateBudget(spent, budget decimal.Decimal) BudgetStatus {
	if budget.Sign() <= 0 {
		return BudgetStatus{Tier: BudgetUnder}
	}

	pct, _ := spent.Div(budget).Mul(decimal.NewFromInt(100)).Float64()

	tier := BudgetOver
	switch {
	case pct <= 70:
		tier = BudgetUnder
	case pct <= 95:
		tier = BudgetWarning
	}
	return BudgetStatus{Percentage: pct, Tier: tier}
}
