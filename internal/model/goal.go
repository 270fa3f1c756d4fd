package model

import (
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// SavingsGoal tracks progress toward a savings target under a monthly
// contribution and optional compounding interest.
type SavingsGoal struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Icon                string          `json:"icon,omitempty"`
	Color               string          `json:"color,omitempty"`
	Target              decimal.Decimal `json:"target"`
	Current             decimal.Decimal `json:"current"`
	MonthlyContribution decimal.Decimal `json:"monthly_contribution"`
	AnnualRate          decimal.Decimal `json:"annual_rate"` // fraction, e.g. 0.07
	TargetDate          *time.Time      `json:"target_date,omitempty"`
}

// Achieved reports whether the goal has reached its target.
func (g SavingsGoal) Achieved() bool {
	return g.Current.GreaterThanOrEqual(g.Target)
}

// ProgressPercent returns completion as a percentage capped at 100.
// A non-positive target reads as 0 rather than dividing by zero.
func (g SavingsGoal) ProgressPercent() float64 {
	if g.Target.Sign() <= 0 {
		return 0
	}
	pct := g.Current.Div(g.Target).Mul(hundred)
	if pct.GreaterThan(hundred) {
		return 100
	}
	f, _ := pct.Float64()
	return f
}
