// Package formula holds the pure projection math: compound growth,
// goal-horizon search, and budget classification.
package formula

import "github.com/shopspring/decimal"

// HorizonCapMonths bounds the goal-horizon search at 100 years. The cap
// is a loop guard, not a business rule: hitting it marks the goal
// unreachable instead of hanging on inputs that never converge.
const HorizonCapMonths = 1200

var (
	one    = decimal.NewFromInt(1)
	twelve = decimal.NewFromInt(12)
)

// CompoundGrowth projects a balance forward month by month. Growth is
// applied once per completed compounding period at rate
// annualRate/compoundsPerYear (annualRate is a fraction, e.g. 0.07),
// and monthlyContribution is added once per month after growth.
// Supported compounding frequencies are those with whole-month periods
// (1, 2, 3, 4, 6, 12); any other value is clamped to monthly
// compounding. Negative months count as zero elapsed time, returning
// principal unchanged. A zero rate degrades to pure accumulation.
func CompoundGrowth(principal, monthlyContribution, annualRate decimal.Decimal, compoundsPerYear, months int) decimal.Decimal {
	if months <= 0 {
		return principal
	}

	monthsPerPeriod := 1
	switch compoundsPerYear {
	case 1, 2, 3, 4, 6, 12:
		monthsPerPeriod = 12 / compoundsPerYear
	default:
		compoundsPerYear = 12
	}

	factor := one.Add(annualRate.Div(decimal.NewFromInt(int64(compoundsPerYear))))

	balance := principal
	for m := 1; m <= months; m++ {
		if m%monthsPerPeriod == 0 {
			balance = balance.Mul(factor)
		}
		balance = balance.Add(monthlyContribution)
	}
	return balance
}

// Horizon is the outcome of a goal-horizon search.
type Horizon struct {
	// Months until the target is reached. Zero when the goal is already
	// met; meaningless when Unreachable is set.
	Months int
	// FinalAmount is the balance after Months steps, or the balance at
	// the cap when the goal is unreachable.
	FinalAmount decimal.Decimal
	// Unreachable is set when the target cannot be reached within
	// HorizonCapMonths. Callers must check it and render "never".
	Unreachable bool
}

// GoalHorizon counts the months until a balance reaches target under a
// monthly contribution and monthly compounding at annualRate/12.
// The search is always monthly-stepped; it does not share
// CompoundGrowth's compounding-frequency parameter.
func GoalHorizon(current, target, monthlyContribution, annualRate decimal.Decimal) Horizon {
	if current.GreaterThanOrEqual(target) {
		return Horizon{Months: 0, FinalAmount: current}
	}

	rate := annualRate.Div(twelve)
	factor := one.Add(rate)

	balance := current
	for m := 1; m <= HorizonCapMonths; m++ {
		balance = balance.Mul(factor).Add(monthlyContribution)
		if balance.GreaterThanOrEqual(target) {
			return Horizon{Months: m, FinalAmount: balance}
		}
	}
	return Horizon{Months: HorizonCapMonths, FinalAmount: balance, Unreachable: true}
}
