package formula

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEvaluateBudget_Tiers(t *testing.T) {
	tests := []struct {
		spent, budget string
		wantPct       float64
		wantTier      BudgetTier
	}{
		{"350", "1000", 35, BudgetUnder},
		{"700", "1000", 70, BudgetUnder},
		{"800", "1000", 80, BudgetWarning},
		{"950", "1000", 95, BudgetWarning},
		{"960", "1000", 96, BudgetOver},
		{"1500", "1000", 150, BudgetOver},
	}
	for _, tt := range tests {
		got := EvaluateBudget(dec(tt.spent), dec(tt.budget))
		assert.InDelta(t, tt.wantPct, got.Percentage, 0.001, "%s/%s", tt.spent, tt.budget)
		assert.Equal(t, tt.wantTier, got.Tier, "%s/%s", tt.spent, tt.budget)
	}
}

func TestEvaluateBudget_ZeroBudgetDegrades(t *testing.T) {
	got := EvaluateBudget(dec("100"), decimal.Zero)
	assert.Equal(t, BudgetUnder, got.Tier)
	assert.Zero(t, got.Percentage)
}
