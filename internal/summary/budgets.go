package summary

import (
	"github.com/shopspring/decimal"

	"github.com/moneymap-dev/moneymap/internal/formula"
	"github.com/moneymap-dev/moneymap/internal/model"
)

// BudgetLine is one expense category's spending measured against its cap.
type BudgetLine struct {
	Category   model.ExpenseCategory `json:"category"`
	Spent      decimal.Decimal       `json:"spent"`
	Budget     decimal.Decimal       `json:"budget"`
	Percentage float64               `json:"percentage"`
	Tier       formula.BudgetTier    `json:"tier"`
}

// Budgets classifies period spending against the configured caps, in
// budget order. Spending without a budget is ignored; a budgeted
// category with no spending reads as zero spent. Zero-cap budgets are
// skipped (EvaluateBudget's precondition is a positive budget).
func Budgets(expenses []model.ExpenseRecord, budgets []model.Budget) []BudgetLine {
	spentBy := make(map[model.ExpenseCategory]decimal.Decimal)
	for _, rec := range expenses {
		spentBy[rec.Category] = spentBy[rec.Category].Add(rec.Amount)
	}

	out := make([]BudgetLine, 0, len(budgets))
	for _, b := range budgets {
		if b.Monthly.Sign() <= 0 {
			continue
		}
		spent := spentBy[b.Category]
		status := formula.EvaluateBudget(spent, b.Monthly)
		out = append(out, BudgetLine{
			Category:   b.Category,
			Spent:      spent,
			Budget:     b.Monthly,
			Percentage: status.Percentage,
			Tier:       status.Tier,
		})
	}
	return out
}
