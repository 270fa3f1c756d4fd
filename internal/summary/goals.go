package summary

import (
	"github.com/shopspring/decimal"

	"github.com/moneymap-dev/moneymap/internal/formula"
	"github.com/moneymap-dev/moneymap/internal/model"
)

// GoalSummary joins a savings goal to its projection.
type GoalSummary struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Target          decimal.Decimal `json:"target"`
	Current         decimal.Decimal `json:"current"`
	ProgressPercent float64         `json:"progress_percent"`
	Achieved        bool            `json:"achieved"`
	// MonthsToTarget is 0 for achieved goals and meaningless when
	// Unreachable is set.
	MonthsToTarget int             `json:"months_to_target"`
	ProjectedFinal decimal.Decimal `json:"projected_final"`
	Unreachable    bool            `json:"unreachable"`
}

// Goals projects every savings goal through the horizon search.
func Goals(goals []model.SavingsGoal) []GoalSummary {
	out := make([]GoalSummary, 0, len(goals))
	for _, g := range goals {
		h := formula.GoalHorizon(g.Current, g.Target, g.MonthlyContribution, g.AnnualRate)
		out = append(out, GoalSummary{
			ID:              g.ID,
			Name:            g.Name,
			Target:          g.Target,
			Current:         g.Current,
			ProgressPercent: g.ProgressPercent(),
			Achieved:        g.Achieved(),
			MonthsToTarget:  h.Months,
			ProjectedFinal:  h.FinalAmount,
			Unreachable:     h.Unreachable,
		})
	}
	return out
}

// StreakSummary is a streak with its derived record flag.
type StreakSummary struct {
	Type     string `json:"type"`
	Current  int    `json:"current"`
	Longest  int    `json:"longest"`
	IsRecord bool   `json:"is_record"`
}

// Streaks evaluates the record flag for each streak, preserving order.
func Streaks(streaks []model.Streak) []StreakSummary {
	out := make([]StreakSummary, 0, len(streaks))
	for _, s := range streaks {
		out = append(out, StreakSummary{
			Type:     s.Type,
			Current:  s.Current,
			Longest:  s.Longest,
			IsRecord: s.IsRecord(),
		})
	}
	return out
}
