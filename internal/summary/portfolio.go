package summary

import (
	"github.com/shopspring/decimal"

	"github.com/moneymap-dev/moneymap/internal/category"
	"github.com/moneymap-dev/moneymap/internal/model"
)

// PortfolioSummary is the market-vs-cost view of all holdings.
type PortfolioSummary struct {
	Value     decimal.Decimal `json:"value"`
	CostBasis decimal.Decimal `json:"cost_basis"`
	GainLoss  decimal.Decimal `json:"gain_loss"`
	// GainLossPercent is 0 when the cost basis is 0, never NaN or Inf.
	GainLossPercent float64 `json:"gain_loss_percent"`
}

// Portfolio values the holdings against their cost basis.
func Portfolio(investments []model.Investment) PortfolioSummary {
	value := decimal.Zero
	cost := decimal.Zero
	for _, inv := range investments {
		value = value.Add(inv.Value())
		cost = cost.Add(inv.CostBasis())
	}

	s := PortfolioSummary{Value: value, CostBasis: cost, GainLoss: value.Sub(cost)}
	if cost.Sign() > 0 {
		pct, _ := s.GainLoss.Div(cost).Mul(decimal.NewFromInt(100)).Float64()
		s.GainLossPercent = pct
	}
	return s
}

// AllocationSlice is one asset type's share of the portfolio.
type AllocationSlice struct {
	Type       model.AssetType `json:"type"`
	Label      string          `json:"label"`
	Color      string          `json:"color"`
	Value      decimal.Decimal `json:"value"`
	Percentage float64         `json:"percentage"`
}

// Allocation groups holdings by asset type and returns percentage
// shares that sum to 100 within floating-point tolerance. A portfolio
// with zero total value yields an empty breakdown. Slice order follows
// the first appearance of each asset type in the input.
func Allocation(investments []model.Investment, registry *category.Registry) []AllocationSlice {
	if registry == nil {
		registry = category.Default()
	}

	totals := make(map[model.AssetType]decimal.Decimal)
	var order []model.AssetType
	for _, inv := range investments {
		if _, seen := totals[inv.Type]; !seen {
			order = append(order, inv.Type)
		}
		totals[inv.Type] = totals[inv.Type].Add(inv.Value())
	}

	grand := decimal.Zero
	for _, v := range totals {
		grand = grand.Add(v)
	}
	if grand.Sign() <= 0 {
		return nil
	}

	slices := make([]AllocationSlice, 0, len(order))
	for _, typ := range order {
		meta := registry.Asset(typ)
		pct, _ := totals[typ].Div(grand).Mul(decimal.NewFromInt(100)).Float64()
		slices = append(slices, AllocationSlice{
			Type:       typ,
			Label:      meta.Label,
			Color:      meta.Color,
			Value:      totals[typ],
			Percentage: pct,
		})
	}
	return slices
}
