package model

import "github.com/shopspring/decimal"

// AssetType classifies an investment holding.
type AssetType string

const (
	AssetStock  AssetType = "stock"
	AssetETF    AssetType = "etf"
	AssetFund   AssetType = "fund"
	AssetBond   AssetType = "bond"
	AssetCrypto AssetType = "crypto"
	AssetCash   AssetType = "cash"
	AssetOther  AssetType = "other"
)

// ParseAssetType normalizes a raw string; unknown values map to AssetOther.
func ParseAssetType(s string) AssetType {
	switch AssetType(s) {
	case AssetStock, AssetETF, AssetFund, AssetBond, AssetCrypto, AssetCash:
		return AssetType(s)
	}
	return AssetOther
}

// Investment is a single portfolio holding. CurrentPrice is nil when no
// quote is available; valuation then falls back to average cost.
type Investment struct {
	ID           string           `json:"id"`
	Symbol       string           `json:"symbol"`
	Name         string           `json:"name,omitempty"`
	Type         AssetType        `json:"type"`
	Quantity     decimal.Decimal  `json:"quantity"`
	AverageCost  decimal.Decimal  `json:"average_cost"`
	CurrentPrice *decimal.Decimal `json:"current_price,omitempty"`
	Currency     string           `json:"currency"`
}

// Value returns quantity times the best known unit price, preferring the
// live quote over cost basis. Unknown price values as zero.
func (i Investment) Value() decimal.Decimal {
	switch {
	case i.CurrentPrice != nil:
		return i.Quantity.Mul(*i.CurrentPrice)
	case !i.AverageCost.IsZero():
		return i.Quantity.Mul(i.AverageCost)
	default:
		return decimal.Zero
	}
}

// CostBasis returns quantity times average cost.
func (i Investment) CostBasis() decimal.Decimal {
	return i.Quantity.Mul(i.AverageCost)
}
