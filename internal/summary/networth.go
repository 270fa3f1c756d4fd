// Package summary derives dashboard numbers from the raw collections:
// net-worth buckets, portfolio valuation, asset allocation, streaks and
// goal projections. Everything here is a pure reducer.
package summary

import (
	"github.com/shopspring/decimal"

	"github.com/moneymap-dev/moneymap/internal/leveling"
	"github.com/moneymap-dev/moneymap/internal/model"
)

// NetWorthSummary is total net worth bucketed by account class.
type NetWorthSummary struct {
	Total       decimal.Decimal `json:"total"`
	Cash        decimal.Decimal `json:"cash"`
	Investments decimal.Decimal `json:"investments"`
	Crypto      decimal.Decimal `json:"crypto"`
	// Debt carries the absolute value of negative credit/loan balances.
	Debt decimal.Decimal `json:"debt"`
	Tier string          `json:"tier"`
}

// NetWorth sums account balances into bucketed totals. Accounts flagged
// ExcludeFromNetWorth are skipped entirely. Accounts of type other
// count toward Total but no bucket.
func NetWorth(accounts []model.Account) NetWorthSummary {
	s := NetWorthSummary{
		Total:       decimal.Zero,
		Cash:        decimal.Zero,
		Investments: decimal.Zero,
		Crypto:      decimal.Zero,
		Debt:        decimal.Zero,
	}
	for _, a := range accounts {
		if a.ExcludeFromNetWorth {
			continue
		}
		s.Total = s.Total.Add(a.Balance)

		switch a.Type {
		case model.AccountTypeChecking, model.AccountTypeSavings, model.AccountTypeCash:
			s.Cash = s.Cash.Add(a.Balance)
		case model.AccountTypeInvestment:
			s.Investments = s.Investments.Add(a.Balance)
		case model.AccountTypeCrypto:
			s.Crypto = s.Crypto.Add(a.Balance)
		case model.AccountTypeCredit, model.AccountTypeLoan:
			if a.Balance.Sign() < 0 {
				s.Debt = s.Debt.Add(a.Balance.Abs())
			}
		}
	}
	s.Tier = leveling.TierForNetWorth(s.Total).Label
	return s
}
