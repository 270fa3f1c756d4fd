package summary

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneymap-dev/moneymap/internal/formula"
	"github.com/moneymap-dev/moneymap/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestNetWorth_Buckets(t *testing.T) {
	accounts := []model.Account{
		{ID: "a", Type: model.AccountTypeChecking, Balance: dec("2500")},
		{ID: "b", Type: model.AccountTypeSavings, Balance: dec("8000")},
		{ID: "c", Type: model.AccountTypeCash, Balance: dec("150")},
		{ID: "d", Type: model.AccountTypeInvestment, Balance: dec("12000")},
		{ID: "e", Type: model.AccountTypeCrypto, Balance: dec("1800")},
		{ID: "f", Type: model.AccountTypeCredit, Balance: dec("-950")},
		{ID: "g", Type: model.AccountTypeLoan, Balance: dec("-4000")},
	}

	s := NetWorth(accounts)

	assert.Equal(t, "19500.00", s.Total.StringFixed(2))
	assert.Equal(t, "10650.00", s.Cash.StringFixed(2))
	assert.Equal(t, "12000.00", s.Investments.StringFixed(2))
	assert.Equal(t, "1800.00", s.Crypto.StringFixed(2))
	assert.Equal(t, "4950.00", s.Debt.StringFixed(2))
	assert.Equal(t, "Silver", s.Tier)
}

func TestNetWorth_ExcludedAccountsSkipped(t *testing.T) {
	accounts := []model.Account{
		{ID: "a", Type: model.AccountTypeChecking, Balance: dec("1000")},
		{ID: "b", Type: model.AccountTypeChecking, Balance: dec("99999"), ExcludeFromNetWorth: true},
	}

	s := NetWorth(accounts)
	assert.Equal(t, "1000.00", s.Total.StringFixed(2))
	assert.Equal(t, "1000.00", s.Cash.StringFixed(2))
}

func TestNetWorth_OtherTypeCountsTowardTotalOnly(t *testing.T) {
	accounts := []model.Account{
		{ID: "a", Type: model.AccountTypeOther, Balance: dec("500")},
	}

	s := NetWorth(accounts)
	assert.Equal(t, "500.00", s.Total.StringFixed(2))
	assert.True(t, s.Cash.IsZero())
	assert.True(t, s.Investments.IsZero())
}

func TestNetWorth_PositiveCreditBalanceIsNotDebt(t *testing.T) {
	accounts := []model.Account{
		{ID: "a", Type: model.AccountTypeCredit, Balance: dec("120")}, // overpaid card
	}

	s := NetWorth(accounts)
	assert.True(t, s.Debt.IsZero())
	assert.Equal(t, "120.00", s.Total.StringFixed(2))
}

func price(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestPortfolio_GainLoss(t *testing.T) {
	investments := []model.Investment{
		{ID: "i1", Type: model.AssetStock, Quantity: dec("10"), AverageCost: dec("100"), CurrentPrice: price("150")},
		{ID: "i2", Type: model.AssetETF, Quantity: dec("5"), AverageCost: dec("200"), CurrentPrice: price("180")},
	}

	s := Portfolio(investments)
	assert.Equal(t, "2400.00", s.Value.StringFixed(2))
	assert.Equal(t, "2000.00", s.CostBasis.StringFixed(2))
	assert.Equal(t, "400.00", s.GainLoss.StringFixed(2))
	assert.InDelta(t, 20.0, s.GainLossPercent, 0.001)
}

func TestPortfolio_ZeroCostBasisYieldsZeroPercent(t *testing.T) {
	investments := []model.Investment{
		{ID: "i1", Type: model.AssetCrypto, Quantity: dec("2"), AverageCost: decimal.Zero, CurrentPrice: price("500")},
	}

	s := Portfolio(investments)
	assert.Equal(t, "1000.00", s.Value.StringFixed(2))
	assert.Zero(t, s.GainLossPercent, "no NaN/Inf leakage")
}

func TestPortfolio_Empty(t *testing.T) {
	s := Portfolio(nil)
	assert.True(t, s.Value.IsZero())
	assert.Zero(t, s.GainLossPercent)
}

func TestAllocation_SharesSumToHundred(t *testing.T) {
	investments := []model.Investment{
		{ID: "i1", Type: model.AssetStock, Quantity: dec("10"), AverageCost: dec("100"), CurrentPrice: price("150")},
		{ID: "i2", Type: model.AssetETF, Quantity: dec("3"), AverageCost: dec("250")},
		{ID: "i3", Type: model.AssetStock, Quantity: dec("7"), AverageCost: dec("90"), CurrentPrice: price("110")},
		{ID: "i4", Type: model.AssetCrypto, Quantity: dec("0.5"), AverageCost: dec("20000"), CurrentPrice: price("30000")},
	}

	slices := Allocation(investments, nil)
	require.Len(t, slices, 3)

	sum := 0.0
	for _, s := range slices {
		sum += s.Percentage
	}
	assert.InDelta(t, 100.0, sum, 0.01)

	// Order follows first appearance, stocks grouped.
	assert.Equal(t, model.AssetStock, slices[0].Type)
	assert.Equal(t, "2270.00", slices[0].Value.StringFixed(2))
	assert.Equal(t, "Stocks", slices[0].Label)
}

func TestAllocation_FallsBackToCostThenZero(t *testing.T) {
	investments := []model.Investment{
		{ID: "i1", Type: model.AssetBond, Quantity: dec("4"), AverageCost: dec("50")},
		{ID: "i2", Type: model.AssetOther, Quantity: dec("9"), AverageCost: decimal.Zero},
	}

	slices := Allocation(investments, nil)
	require.Len(t, slices, 2)
	assert.InDelta(t, 100.0, slices[0].Percentage, 0.001)
	assert.InDelta(t, 0.0, slices[1].Percentage, 0.001)
}

func TestAllocation_ZeroTotalIsEmpty(t *testing.T) {
	assert.Empty(t, Allocation(nil, nil))

	investments := []model.Investment{
		{ID: "i1", Type: model.AssetStock, Quantity: decimal.Zero, AverageCost: dec("100")},
	}
	assert.Empty(t, Allocation(investments, nil))
}

func TestGoals_ProjectsHorizon(t *testing.T) {
	goals := []model.SavingsGoal{
		{ID: "g1", Name: "Vacation", Target: dec("1200"), Current: decimal.Zero,
			MonthlyContribution: dec("100"), AnnualRate: decimal.Zero},
		{ID: "g2", Name: "Done", Target: dec("500"), Current: dec("600")},
		{ID: "g3", Name: "Stalled", Target: dec("1000"), Current: decimal.Zero},
	}

	out := Goals(goals)
	require.Len(t, out, 3)

	assert.Equal(t, 12, out[0].MonthsToTarget)
	assert.False(t, out[0].Unreachable)

	assert.True(t, out[1].Achieved)
	assert.Equal(t, 0, out[1].MonthsToTarget)
	assert.InDelta(t, 100.0, out[1].ProgressPercent, 0.001)

	assert.True(t, out[2].Unreachable)
}

func TestBudgets_ClassifiesSpending(t *testing.T) {
	expenses := []model.ExpenseRecord{
		{Category: model.ExpenseFood, Amount: dec("300")},
		{Category: model.ExpenseFood, Amount: dec("220")},
		{Category: model.ExpenseTransport, Amount: dec("90")},
	}
	budgets := []model.Budget{
		{Category: model.ExpenseFood, Monthly: dec("600")},
		{Category: model.ExpenseTransport, Monthly: dec("100")},
		{Category: model.ExpenseHousing, Monthly: dec("1500")},
		{Category: model.ExpenseOther, Monthly: decimal.Zero}, // skipped
	}

	lines := Budgets(expenses, budgets)
	require.Len(t, lines, 3)

	assert.Equal(t, model.ExpenseFood, lines[0].Category)
	assert.Equal(t, "520.00", lines[0].Spent.StringFixed(2))
	assert.InDelta(t, 86.67, lines[0].Percentage, 0.01)
	assert.Equal(t, formula.BudgetWarning, lines[0].Tier)

	assert.Equal(t, formula.BudgetWarning, lines[1].Tier)
	assert.InDelta(t, 90.0, lines[1].Percentage, 0.001)

	// Budgeted category with no spending.
	assert.True(t, lines[2].Spent.IsZero())
	assert.Equal(t, formula.BudgetUnder, lines[2].Tier)
}

func TestStreaks_RecordFlag(t *testing.T) {
	out := Streaks([]model.Streak{
		{Type: "daily-login", Current: 10, Longest: 10},
		{Type: "budget-kept", Current: 2, Longest: 9},
		{Type: "no-spend", Current: 0, Longest: 0},
	})

	require.Len(t, out, 3)
	assert.True(t, out[0].IsRecord)
	assert.False(t, out[1].IsRecord)
	assert.False(t, out[2].IsRecord)
}
