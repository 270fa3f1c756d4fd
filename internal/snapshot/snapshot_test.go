package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneymap-dev/moneymap/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func validSnapshot() *Snapshot {
	return &Snapshot{
		Accounts: []model.Account{
			{ID: "acc-1", Name: "Main", Type: model.AccountTypeChecking, Balance: dec("2500"), Currency: "USD"},
		},
		Income: []model.IncomeRecord{
			{Category: model.IncomeSalary, Amount: dec("3000"), Currency: "USD"},
		},
		Expenses: []model.ExpenseRecord{
			{Category: model.ExpenseFood, Amount: dec("400"), Currency: "USD"},
		},
		Goals: []model.SavingsGoal{
			{ID: "g1", Name: "Vacation", Target: dec("5000"), Current: dec("1000"), MonthlyContribution: dec("200")},
		},
		Flows: []model.RecurringFlow{
			{ID: "rf1", Name: "Rent", Source: model.FlowEndpoint{Kind: model.EndpointAccount, ID: "acc-1"},
				Target: model.FlowEndpoint{Kind: model.EndpointExpense, Category: "housing"},
				Amount: dec("1200"), Frequency: model.FrequencyMonthly},
		},
	}
}

func TestRoundTrip(t *testing.T) {
	s := validSnapshot()
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, Save(path, s))

	got, err := Load(path)
	require.NoError(t, err)

	require.Len(t, got.Accounts, 1)
	assert.Equal(t, "acc-1", got.Accounts[0].ID)
	assert.True(t, dec("2500").Equal(got.Accounts[0].Balance))
	require.Len(t, got.Flows, 1)
	assert.Equal(t, model.EndpointExpense, got.Flows[0].Target.Kind)
	assert.Equal(t, "housing", got.Flows[0].Target.Category)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing snapshot")
}

func TestNormalize_UnknownEnumsFallBack(t *testing.T) {
	s := validSnapshot()
	s.Accounts[0].Type = "brokerage"
	s.Income[0].Category = "lottery"
	s.Flows[0].Frequency = "fortnightly"

	warnings := s.Normalize()

	assert.Len(t, warnings, 3)
	assert.Equal(t, model.AccountTypeOther, s.Accounts[0].Type)
	assert.Equal(t, model.IncomeOther, s.Income[0].Category)
	assert.Equal(t, model.FrequencyMonthly, s.Flows[0].Frequency)
}

func TestNormalize_CleanSnapshotHasNoWarnings(t *testing.T) {
	assert.Empty(t, validSnapshot().Normalize())
}

func TestValidate_CleanSnapshot(t *testing.T) {
	assert.Empty(t, validSnapshot().Validate())
}

func TestValidate_DuplicateAndMissingIDs(t *testing.T) {
	s := validSnapshot()
	s.Accounts = append(s.Accounts, model.Account{ID: "acc-1", Type: model.AccountTypeSavings})
	s.Goals = append(s.Goals, model.SavingsGoal{Name: "unnamed"})

	errs := s.Validate()
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "duplicate id")
	assert.Contains(t, errs[1].Error(), "missing id")
}

func TestValidate_NegativeAmounts(t *testing.T) {
	s := validSnapshot()
	s.Income[0].Amount = dec("-10")
	s.Goals[0].MonthlyContribution = dec("-5")
	s.Investments = []model.Investment{
		{ID: "i1", Type: model.AssetStock, Quantity: dec("-2"), AverageCost: dec("10")},
	}

	errs := s.Validate()
	assert.Len(t, errs, 3)
}

func TestValidate_DanglingFlowReferencesAllowed(t *testing.T) {
	// Cross-reference resolution belongs to the builder, which drops
	// danglers defensively; the snapshot stays valid.
	s := validSnapshot()
	s.Flows[0].Source = model.FlowEndpoint{Kind: model.EndpointAccount, ID: "acc-404"}
	assert.Empty(t, s.Validate())
}

func TestLoadRejectsInvalidSnapshot(t *testing.T) {
	s := validSnapshot()
	s.Accounts = append(s.Accounts, s.Accounts[0]) // duplicate id
	path := filepath.Join(t.TempDir(), "dup.json")
	require.NoError(t, Save(path, s))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid snapshot")
}
