package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/moneymap-dev/moneymap/internal/config"
	"github.com/moneymap-dev/moneymap/internal/model"
	"github.com/moneymap-dev/moneymap/internal/snapshot"
)

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a default config and an example snapshot",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir)
		},
	}

	return cmd
}

func runInit(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	if err := config.Save(filepath.Join(dir, "moneymap.yaml"), config.Default()); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	if err := snapshot.Save(filepath.Join(dir, "snapshot.json"), exampleSnapshot()); err != nil {
		return fmt.Errorf("writing example snapshot: %w", err)
	}

	return nil
}

func exampleSnapshot() *snapshot.Snapshot {
	price := decimal.NewFromInt(450)
	return &snapshot.Snapshot{
		Accounts: []model.Account{
			{ID: "checking-1", Name: "Everyday Checking", Type: model.AccountTypeChecking,
				Balance: decimal.NewFromInt(2500), Currency: "USD"},
			{ID: "savings-1", Name: "Emergency Fund", Type: model.AccountTypeSavings,
				Balance: decimal.NewFromInt(8000), Currency: "USD"},
		},
		Income: []model.IncomeRecord{
			{Category: model.IncomeSalary, Amount: decimal.NewFromInt(4200), Currency: "USD"},
		},
		Expenses: []model.ExpenseRecord{
			{Category: model.ExpenseHousing, Amount: decimal.NewFromInt(1400), Currency: "USD"},
			{Category: model.ExpenseFood, Amount: decimal.NewFromInt(520), Currency: "USD"},
		},
		Goals: []model.SavingsGoal{
			{ID: "goal-vacation", Name: "Vacation", Target: decimal.NewFromInt(5000),
				Current: decimal.NewFromInt(1200), MonthlyContribution: decimal.NewFromInt(250),
				AnnualRate: decimal.NewFromFloat(0.04)},
		},
		Flows: []model.RecurringFlow{
			{ID: "flow-autosave", Name: "Auto-save", Amount: decimal.NewFromInt(200),
				Frequency: model.FrequencyMonthly,
				Source:    model.FlowEndpoint{Kind: model.EndpointAccount, ID: "checking-1"},
				Target:    model.FlowEndpoint{Kind: model.EndpointAccount, ID: "savings-1"}},
		},
		Investments: []model.Investment{
			{ID: "inv-1", Symbol: "VTI", Type: model.AssetETF, Quantity: decimal.NewFromInt(12),
				AverageCost: decimal.NewFromInt(400), CurrentPrice: &price, Currency: "USD"},
		},
		Streaks: []model.Streak{
			{Type: "budget-kept", Current: 4, Longest: 9},
		},
		Budgets: []model.Budget{
			{Category: model.ExpenseFood, Monthly: decimal.NewFromInt(600)},
			{Category: model.ExpenseHousing, Monthly: decimal.NewFromInt(1500)},
		},
	}
}
