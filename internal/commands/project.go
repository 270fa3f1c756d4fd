package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/moneymap-dev/moneymap/internal/formula"
)

func newProjectCommand() *cobra.Command {
	projectCmd := &cobra.Command{
		Use:   "project",
		Short: "Run projections",
	}
	projectCmd.AddCommand(newProjectGrowthCommand())
	projectCmd.AddCommand(newProjectGoalCommand())
	return projectCmd
}

func newProjectGrowthCommand() *cobra.Command {
	var principal, monthly, rate string
	var compounds, months int

	cmd := &cobra.Command{
		Use:   "growth",
		Short: "Project compound growth of a balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := decimal.NewFromString(principal)
			if err != nil {
				return fmt.Errorf("invalid principal %q: %w", principal, err)
			}
			m, err := decimal.NewFromString(monthly)
			if err != nil {
				return fmt.Errorf("invalid monthly contribution %q: %w", monthly, err)
			}
			r, err := decimal.NewFromString(rate)
			if err != nil {
				return fmt.Errorf("invalid rate %q: %w", rate, err)
			}

			final := formula.CompoundGrowth(p, m, r, compounds, months)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", final.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&principal, "principal", "0", "starting balance")
	cmd.Flags().StringVar(&monthly, "monthly", "0", "monthly contribution")
	cmd.Flags().StringVar(&rate, "rate", "0", "annual rate as a fraction, e.g. 0.07")
	cmd.Flags().IntVar(&compounds, "compounds", 12, "compounding periods per year")
	cmd.Flags().IntVar(&months, "months", 12, "months to project")

	return cmd
}

func newProjectGoalCommand() *cobra.Command {
	var current, target, monthly, rate string

	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Find how many months until a savings goal is reached",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := decimal.NewFromString(current)
			if err != nil {
				return fmt.Errorf("invalid current amount %q: %w", current, err)
			}
			tgt, err := decimal.NewFromString(target)
			if err != nil {
				return fmt.Errorf("invalid target %q: %w", target, err)
			}
			m, err := decimal.NewFromString(monthly)
			if err != nil {
				return fmt.Errorf("invalid monthly contribution %q: %w", monthly, err)
			}
			r, err := decimal.NewFromString(rate)
			if err != nil {
				return fmt.Errorf("invalid rate %q: %w", rate, err)
			}

			h := formula.GoalHorizon(c, tgt, m, r)
			if h.Unreachable {
				fmt.Fprintf(cmd.OutOrStdout(), "never (balance after %d months: %s)\n",
					formula.HorizonCapMonths, h.FinalAmount.StringFixed(2))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d months (final balance %s)\n",
				h.Months, h.FinalAmount.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&current, "current", "0", "current balance")
	cmd.Flags().StringVar(&target, "target", "0", "target amount")
	cmd.Flags().StringVar(&monthly, "monthly", "0", "monthly contribution")
	cmd.Flags().StringVar(&rate, "rate", "0", "annual rate as a fraction")

	return cmd
}
