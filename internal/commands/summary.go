package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/moneymap-dev/moneymap/internal/snapshot"
	"github.com/moneymap-dev/moneymap/internal/summary"
)

func newSummaryCommand() *cobra.Command {
	var snapshotPath string
	var accountsPath string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print net worth, portfolio and goal summaries",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshot(snapshotPath, accountsPath)
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), snap)
			return nil
		},
	}

	cmd.Flags().StringVarP(&snapshotPath, "snapshot", "f", "snapshot.json", "input snapshot file")
	cmd.Flags().StringVar(&accountsPath, "accounts", "", "accounts.csv overriding the snapshot's account list")

	return cmd
}

func printSummary(w io.Writer, snap *snapshot.Snapshot) {
	nw := summary.NetWorth(snap.Accounts)
	fmt.Fprintf(w, "Net worth: %s (%s)\n", nw.Total.StringFixed(2), nw.Tier)
	fmt.Fprintf(w, "  cash:        %s\n", nw.Cash.StringFixed(2))
	fmt.Fprintf(w, "  investments: %s\n", nw.Investments.StringFixed(2))
	fmt.Fprintf(w, "  crypto:      %s\n", nw.Crypto.StringFixed(2))
	fmt.Fprintf(w, "  debt:        %s\n", nw.Debt.StringFixed(2))

	if len(snap.Investments) > 0 {
		p := summary.Portfolio(snap.Investments)
		fmt.Fprintf(w, "\nPortfolio: %s (cost %s, %+.2f%%)\n",
			p.Value.StringFixed(2), p.CostBasis.StringFixed(2), p.GainLossPercent)
		for _, slice := range summary.Allocation(snap.Investments, nil) {
			fmt.Fprintf(w, "  %-16s %6.2f%%  %s\n", slice.Label, slice.Percentage, slice.Value.StringFixed(2))
		}
	}

	if lines := summary.Budgets(snap.Expenses, snap.Budgets); len(lines) > 0 {
		fmt.Fprintln(w, "\nBudgets:")
		for _, line := range lines {
			fmt.Fprintf(w, "  %-16s %6.1f%%  %s / %s  [%s]\n", line.Category,
				line.Percentage, line.Spent.StringFixed(2), line.Budget.StringFixed(2), line.Tier)
		}
	}

	if len(snap.Goals) > 0 {
		fmt.Fprintln(w, "\nGoals:")
		for _, g := range summary.Goals(snap.Goals) {
			switch {
			case g.Achieved:
				fmt.Fprintf(w, "  %-16s achieved (%s / %s)\n", g.Name,
					g.Current.StringFixed(2), g.Target.StringFixed(2))
			case g.Unreachable:
				fmt.Fprintf(w, "  %-16s %5.1f%%  never at current pace\n", g.Name, g.ProgressPercent)
			default:
				fmt.Fprintf(w, "  %-16s %5.1f%%  ~%d months to target\n", g.Name,
					g.ProgressPercent, g.MonthsToTarget)
			}
		}
	}

	if len(snap.Streaks) > 0 {
		fmt.Fprintln(w, "\nStreaks:")
		for _, s := range summary.Streaks(snap.Streaks) {
			record := ""
			if s.IsRecord {
				record = "  (record!)"
			}
			fmt.Fprintf(w, "  %-16s %d (best %d)%s\n", s.Type, s.Current, s.Longest, record)
		}
	}
}
