package commands

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newLevelCommand() *cobra.Command {
	var netWorth string
	var configPath string

	cmd := &cobra.Command{
		Use:   "level [n]",
		Short: "Look up the tier for a level or a net-worth amount",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfigOrDefault(configPath)
			if err != nil {
				return err
			}

			if netWorth != "" {
				amount, err := decimal.NewFromString(netWorth)
				if err != nil {
					return fmt.Errorf("invalid net worth %q: %w", netWorth, err)
				}
				tier := cfg.NetWorthTiers().TierFor(amount.IntPart())
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", tier.Label)
				return nil
			}

			if len(args) != 1 {
				return fmt.Errorf("provide a level or --net-worth")
			}
			level, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid level %q: %w", args[0], err)
			}
			tier := cfg.LevelTiers().TierFor(int64(level))
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", tier.Label)
			return nil
		},
	}

	cmd.Flags().StringVar(&netWorth, "net-worth", "", "classify a net-worth amount instead of a level")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "moneymap.yaml path (optional)")

	return cmd
}
