package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moneymap-dev/moneymap/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "moneymap",
		Short:   "Personal finance flow graphs and projections",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newGraphCommand())
	rootCmd.AddCommand(newSummaryCommand())
	rootCmd.AddCommand(newProjectCommand())
	rootCmd.AddCommand(newLevelCommand())

	return rootCmd
}
