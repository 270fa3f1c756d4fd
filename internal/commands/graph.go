package commands

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/moneymap-dev/moneymap/internal/accounts"
	"github.com/moneymap-dev/moneymap/internal/config"
	"github.com/moneymap-dev/moneymap/internal/graph"
	"github.com/moneymap-dev/moneymap/internal/layout"
	"github.com/moneymap-dev/moneymap/internal/snapshot"
)

// positionedGraph is the JSON shape the graph command emits.
type positionedGraph struct {
	Nodes       []layout.PositionedNode `json:"nodes"`
	Edges       []graph.Edge            `json:"edges"`
	Diagnostics graph.Diagnostics       `json:"diagnostics"`
}

func newGraphCommand() *cobra.Command {
	var snapshotPath string
	var accountsPath string
	var configPath string
	var orientation string
	var outPath string

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Build and lay out the financial flow graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(cmd, snapshotPath, accountsPath, configPath, orientation, outPath)
		},
	}

	cmd.Flags().StringVarP(&snapshotPath, "snapshot", "f", "snapshot.json", "input snapshot file")
	cmd.Flags().StringVar(&accountsPath, "accounts", "", "accounts.csv overriding the snapshot's account list")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "moneymap.yaml path (optional)")
	cmd.Flags().StringVar(&orientation, "orientation", "", "vertical or horizontal (overrides config)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	return cmd
}

func runGraph(cmd *cobra.Command, snapshotPath, accountsPath, configPath, orientation, outPath string) error {
	cfg, err := loadConfigOrDefault(configPath)
	if err != nil {
		return err
	}

	snap, err := loadSnapshot(snapshotPath, accountsPath)
	if err != nil {
		return err
	}

	result := graph.Build(graph.Input{
		Accounts: snap.Accounts,
		Income:   snap.Income,
		Expenses: snap.Expenses,
		Goals:    snap.Goals,
		Flows:    snap.Flows,
	}, buildOptions(cfg))

	for _, flowID := range result.Diagnostics.SkippedFlowIDs {
		slog.Warn("skipped recurring flow with unresolved endpoint", "flow_id", flowID)
	}

	if orientation == "" {
		orientation = cfg.Layout.Orientation
	}
	positioned, info := layout.Apply(result.Nodes, result.Edges, layout.Options{
		Orientation: layout.ParseOrientation(orientation),
		RankSpacing: cfg.Layout.RankSpacing,
		NodeSpacing: cfg.Layout.NodeSpacing,
	})
	for _, nodeID := range info.CycleNodeIDs {
		slog.Warn("cycle detected, node forced to rank 0", "node_id", nodeID)
	}

	out := positionedGraph{Nodes: positioned, Edges: result.Edges, Diagnostics: result.Diagnostics}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling graph: %w", err)
	}

	if outPath == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("writing graph: %w", err)
	}
	return nil
}

func loadConfigOrDefault(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadSnapshot reads the snapshot and, when given, replaces its account
// list with one maintained as CSV.
func loadSnapshot(snapshotPath, accountsPath string) (*snapshot.Snapshot, error) {
	snap, err := snapshot.Load(snapshotPath)
	if err != nil {
		return nil, err
	}
	if accountsPath == "" {
		return snap, nil
	}

	f, err := os.Open(accountsPath)
	if err != nil {
		return nil, fmt.Errorf("opening accounts CSV: %w", err)
	}
	defer f.Close()

	accts, err := accounts.ReadAccounts(f)
	if err != nil {
		return nil, err
	}
	snap.Accounts = accts
	return snap, nil
}

func buildOptions(cfg *config.Config) graph.Options {
	opts := graph.Options{}
	if cfg.Graph.PrimaryAccountID != "" {
		opts.Primary = graph.AccountByID(cfg.Graph.PrimaryAccountID)
	}
	return opts
}
