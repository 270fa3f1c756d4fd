package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneymap-dev/moneymap/internal/snapshot"
)

// run executes the CLI in-process and captures stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func initProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	_, err := run(t, "init", dir)
	require.NoError(t, err)
	return dir
}

func TestInit_WritesConfigAndExample(t *testing.T) {
	dir := initProject(t)

	_, err := os.Stat(filepath.Join(dir, "moneymap.yaml"))
	require.NoError(t, err)

	snap, err := snapshot.Load(filepath.Join(dir, "snapshot.json"))
	require.NoError(t, err)
	assert.NotEmpty(t, snap.Accounts)
	assert.NotEmpty(t, snap.Income)
}

func TestGraph_EmitsPositionedGraph(t *testing.T) {
	dir := initProject(t)
	outPath := filepath.Join(dir, "graph.json")

	_, err := run(t, "graph",
		"-f", filepath.Join(dir, "snapshot.json"),
		"-c", filepath.Join(dir, "moneymap.yaml"),
		"-o", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var out struct {
		Nodes []struct {
			ID   string  `json:"id"`
			Rank int     `json:"rank"`
			X    float64 `json:"x"`
			Y    float64 `json:"y"`
		} `json:"nodes"`
		Edges []struct {
			ID string `json:"id"`
		} `json:"edges"`
	}
	require.NoError(t, json.Unmarshal(data, &out))
	assert.NotEmpty(t, out.Nodes)
	assert.NotEmpty(t, out.Edges)

	// The example snapshot anchors everything on the checking account.
	found := false
	for _, n := range out.Nodes {
		if n.ID == "account-checking-1" {
			found = true
			assert.Equal(t, 1, n.Rank)
		}
	}
	assert.True(t, found, "primary account node present")
}

func TestGraph_StableAcrossRuns(t *testing.T) {
	dir := initProject(t)
	outA := filepath.Join(dir, "a.json")
	outB := filepath.Join(dir, "b.json")

	_, err := run(t, "graph", "-f", filepath.Join(dir, "snapshot.json"), "-o", outA)
	require.NoError(t, err)
	_, err = run(t, "graph", "-f", filepath.Join(dir, "snapshot.json"), "-o", outB)
	require.NoError(t, err)

	a, err := os.ReadFile(outA)
	require.NoError(t, err)
	b, err := os.ReadFile(outB)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestGraph_MissingSnapshotFails(t *testing.T) {
	_, err := run(t, "graph", "-f", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestSummary_PrintsSections(t *testing.T) {
	dir := initProject(t)

	out, err := run(t, "summary", "-f", filepath.Join(dir, "snapshot.json"))
	require.NoError(t, err)

	assert.Contains(t, out, "Net worth: 10500.00")
	assert.Contains(t, out, "Portfolio:")
	assert.Contains(t, out, "Budgets:")
	assert.Contains(t, out, "Goals:")
	assert.Contains(t, out, "Vacation")
	assert.Contains(t, out, "Streaks:")
}

func TestSummary_AccountsCSVOverride(t *testing.T) {
	dir := initProject(t)
	csvPath := filepath.Join(dir, "accounts.csv")
	csv := "account_id,name,institution,type,balance,currency,exclude_from_net_worth\n" +
		"acc-x,Only Account,,checking,123.45,USD,false\n"
	require.NoError(t, os.WriteFile(csvPath, []byte(csv), 0o644))

	out, err := run(t, "summary",
		"-f", filepath.Join(dir, "snapshot.json"),
		"--accounts", csvPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Net worth: 123.45")
}

func TestProjectGrowth(t *testing.T) {
	out, err := run(t, "project", "growth",
		"--principal", "1000", "--monthly", "100", "--rate", "0.07",
		"--compounds", "12", "--months", "120")
	require.NoError(t, err)
	assert.Contains(t, out, "19318.14")
}

func TestProjectGoal(t *testing.T) {
	out, err := run(t, "project", "goal",
		"--current", "5000", "--target", "20000", "--monthly", "300", "--rate", "0.05")
	require.NoError(t, err)
	assert.Contains(t, out, "43 months")
}

func TestProjectGoal_Unreachable(t *testing.T) {
	out, err := run(t, "project", "goal", "--current", "0", "--target", "1000")
	require.NoError(t, err)
	assert.Contains(t, out, "never")
}

func TestLevel(t *testing.T) {
	out, err := run(t, "level", "42")
	require.NoError(t, err)
	assert.Contains(t, out, "Journeyman")

	out, err = run(t, "level", "--net-worth", "75000")
	require.NoError(t, err)
	assert.Contains(t, out, "Gold")

	_, err = run(t, "level")
	require.Error(t, err)
}
