package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/namoa/bench"
	"github.com/katalvlaran/namoa/dimacs"
)

func execRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func generateSuite(t *testing.T) (dir, cfgPath string) {
	t.Helper()
	dir = t.TempDir()
	cfgPath = filepath.Join(dir, "run.yaml")
	out, err := execRoot(t, "generate", "--out", dir, "--grids", "2", "--dim", "5", "--seed", "7", "--write-config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote 2 grids of 5x5")

	return dir, cfgPath
}

func TestGenerateWritesLoadableConfig(t *testing.T) {
	_, cfgPath := generateSuite(t)
	cfg, err := bench.LoadConfig(cfgPath)
	require.NoError(t, err)
	assert.Len(t, cfg.Grid.Instances, 2)
	assert.Len(t, cfg.Grid.Solutions, 2)
	assert.FileExists(t, cfg.Grid.Queries)
}

func TestGridCommandChecksGeneratedSuite(t *testing.T) {
	dir, cfgPath := generateSuite(t)
	report := filepath.Join(dir, "report.tsv")
	metrics := filepath.Join(dir, "metrics.prom")

	out, err := execRoot(t, "grid", "--config", cfgPath, "--log-level", "error",
		"--report", report, "--metrics-file", metrics, "-p", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "OK")
	assert.NotContains(t, out, "Different!!!")

	data, err := os.ReadFile(report)
	require.NoError(t, err)
	assert.Contains(t, string(data), "source\tdestination")

	data, err = os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(data), "namoa_queries_total")
}

func TestGridCommandFlagOverridesConfig(t *testing.T) {
	_, cfgPath := generateSuite(t)

	_, err := execRoot(t, "grid", "--config", cfgPath, "--variant", "bogus")
	assert.ErrorIs(t, err, bench.ErrInvalidConfig)

	out, err := execRoot(t, "grid", "--config", cfgPath, "--log-level", "error",
		"-e", "blind", "--variant", "single", "-n", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "single/blind")
	assert.NotContains(t, out, "split/")
}

func TestSolveOnGridFile(t *testing.T) {
	dir, _ := generateSuite(t)
	grid := filepath.Join(dir, "grids", "Grid0.txt")

	out, err := execRoot(t, "solve", "--grid", grid, "--from", "0", "--to", "24", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "efficient paths")
	assert.Contains(t, out, "0 -> ")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	w, err := dimacs.Create(path)
	require.NoError(t, err)
	_, err = io.WriteString(w, content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
}

func TestSolveOnGzippedGridFile(t *testing.T) {
	dir, _ := generateSuite(t)
	data, err := os.ReadFile(filepath.Join(dir, "grids", "Grid0.txt"))
	require.NoError(t, err)
	gz := filepath.Join(dir, "Grid0.txt.gz")
	writeFile(t, gz, string(data))

	plain, err := execRoot(t, "solve", "--grid", filepath.Join(dir, "grids", "Grid0.txt"), "--from", "0", "--to", "24", "--log-level", "error")
	require.NoError(t, err)
	out, err := execRoot(t, "solve", "--grid", gz, "--from", "0", "--to", "24", "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, plain, out)
}

func TestSolvePrintsCoordinates(t *testing.T) {
	dir := t.TempDir()
	dist := filepath.Join(dir, "m_dist.gr")
	travel := filepath.Join(dir, "m_time.gr")
	coords := filepath.Join(dir, "m.co.gz")
	writeFile(t, dist, "p sp 3 2\na 1 2 4\na 2 3 5\n")
	writeFile(t, travel, "p sp 3 2\na 1 2 1\na 2 3 1\n")
	writeFile(t, coords, "p aux sp co 3\nv 1 10 20\nv 2 30 40\n")

	out, err := execRoot(t, "solve", "--dist", dist, "--time", travel, "--coordinates", coords,
		"--from", "1", "--to", "3", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "1 -> 2 -> 3")
	assert.Contains(t, out, "\t(10,20) (30,40) ?\n")

	_, err = execRoot(t, "solve", "--dist", dist, "--time", travel, "--coordinates", dist,
		"--from", "1", "--to", "3", "--log-level", "error")
	assert.ErrorIs(t, err, dimacs.ErrMalformed)
}

func TestSolveNeedsAGraph(t *testing.T) {
	_, err := execRoot(t, "solve", "--from", "1", "--to", "2")
	assert.ErrorIs(t, err, errNoGraph)
}
