package bench_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/namoa/bench"
)

const sampleYAML = `
run_name: nightly
engines: [ideal, bounded]
variant: single-forward
criteria: 2
parallelism: 4
stop_on_mismatch: true
grid:
  instances: [g0.txt, g1.txt]
  queries: q.txt
  solutions: [s0.txt, s1.txt]
log:
  level: debug
  format: json
`

func TestParseConfig(t *testing.T) {
	cfg, err := bench.ParseConfig([]byte(sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, "nightly", cfg.RunName)
	assert.Equal(t, "single-forward", cfg.Variant)
	assert.Equal(t, 4, cfg.Parallelism)
	assert.True(t, cfg.StopOnMismatch)
	assert.Equal(t, []string{"ideal", "bounded"}, cfg.EngineNames())
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("variant: single\n"), 0o644))
	cfg, err := bench.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "single", cfg.Variant)
	assert.Equal(t, []string{"blind", "ideal", "bounded"}, cfg.EngineNames(), "defaults kept")

	_, err = bench.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConfig_Invalid(t *testing.T) {
	cases := map[string]string{
		"UnknownEngine":   "engines: [astar]\n",
		"UnknownVariant":  "variant: fast\n",
		"ZeroParallelism": "parallelism: 0\n",
		"BadLevel":        "log: {level: loud, format: text}\n",
		"SolutionCount":   "grid: {instances: [a, b], solutions: [s]}\n",
		"BoundedNeedsTwo": "criteria: 3\nengines: [bounded]\n",
		"AllNeedsTwo":     "criteria: 3\n",
		"NotYAML":         "engines: [\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := bench.ParseConfig([]byte(in))
			assert.ErrorIs(t, err, bench.ErrInvalidConfig)
		})
	}

	ok, err := bench.ParseConfig([]byte("criteria: 3\nengines: [blind, ideal]\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, ok.Criteria)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	bench.NewLogger(bench.LogConfig{Level: "warn", Format: "json"}, &buf).Info("hidden")
	assert.Empty(t, buf.String())
	bench.NewLogger(bench.LogConfig{Level: "debug", Format: "json"}, &buf).Debug("shown", "k", 1)
	assert.True(t, strings.HasPrefix(buf.String(), "{"))
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}
