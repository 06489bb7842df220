package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/namoa/bench"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	config    string
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:          "paretobench",
		Short:        "Benchmark and verify NAMOA* Pareto path searches",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&g.config, "config", "c", "", "YAML config file")
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&g.logFormat, "log-format", "", "log format: text or json")

	root.AddCommand(
		newGridCmd(g),
		newDIMACSCmd(g),
		newSolveCmd(g),
		newGenerateCmd(),
	)

	return root
}

// load reads the config file, if any, and applies the global overrides.
func (g *globalFlags) load() (bench.Config, error) {
	cfg := bench.DefaultConfig()
	if g.config != "" {
		var err error
		if cfg, err = bench.LoadConfig(g.config); err != nil {
			return bench.Config{}, err
		}
	}
	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
	}
	if g.logFormat != "" {
		cfg.Log.Format = g.logFormat
	}

	return cfg, nil
}

// runFlags tune a benchmark run; set flags override the config file.
type runFlags struct {
	engines     []string
	variant     string
	criteria    int
	parallel    int
	limit       int
	report      string
	metricsFile string
	stop        bool
	consistency bool
	verbose     bool
}

func (f *runFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringSliceVarP(&f.engines, "engine", "e", nil, "heuristics: blind, ideal, bounded, all")
	fs.StringVar(&f.variant, "variant", "", "search variant: split, single, single-forward")
	fs.IntVarP(&f.criteria, "criteria", "k", 0, "criteria per arc")
	fs.IntVarP(&f.parallel, "parallel", "p", 0, "instances run concurrently")
	fs.IntVarP(&f.limit, "limit", "n", 0, "queries per instance (0 = all)")
	fs.StringVar(&f.report, "report", "", "write a TSV report to this path")
	fs.StringVar(&f.metricsFile, "metrics-file", "", "write prometheus metrics to this path")
	fs.BoolVar(&f.stop, "stop-on-mismatch", false, "abort an instance at its first wrong answer")
	fs.BoolVar(&f.consistency, "consistency-check", false, "verify heuristics before searching")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "print per-query statistics")
}

func (f *runFlags) apply(cmd *cobra.Command, cfg *bench.Config) {
	fs := cmd.Flags()
	if fs.Changed("engine") {
		cfg.Engines = f.engines
	}
	if fs.Changed("variant") {
		cfg.Variant = f.variant
	}
	if fs.Changed("criteria") {
		cfg.Criteria = f.criteria
	}
	if fs.Changed("parallel") {
		cfg.Parallelism = f.parallel
	}
	if fs.Changed("limit") {
		cfg.QueryLimit = f.limit
	}
	if fs.Changed("report") {
		cfg.Report = f.report
	}
	if fs.Changed("metrics-file") {
		cfg.MetricsFile = f.metricsFile
	}
	if fs.Changed("stop-on-mismatch") {
		cfg.StopOnMismatch = f.stop
	}
	if fs.Changed("consistency-check") {
		cfg.ConsistencyCheck = f.consistency
	}
}

// execute runs insts under cfg, prints the summary and writes the optional
// report and metrics. Wrong answers make the command fail.
func execute(ctx context.Context, cmd *cobra.Command, cfg bench.Config, insts []*bench.Instance, verbose bool) error {
	logger := bench.NewLogger(cfg.Log, cmd.ErrOrStderr())
	opts := []bench.Option{bench.WithLogger(logger)}
	var reg *prometheus.Registry
	if cfg.MetricsFile != "" {
		reg = prometheus.NewRegistry()
		opts = append(opts, bench.WithMetrics(bench.NewMetrics(reg)))
	}
	runner, err := bench.NewRunner(cfg, opts...)
	if err != nil {
		return err
	}
	logger.Info("benchmark started", "run_id", runner.RunID().String(), "instances", len(insts))

	results, runErr := runner.RunInstances(ctx, insts)
	bench.Summarize(cmd.OutOrStdout(), results, verbose)

	if cfg.Report != "" {
		if err = bench.WriteTSVFile(cfg.Report, cfg.RunName, runner.RunID().String(), results); err != nil {
			return err
		}
	}
	if reg != nil {
		if err = prometheus.WriteToTextfile(cfg.MetricsFile, reg); err != nil {
			return fmt.Errorf("paretobench: metrics: %w", err)
		}
	}
	if runErr != nil {
		return runErr
	}

	t := bench.Count(results)
	logger.Info("benchmark finished", "match", t.Match, "unordered", t.Unordered, "mismatch", t.Mismatch, "unchecked", t.Unchecked)
	if t.Mismatch > 0 {
		return fmt.Errorf("%w: %d of %d queries", bench.ErrMismatch, t.Mismatch, len(results))
	}

	return nil
}
