// Package bench drives Pareto searches over benchmark instances: it loads
// grid or DIMACS9 inputs, runs every query with the configured heuristics,
// times heuristic set-up and search separately, checks results against a
// reference oracle and reports them.
//
// Each Instance owns its network, so independent instances run in parallel
// (RunInstances, bounded by Config.Parallelism) while the queries of one
// instance run strictly in sequence.
//
// Observability is opt-in: Metrics registers prometheus collectors on a
// caller-supplied registerer, spans go to the global OpenTelemetry tracer
// (a no-op until the caller installs an SDK), and logs go to an injected
// *slog.Logger.
package bench
