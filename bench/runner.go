// SPDX-License-Identifier: MIT
// File: runner.go
// Role: per-instance query loop and parallel instance fan-out.

package bench

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/namoa/checker"
	"github.com/katalvlaran/namoa/criteria"
	"github.com/katalvlaran/namoa/heuristic"
	"github.com/katalvlaran/namoa/namoa"
	"github.com/katalvlaran/namoa/network"
)

// ErrMismatch reports a wrong Pareto set under StopOnMismatch.
var ErrMismatch = errors.New("bench: solutions differ from oracle")

const tracerName = "github.com/katalvlaran/namoa/bench"

// Query is one search problem in network indices. ID keys the oracle.
type Query struct {
	ID             int
	Source, Target int
}

// Instance is one graph with its queries and optional oracle.
type Instance struct {
	Name    string
	Net     *network.Network
	Queries []Query
	Oracle  *checker.Oracle
}

// QueryResult is the outcome of one query under one engine.
type QueryResult struct {
	Instance string
	Engine   string
	Variant  string
	Query    Query

	// SourceID and TargetID are the vertex IDs of the endpoints.
	SourceID, TargetID string

	// Solutions are the target's settled cost vectors in settle order.
	Solutions []criteria.Vector
	Generated int

	HeuristicTime time.Duration
	QueryTime     time.Duration

	// Checked is false when no oracle entry exists for the query.
	Checked bool
	Outcome checker.Outcome
}

// Runner executes benchmark instances.
type Runner struct {
	cfg     Config
	logger  *slog.Logger
	metrics *Metrics
	tracer  trace.Tracer
	runID   uuid.UUID
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the run logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics records every query on m.
func WithMetrics(m *Metrics) Option { return func(r *Runner) { r.metrics = m } }

// WithTracer replaces the global tracer.
func WithTracer(t trace.Tracer) Option {
	return func(r *Runner) {
		if t != nil {
			r.tracer = t
		}
	}
}

// NewRunner validates cfg and returns a runner with a fresh run ID.
func NewRunner(cfg Config, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Runner{
		cfg:    cfg,
		logger: slog.New(slog.DiscardHandler),
		tracer: otel.Tracer(tracerName),
		runID:  uuid.New(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With("run_id", r.runID.String())

	return r, nil
}

// RunID identifies this run in logs and reports.
func (r *Runner) RunID() uuid.UUID { return r.runID }

// RunInstances runs every instance with every configured engine. Instances
// run in parallel up to Config.Parallelism; results keep instance order.
// The first failing instance cancels the rest.
func (r *Runner) RunInstances(ctx context.Context, insts []*Instance) ([]QueryResult, error) {
	per := make([][]QueryResult, len(insts))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Parallelism)
	for i, inst := range insts {
		g.Go(func() error {
			for _, engine := range r.cfg.EngineNames() {
				res, err := r.RunQueries(ctx, inst, engine)
				per[i] = append(per[i], res...)
				if err != nil {
					return err
				}
			}
			return nil
		})
	}
	err := g.Wait()

	var out []QueryResult
	for _, rs := range per {
		out = append(out, rs...)
	}

	return out, err
}

// RunQueries runs the instance's queries in order with one engine, timing
// heuristic set-up and search separately. Results gathered before an error
// are returned with it.
func (r *Runner) RunQueries(ctx context.Context, inst *Instance, engineName string) ([]QueryResult, error) {
	engine, err := heuristic.ByName(engineName)
	if err != nil {
		return nil, err
	}
	var sopts []namoa.Option
	sopts = append(sopts, namoa.WithLogger(r.logger))
	if r.cfg.ConsistencyCheck {
		sopts = append(sopts, namoa.WithConsistencyCheck())
	}
	search, err := namoa.New(r.cfg.Variant, inst.Net, engine, sopts...)
	if err != nil {
		return nil, err
	}

	ctx, span := r.tracer.Start(ctx, "bench.RunQueries", trace.WithAttributes(
		attribute.String("run_id", r.runID.String()),
		attribute.String("instance", inst.Name),
		attribute.String("engine", engine.Name()),
		attribute.String("variant", r.cfg.Variant),
		attribute.Int("nodes", inst.Net.NumNodes()),
		attribute.Int("queries", len(inst.Queries)),
	))
	defer span.End()

	log := r.logger.With("instance", inst.Name, "engine", engine.Name(), "variant", r.cfg.Variant)
	log.Info("running queries", "queries", len(inst.Queries))

	queries := inst.Queries
	if r.cfg.QueryLimit > 0 && len(queries) > r.cfg.QueryLimit {
		queries = queries[:r.cfg.QueryLimit]
	}
	results := make([]QueryResult, 0, len(queries))
	for _, q := range queries {
		if err := ctx.Err(); err != nil {
			span.SetStatus(codes.Error, "canceled")
			return results, err
		}
		res, err := r.runOne(ctx, inst, search, engine.Name(), q)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "query failed")
			return results, err
		}
		results = append(results, res)
		r.metrics.observe(res)

		attrs := []any{
			"query", q.ID, "source", res.SourceID, "target", res.TargetID,
			"solutions", len(res.Solutions), "generated", res.Generated,
			"heuristic", res.HeuristicTime, "elapsed", res.QueryTime,
		}
		switch {
		case !res.Checked:
			log.Info("query done", attrs...)
		case res.Outcome == checker.Mismatch:
			log.Error("solutions differ", attrs...)
			if r.cfg.StopOnMismatch {
				err := fmt.Errorf("%w: %s query %d (%s->%s) with %s", ErrMismatch, inst.Name, q.ID, res.SourceID, res.TargetID, engine.Name())
				span.SetStatus(codes.Error, "mismatch")
				return results, err
			}
		case res.Outcome == checker.MatchUnordered:
			log.Warn("same solutions in different order", attrs...)
		default:
			log.Info("query done", attrs...)
		}
	}
	span.SetStatus(codes.Ok, "queries done")

	return results, nil
}

func (r *Runner) runOne(ctx context.Context, inst *Instance, search namoa.Searcher, engine string, q Query) (QueryResult, error) {
	_, span := r.tracer.Start(ctx, "bench.Query", trace.WithAttributes(
		attribute.Int("query", q.ID),
		attribute.Int("source", q.Source),
		attribute.Int("target", q.Target),
	))
	defer span.End()

	res := QueryResult{Instance: inst.Name, Engine: engine, Variant: r.cfg.Variant, Query: q}
	if !inst.Net.Valid(q.Source) || !inst.Net.Valid(q.Target) {
		return res, fmt.Errorf("%w: query %d", namoa.ErrNodeOutOfRange, q.ID)
	}
	res.SourceID, res.TargetID = inst.Net.ID(q.Source), inst.Net.ID(q.Target)

	start := time.Now()
	if err := search.Init(q.Source, q.Target); err != nil {
		return res, err
	}
	res.HeuristicTime = time.Since(start)

	start = time.Now()
	if err := search.Run(q.Source, q.Target); err != nil {
		return res, err
	}
	res.QueryTime = time.Since(start)
	res.Solutions = namoa.Costs(search.Solutions())
	res.Generated = search.GeneratedLabels()

	if inst.Oracle != nil {
		out, err := inst.Oracle.Check(q.ID, res.Solutions)
		switch {
		case err == nil:
			res.Checked, res.Outcome = true, out
		case errors.Is(err, checker.ErrQueryNotFound):
			span.AddEvent("no_oracle_entry")
		default:
			return res, err
		}
	}
	span.SetAttributes(
		attribute.Int("solutions", len(res.Solutions)),
		attribute.Int("generated", res.Generated),
		attribute.Bool("checked", res.Checked),
		attribute.String("outcome", res.Outcome.String()),
	)

	return res, nil
}
