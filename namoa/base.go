package namoa

import (
	"fmt"
	"time"

	"github.com/katalvlaran/namoa/criteria"
	"github.com/katalvlaran/namoa/heuristic"
	"github.com/katalvlaran/namoa/network"
)

// base carries what both strategies share: wiring, endpoint bookkeeping and
// the heuristic step of Init.
type base struct {
	net    *network.Network
	engine heuristic.Engine
	opts   Options

	source, target int
	ready          bool
	generated      int
}

func newBase(net *network.Network, engine heuristic.Engine, opts []Option) (base, error) {
	if net == nil {
		return base{}, ErrNilNetwork
	}
	if engine == nil {
		return base{}, ErrNilEngine
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return base{net: net, engine: engine, opts: o}, nil
}

func (b *base) checkRange(source, target int) error {
	if !b.net.Valid(source) || !b.net.Valid(target) {
		return fmt.Errorf("%w: source=%d target=%d nodes=%d", ErrNodeOutOfRange, source, target, b.net.NumNodes())
	}

	return nil
}

// initHeuristic clears label state and runs the engine.
func (b *base) initHeuristic(source, target int) error {
	if err := b.checkRange(source, target); err != nil {
		return err
	}
	b.ready = false
	b.generated = 0
	b.net.ResetSearch()

	start := time.Now()
	if err := b.engine.Init(b.net, source, target); err != nil {
		return fmt.Errorf("namoa: %s heuristic: %w", b.engine.Name(), err)
	}
	if _, bounded := b.engine.(sourceSpecific); bounded && b.opts.ConsistencyCheck {
		// Infinity bounds off the marked region are not consistent.
		b.opts.Logger.Debug("namoa: consistency check skipped", "engine", b.engine.Name())
	} else if b.opts.ConsistencyCheck {
		if err := heuristic.CheckConsistent(b.net); err != nil {
			return fmt.Errorf("namoa: %w", err)
		}
	}
	b.opts.Logger.Debug("namoa: heuristic ready",
		"engine", b.engine.Name(),
		"source", b.net.ID(source),
		"target", b.net.ID(target),
		"elapsed", time.Since(start))

	b.source, b.target, b.ready = source, target, true

	return nil
}

// checkRun validates endpoints against the last Init.
func (b *base) checkRun(source, target int) error {
	if err := b.checkRange(source, target); err != nil {
		return err
	}
	if !b.ready || target != b.target {
		return ErrNotInitialized
	}
	if ss, ok := b.engine.(sourceSpecific); ok && ss.SourceSpecific() && source != b.source {
		return fmt.Errorf("%w: %s bounds were computed for another source", ErrNotInitialized, b.engine.Name())
	}

	return nil
}

// GeneratedLabels returns the pop count of the last Run.
func (b *base) GeneratedLabels() int { return b.generated }

func (b *base) logDone(variant string, source, target, solutions int, start time.Time) {
	b.opts.Logger.Debug("namoa: query done",
		"variant", variant,
		"source", b.net.ID(source),
		"target", b.net.ID(target),
		"generated", b.generated,
		"solutions", solutions,
		"elapsed", time.Since(start))
}

// dominatedByAny reports whether some label in ls dominates c.
func dominatedByAny(ls []*network.Label, c criteria.Vector) bool {
	for _, l := range ls {
		if l.Cost.Dominates(c) {
			return true
		}
	}

	return false
}

// Costs extracts the cost vectors of ls in order.
func Costs(ls []*network.Label) []criteria.Vector {
	out := make([]criteria.Vector, len(ls))
	for i, l := range ls {
		out[i] = l.Cost
	}

	return out
}
