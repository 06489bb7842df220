// SPDX-License-Identifier: MIT
// Package: namoa/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(k, gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/namoa/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early, honour the core
// graph mode flags, and preserve determinism for the same config and order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a k-criteria core.Graph with graph options gopts,
// resolves the builder configuration from bopts, and applies all
// constructors in order. Any constructor error is wrapped with
// "BuildGraph: %w" and returned immediately.
//
// Complexity: O(len(bopts)) + Σ cost of each constructor.
func BuildGraph(k int, gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	if k < 1 {
		return nil, fmt.Errorf("BuildGraph: k=%d: %w", k, ErrTooFewVertices)
	}
	g := core.NewGraph(k, gopts...)

	cfg := newBuilderConfig(bopts...)
	if len(cfg.weightFns) > k {
		return nil, fmt.Errorf("BuildGraph: %d weight functions for %d criteria: %w",
			len(cfg.weightFns), k, ErrCriteriaMismatch)
	}
	cfg.deriveStreams(k)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
