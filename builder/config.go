// SPDX-License-Identifier: MIT
// Package: namoa/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn      = DefaultIDFn  ("0","1","2",...)
//   • rng       = nil          (pure/deterministic unless seeded)
//   • weightFns = none         (every criterion uses DefaultWeightFn)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/namoa/criteria"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn IDFn

	// rng drives topology choices; nil means "no randomness".
	rng *rand.Rand

	// weightFns[i] generates criterion i; missing entries use DefaultWeightFn.
	weightFns []WeightFn

	// streams[i] is the RNG of criterion i, derived from rng.
	streams []*rand.Rand
}

// newBuilderConfig applies all options in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: DefaultIDFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// deriveStreams creates one RNG stream per criterion from the topology RNG.
func (c *builderConfig) deriveStreams(k int) {
	c.streams = make([]*rand.Rand, k)
	if c.rng == nil {
		return
	}
	for i := 0; i < k; i++ {
		c.streams[i] = deriveRNG(c.rng, uint64(i))
	}
}

// cost draws one edge cost vector, criterion by criterion.
func (c builderConfig) cost() criteria.Vector {
	v := make(criteria.Vector, len(c.streams))
	for i := range v {
		fn := DefaultWeightFn
		if i < len(c.weightFns) && c.weightFns[i] != nil {
			fn = c.weightFns[i]
		}
		v[i] = fn(c.streams[i])
	}

	return v
}
