// SPDX-License-Identifier: MIT
// Package: namoa/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a constructor by mutating builderConfig.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a deterministic RNG (seed 0 maps to defaultRNGSeed).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rngFromSeed(seed) }
}

// WithWeightFns sets one weight generator per criterion, in criterion order.
// Criteria beyond len(fns) use DefaultWeightFn. Panics on a nil entry.
func WithWeightFns(fns ...WeightFn) BuilderOption {
	for i, fn := range fns {
		if fn == nil {
			panic("builder: WithWeightFns: nil function at criterion " + DefaultIDFn(i))
		}
	}
	cp := append([]WeightFn(nil), fns...)

	return func(c *builderConfig) { c.weightFns = cp }
}
