// Package builder provides the integer edge-weight distributions used per
// criterion by the graph constructors.
package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/namoa/criteria"
)

// DefaultEdgeWeight is the weight of every criterion without a WeightFn.
const DefaultEdgeWeight criteria.Weight = 1

// WeightFn produces one criterion value given an optional RNG.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) criteria.Weight

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) criteria.Weight { return DefaultEdgeWeight }

// ConstantWeightFn always yields value. Panics if value < 0.
func ConstantWeightFn(value criteria.Weight) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) criteria.Weight { return value }
}

// UniformWeightFn samples uniformly from the integers of [min, max].
// Panics if min < 0 or max < min. A nil rng yields min.
func UniformWeightFn(min, max criteria.Weight) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) criteria.Weight {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}
