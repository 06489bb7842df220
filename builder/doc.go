// Package builder provides deterministic "functional-options"-style graph
// constructors for multi-criteria benchmark and test fixtures.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds RNG, ID scheme and one WeightFn per criterion.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn: decimal strings ("0","1",…).
//     – SymbolIDFn:  single letters ("A","B",…).
//   - Edge-weight distributions (WeightFn implementations, integer valued):
//     – DefaultWeightFn:  constant weight DefaultEdgeWeight.
//     – ConstantWeightFn: fixed user-provided value.
//     – UniformWeightFn:  uniform on the integers of [min,max].
//   - Topologies (Constructor):
//     – Grid(rows, cols):     4-neighbourhood lattice, "r,c" IDs, arcs both ways.
//     – Path(n):              simple path, useful for hand-checkable fixtures.
//     – RandomSparse(n, p):   Erdős–Rényi-like digraph for property tests.
//
// Determinism:
//
//   - Same seed, options and constructor order ⇒ identical graphs.
//   - Each criterion draws from its own RNG stream derived from the seed, so
//     adding a criterion never changes the weights of the existing ones.
//
// Errors are sentinels (ErrTooFewVertices, ErrInvalidProbability,
// ErrNeedRandSource, ErrConstructFailed, ErrCriteriaMismatch) wrapped with
// constructor context. Option constructors panic on meaningless input.
package builder
