// Package core provides a thread-safe, in-memory multi-criteria Graph: the
// mutable construction surface that loaders and generators populate before a
// search network is frozen from it.
//
// The Graph G = (V, E) carries a fixed number k ≥ 1 of criteria. Every edge
// holds a criteria.Vector of length k with non-negative components.
//
//   - Directed vs. undirected edges (WithDirected).
//   - Parallel edges (WithMultiEdges) and self-loops (WithLoops).
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …).
//   - Separate sync.RWMutex for vertices (muVert) and edges (muEdge)
//     to minimize lock contention while loaders fill the graph concurrently.
//
// Determinism:
//
//   - Vertices() returns IDs in insertion order. The search network assigns
//     dense indices in this order, so node index i is stable across runs.
//   - Edges() returns edges in insertion order.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrDimensionMismatch   - edge cost length differs from the graph's k.
//	ErrNegativeWeight      - edge cost has a negative component.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
//
// Complexity:
//
//	AddVertex, HasVertex: O(1) amortized
//	AddEdge:              O(k) amortized
//	Vertices, Edges:      O(V), O(E) (defensive copies)
package core
