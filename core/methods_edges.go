// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges in insertion order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdge write lock; reads under muEdge read lock.

package core

import (
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/katalvlaran/namoa/criteria"
)

// edgeIDPrefix is the textual prefix of edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates a new edge carrying cost and returns its ID.
//
// Steps:
//  1. Validate IDs, loops, cost dimension and non-negativity.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdge, check the multi-edge constraint.
//  4. Generate the edge ID, clone cost and store the edge.
//
// The cost is cloned; the caller may reuse its slice.
// Complexity: O(k) amortized.
func (g *Graph) AddEdge(from, to string, cost criteria.Vector) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	if len(cost) != g.k {
		return "", fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(cost), g.k)
	}
	for i, w := range cost {
		if w < 0 {
			return "", fmt.Errorf("%w: %d at criterion %d", ErrNegativeWeight, w, i)
		}
	}

	// 2) Ensure vertices exist
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	// 3) Insert edge under lock
	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	key := g.pairKey(from, to)
	if !g.allowMulti && g.pairs[key] > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	// 4) Store
	e := &Edge{ID: nextEdgeID(g), From: from, To: to, Cost: cost.Clone(), Directed: g.directed}
	g.edges = append(g.edges, e)
	g.pairs[key]++

	return e.ID, nil
}

// HasEdge reports whether at least one edge joins from and to
// (in either direction for undirected graphs).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	return g.pairs[g.pairKey(from, to)] > 0
}

// Edges returns a copy of the edge list in insertion order. The *Edge values
// are shared with the graph and must be treated as read-only.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	return len(g.edges)
}

// pairKey normalizes the endpoint pair for the multi-edge index.
func (g *Graph) pairKey(from, to string) [2]string {
	if !g.directed && to < from {
		from, to = to, from
	}

	return [2]string{from, to}
}

// nextEdgeID returns "e<N>" without fmt allocations.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 21)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
