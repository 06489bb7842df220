package network

import (
	"fmt"

	"github.com/katalvlaran/namoa/core"
	"github.com/katalvlaran/namoa/criteria"
	"github.com/katalvlaran/namoa/pqueue"
)

// Network is the frozen search graph.
type Network struct {
	k          int
	nodes      []Node
	index      map[string]int
	arcs       int
	generation uint32
}

// Build freezes g. Node indices follow g.Vertices() order; arcs of one node
// follow g.Edges() order.
// Complexity: O(V + E·k).
func Build(g *core.Graph) (*Network, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	ids := g.Vertices()
	n := &Network{
		k:     g.NumCriteria(),
		nodes: make([]Node, len(ids)),
		index: make(map[string]int, len(ids)),
	}
	zero := criteria.Zero(n.k)
	for i, id := range ids {
		n.nodes[i] = Node{ID: id, Heuristic: zero.Clone()}
		n.index[id] = i
	}

	for _, e := range g.Edges() {
		u, v := n.index[e.From], n.index[e.To]
		n.addArc(u, v, e.Cost)
		if !e.Directed && u != v {
			n.addArc(v, u, e.Cost)
		}
	}

	return n, nil
}

func (n *Network) addArc(u, v int, cost criteria.Vector) {
	n.nodes[u].Out = append(n.nodes[u].Out, Arc{Head: v, Cost: cost})
	n.nodes[v].In = append(n.nodes[v].In, Arc{Head: u, Cost: cost})
	n.arcs++
}

// NumCriteria returns k.
func (n *Network) NumCriteria() int { return n.k }

// NumNodes returns the number of nodes.
func (n *Network) NumNodes() int { return len(n.nodes) }

// NumArcs returns the number of directed arcs.
func (n *Network) NumArcs() int { return n.arcs }

// Node returns node i. Panics when i is out of range.
func (n *Network) Node(i int) *Node { return &n.nodes[i] }

// Valid reports whether i is a node index.
func (n *Network) Valid(i int) bool { return i >= 0 && i < len(n.nodes) }

// Index maps a vertex ID to its node index.
func (n *Network) Index(id string) (int, error) {
	i, ok := n.index[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return i, nil
}

// ID returns the vertex ID of node i.
func (n *Network) ID(i int) string { return n.nodes[i].ID }

// Generation returns the current generation.
func (n *Network) Generation() uint32 { return n.generation }

// NextGeneration starts a new generation and returns it. Every node whose
// Timestamp differs from the returned value is stale for the new run.
func (n *Network) NextGeneration() uint32 {
	n.generation++
	if n.generation == 0 {
		// wrapped: clear stamps so no node looks current by accident
		for i := range n.nodes {
			n.nodes[i].Timestamp = 0
		}
		n.generation = 1
	}

	return n.generation
}

// ResetGeneration zeroes the counter and every node Timestamp. Heuristic
// engines call it before precomputing so stamps never carry across queries.
func (n *Network) ResetGeneration() {
	n.generation = 0
	for i := range n.nodes {
		n.nodes[i].Timestamp = 0
	}
}

// ResetSearch clears the label lists and queue handles of every node.
// Heuristic values are left untouched.
func (n *Network) ResetSearch() {
	for i := range n.nodes {
		nd := &n.nodes[i]
		nd.Open = nil
		nd.Closed = nil // results handed out earlier stay intact
		nd.Labels = nil
		nd.Handle = pqueue.Handle{}
	}
}

// SetHeuristic fills every node's heuristic with w.
func (n *Network) SetHeuristic(w criteria.Weight) {
	for i := range n.nodes {
		h := n.nodes[i].Heuristic
		for c := range h {
			h[c] = w
		}
	}
}
