package core

import (
	"errors"
	"sync"

	"github.com/katalvlaran/namoa/criteria"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrDimensionMismatch indicates an edge cost whose length is not NumCriteria().
	ErrDimensionMismatch = errors.New("core: cost vector dimension mismatch")

	// ErrNegativeWeight indicates an edge cost with a negative component.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrBadCriteria indicates a graph constructed with k < 1.
	ErrBadCriteria = errors.New("core: number of criteria must be at least 1")
)

// Edge is a connection between two vertices carrying one cost per criterion.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", …).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Cost holds one non-negative weight per criterion. Owned by the graph.
	Cost criteria.Vector

	// Directed reports whether the edge is one-way. Undirected edges are
	// expanded into two arcs when a network is built.
	Directed bool
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of all new edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the mutable multi-criteria graph.
//
// muVert protects order and index; muEdge protects edges and pairs.
// nextEdgeID is an atomic counter for Edge.ID generation.
type Graph struct {
	muVert sync.RWMutex // guards order, index
	muEdge sync.RWMutex // guards edges, pairs

	k          int  // number of criteria
	directed   bool // edge directedness
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	nextEdgeID uint64
	order      []string       // vertex IDs in insertion order
	index      map[string]int // vertex ID → position in order
	edges      []*Edge        // insertion order
	pairs      map[[2]string]int
}

// NewGraph creates an empty Graph with k criteria per edge.
// By default the Graph is undirected, without loops or parallel edges.
// Panics with ErrBadCriteria when k < 1.
// Complexity: O(1).
func NewGraph(k int, opts ...GraphOption) *Graph {
	if k < 1 {
		panic(ErrBadCriteria)
	}
	g := &Graph{
		k:     k,
		index: make(map[string]int),
		pairs: make(map[[2]string]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NumCriteria returns k.
func (g *Graph) NumCriteria() int { return g.k }

// Directed reports the edge directedness configured at construction.
func (g *Graph) Directed() bool { return g.directed }

// Multigraph reports whether parallel edges are allowed.
func (g *Graph) Multigraph() bool { return g.allowMulti }

// Looped reports whether self-loops are allowed.
func (g *Graph) Looped() bool { return g.allowLoops }
