package network

import (
	"errors"

	"github.com/katalvlaran/namoa/criteria"
	"github.com/katalvlaran/namoa/pqueue"
)

// Sentinel errors.
var (
	// ErrNilGraph indicates Build was called with a nil graph.
	ErrNilGraph = errors.New("network: graph is nil")

	// ErrVertexNotFound indicates an ID that is not part of the network.
	ErrVertexNotFound = errors.New("network: vertex not found")
)

// Arc is one directed connection. For Out arcs Head is the arc target; for
// In arcs Head is the arc source (the node reached when walking backwards).
type Arc struct {
	Head int
	Cost criteria.Vector
}

// Label is a candidate cost reaching Node, with the label it was extended from.
// Cost and Pred never change after creation.
type Label struct {
	Cost criteria.Vector
	Pred *Label
	Node int

	// Handle is the label's own queue entry. Only the single-list search
	// queues individual labels; the zero Handle means "not queued".
	Handle pqueue.Handle
}

// Node holds the search state of one vertex.
type Node struct {
	ID  string
	Out []Arc
	In  []Arc

	// Open is sorted ascending by lexicographic cost; Open[0] is the node's
	// representative in the queue.
	Open []*Label

	// Closed is append-only, in settle order.
	Closed []*Label

	// Labels is the flat list used by the single-list search.
	Labels []*Label

	Heuristic criteria.Vector

	// Handle is the node's queue entry (0 or 1 per node).
	Handle pqueue.Handle

	Timestamp uint32
}
