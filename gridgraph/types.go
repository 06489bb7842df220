package gridgraph

import (
	"errors"
	"math"
	"strconv"

	"github.com/katalvlaran/namoa/core"
)

// Sentinel errors for grid file handling.
var (
	// ErrMalformed indicates a header or arc line that cannot be parsed.
	ErrMalformed = errors.New("gridgraph: malformed grid file")

	// ErrNotSquare indicates a node count that is not a perfect square.
	ErrNotSquare = errors.New("gridgraph: node count is not a perfect square")

	// ErrBadCriteria indicates a criteria count below one.
	ErrBadCriteria = errors.New("gridgraph: criteria count must be ≥ 1")

	// ErrOutOfGrid indicates a coordinate outside [0, dim).
	ErrOutOfGrid = errors.New("gridgraph: coordinate outside the grid")
)

// MaxNodes bounds the node count a header may declare (a 4096x4096 grid).
const MaxNodes = 1 << 24

// Grid is a grid instance: the graph plus its side length.
type Grid struct {
	Graph *core.Graph
	Dim   int
}

// NodeIndex returns x*dim+y, the dense index of cell (x,y).
func (g *Grid) NodeIndex(x, y int) int { return x*g.Dim + y }

// NodeID returns the vertex ID of cell (x,y).
func (g *Grid) NodeID(x, y int) string { return strconv.Itoa(g.NodeIndex(x, y)) }

// InBounds reports whether (x,y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Dim && y >= 0 && y < g.Dim
}

// Options tunes Read.
type Options struct {
	// OneWay inserts each arc line in the written direction only.
	OneWay bool

	// StrictCount rejects files whose arc count differs from the header.
	StrictCount bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns both-direction insertion with strict counting.
func DefaultOptions() Options {
	return Options{StrictCount: true}
}

// WithOneWay inserts every arc line in its written direction only.
func WithOneWay() Option { return func(o *Options) { o.OneWay = true } }

// WithLenientCount accepts files whose arc count differs from the header.
func WithLenientCount() Option { return func(o *Options) { o.StrictCount = false } }

// Dim returns the side length of a grid with n nodes.
func Dim(n int) (int, error) {
	if n < 1 {
		return 0, ErrNotSquare
	}
	d := int(math.Sqrt(float64(n)))
	for d*d > n {
		d--
	}
	for (d+1)*(d+1) <= n {
		d++
	}
	if d*d != n {
		return 0, ErrNotSquare
	}

	return d, nil
}
