package dimacs

import "errors"

// Sentinel errors.
var (
	// ErrMalformed indicates a line that does not follow the DIMACS layout.
	ErrMalformed = errors.New("dimacs: malformed input")

	// ErrMissingArc indicates an arc of the distance file absent from the
	// travel-time file.
	ErrMissingArc = errors.New("dimacs: arc missing from travel-time file")

	// ErrNodeOutOfRange indicates a node number outside 1..n.
	ErrNodeOutOfRange = errors.New("dimacs: node number out of range")
)

// MaxNodes bounds the node count a problem line may declare. The full USA
// road network of the 9th DIMACS challenge has about 24 million nodes.
const MaxNodes = 1 << 25

// maxPrealloc caps capacity hints taken from problem lines.
const maxPrealloc = 1 << 16

// Coord is one ".co" record.
type Coord struct {
	ID   int
	X, Y int64
}

// Query is one source/target pair, in DIMACS node numbers.
type Query struct {
	Source, Target int
}

// arc is one parsed "a" line.
type arc struct {
	u, v int
	w    int64
}
