package checker

import (
	"errors"

	"github.com/katalvlaran/namoa/criteria"
)

// Sentinel errors.
var (
	// ErrMalformed indicates a queries or solutions file that cannot be parsed.
	ErrMalformed = errors.New("checker: malformed input")

	// ErrCriteriaMismatch indicates a file written for another criteria count.
	ErrCriteriaMismatch = errors.New("checker: criteria count mismatch")

	// ErrQueryNotFound indicates a query id unknown to the oracle.
	ErrQueryNotFound = errors.New("checker: query not found")
)

// Outcome classifies a comparison against the oracle.
type Outcome int

const (
	// Mismatch: the sets differ.
	Mismatch Outcome = iota
	// Match: same vectors, same order.
	Match
	// MatchUnordered: same set, different order.
	MatchUnordered
)

func (o Outcome) String() string {
	switch o {
	case Match:
		return "match"
	case MatchUnordered:
		return "match-unordered"
	default:
		return "mismatch"
	}
}

// Correct reports whether the sets agree, in any order.
func (o Outcome) Correct() bool { return o != Mismatch }

// Cell is a grid coordinate.
type Cell struct{ X, Y int }

// Query is one grid problem.
type Query struct {
	ID             int
	Source, Target Cell
}

// Solutions maps a query id to its expected Pareto cost vectors.
type Solutions map[int][]criteria.Vector
