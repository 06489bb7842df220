package checker

import (
	"fmt"

	"github.com/katalvlaran/namoa/criteria"
)

// Oracle answers expected Pareto sets by query id.
type Oracle struct {
	solutions Solutions
}

// NewOracle wraps parsed solutions.
func NewOracle(s Solutions) *Oracle { return &Oracle{solutions: s} }

// Len is the number of known queries.
func (o *Oracle) Len() int { return len(o.solutions) }

// Expected returns the Pareto set recorded for id.
func (o *Oracle) Expected(id int) ([]criteria.Vector, error) {
	s, ok := o.solutions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrQueryNotFound, id)
	}

	return s, nil
}

// Check compares got with the set recorded for id.
func (o *Oracle) Check(id int, got []criteria.Vector) (Outcome, error) {
	want, err := o.Expected(id)
	if err != nil {
		return Mismatch, err
	}

	return Compare(got, want), nil
}

// Compare classifies got against want: identical lists match, lists equal
// after sorting both lexicographically match unordered, anything else
// mismatches. Neither argument is modified.
func Compare(got, want []criteria.Vector) Outcome {
	if criteria.EqualLists(got, want) {
		return Match
	}
	if criteria.EqualLists(sortedCopy(got), sortedCopy(want)) {
		return MatchUnordered
	}

	return Mismatch
}

func sortedCopy(vs []criteria.Vector) []criteria.Vector {
	out := make([]criteria.Vector, len(vs))
	copy(out, vs)
	criteria.SortLex(out)

	return out
}
