// SPDX-License-Identifier: MIT
//
// File: vector.go
// Role: Vector arithmetic, equality, lexicographic order and Pareto dominance.
// Determinism:
//   - All operations are pure and allocation-free except Add/Sub/Clone/Zero.

package criteria

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Weight is the scalar type of a single criterion.
type Weight = int64

// Infinity is the sentinel "no finite bound known" value. Add saturates at it.
const Infinity Weight = math.MaxInt64

// Sentinel errors carried by precondition panics.
var (
	// ErrDimensionMismatch indicates two vectors of different length were combined.
	ErrDimensionMismatch = errors.New("criteria: dimension mismatch")

	// ErrNegativeComponent indicates a subtraction or construction produced a
	// negative component.
	ErrNegativeComponent = errors.New("criteria: negative component")
)

// Vector is an ordered list of criterion values.
type Vector []Weight

// Zero returns the all-zero vector of length k.
func Zero(k int) Vector {
	return make(Vector, k)
}

// Filled returns a vector of length k with every component set to w.
func Filled(k int, w Weight) Vector {
	v := make(Vector, k)
	for i := range v {
		v[i] = w
	}

	return v
}

// Of builds a vector from the given components. It panics on a negative value.
func Of(ws ...Weight) Vector {
	v := make(Vector, len(ws))
	for i, w := range ws {
		if w < 0 {
			panic(fmt.Errorf("%w: component %d = %d", ErrNegativeComponent, i, w))
		}
		v[i] = w
	}

	return v
}

// Len returns the number of criteria.
func (v Vector) Len() int { return len(v) }

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	c := make(Vector, len(v))
	copy(c, v)

	return c
}

// IsFinite reports whether no component equals Infinity.
func (v Vector) IsFinite() bool {
	for _, w := range v {
		if w == Infinity {
			return false
		}
	}

	return true
}

// Add returns v+o component-wise, saturating at Infinity.
func (v Vector) Add(o Vector) Vector {
	mustMatch(v, o)
	sum := make(Vector, len(v))
	for i := range v {
		sum[i] = AddWeight(v[i], o[i])
	}

	return sum
}

// Sub returns v-o component-wise. It panics if any component of o exceeds
// the matching component of v: a difference of an f-value and a heuristic
// must be a realisable g-value.
func (v Vector) Sub(o Vector) Vector {
	mustMatch(v, o)
	diff := make(Vector, len(v))
	for i := range v {
		if v[i] < o[i] {
			panic(fmt.Errorf("%w: %d - %d at criterion %d", ErrNegativeComponent, v[i], o[i], i))
		}
		diff[i] = v[i] - o[i]
	}

	return diff
}

// Equal reports whether v and o hold the same components.
func (v Vector) Equal(o Vector) bool {
	mustMatch(v, o)
	for i := range v {
		if v[i] != o[i] {
			return false
		}
	}

	return true
}

// Dominates reports whether v[i] ≤ o[i] for every criterion (weak dominance).
func (v Vector) Dominates(o Vector) bool {
	mustMatch(v, o)
	for i := range v {
		if v[i] > o[i] {
			return false
		}
	}

	return true
}

// StrictlyDominates reports whether v dominates o and differs from it.
func (v Vector) StrictlyDominates(o Vector) bool {
	return v.Dominates(o) && !v.Equal(o)
}

// IsDominatedBy is o.Dominates(v).
func (v Vector) IsDominatedBy(o Vector) bool { return o.Dominates(v) }

// Less reports whether v precedes o in strict lexicographic order.
func (v Vector) Less(o Vector) bool { return v.Compare(o) < 0 }

// Compare returns -1, 0 or +1 as v is lexicographically before, equal to or after o.
func (v Vector) Compare(o Vector) int {
	mustMatch(v, o)
	for i := range v {
		switch {
		case v[i] < o[i]:
			return -1
		case v[i] > o[i]:
			return 1
		}
	}

	return 0
}

// String renders v as "(a, b, ...)"; Infinity prints as "inf".
func (v Vector) String() string {
	return "(" + v.Join(", ") + ")"
}

// Join renders the components separated by sep.
func (v Vector) Join(sep string) string {
	var sb strings.Builder
	for i, w := range v {
		if i > 0 {
			sb.WriteString(sep)
		}
		if w == Infinity {
			sb.WriteString("inf")
			continue
		}
		sb.WriteString(strconv.FormatInt(w, 10))
	}

	return sb.String()
}

// Less is the package-level lexicographic comparator, usable as a queue order.
func Less(a, b Vector) bool { return a.Less(b) }

// AddWeight returns a+b for non-negative weights, saturating at Infinity.
func AddWeight(a, b Weight) Weight {
	if a == Infinity || b == Infinity || a > Infinity-b {
		return Infinity
	}

	return a + b
}

func mustMatch(a, b Vector) {
	if len(a) != len(b) {
		panic(fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b)))
	}
}
