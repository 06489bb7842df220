// SPDX-License-Identifier: MIT
//
// File: bounded.go
// Role: Bounded ideal-point heuristic for two criteria.
// Stages:
//   1. Reverse lexicographic search on (c0, c1) from the target, stopped when
//      the source reaches the front of the queue. bound1 = c1 cost of the
//      lexicographically optimal path.
//   2. Reverse lexicographic search on (c1, c0), settling only nodes whose c1
//      distance is ≤ bound1. bound0 = c0 cost of the (c1, c0)-optimal path.
//   3. Resume stage 1 until the next c0 key exceeds bound0.
// Every Pareto-optimal path has c0 ≤ bound0 and c1 ≤ bound1, so all of its
// nodes get settled by both searches and receive exact finite bounds. Nodes
// outside either bound keep Infinity in that component.

package heuristic

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/namoa/criteria"
	"github.com/katalvlaran/namoa/network"
)

// BoundedIdeal is the two-criteria bounded ideal-point engine.
type BoundedIdeal struct {
	// Bounds of the last Init, exposed for logging and tests.
	Bound0, Bound1 criteria.Weight

	// Marked is the set of nodes discovered by the stage-2 search.
	Marked *roaring.Bitmap

	// Settled counts nodes with a finite bound per criterion.
	Settled [2]uint64
}

// NewBoundedIdeal returns a bounded ideal-point engine.
func NewBoundedIdeal() *BoundedIdeal { return &BoundedIdeal{} }

// Name returns "bounded".
func (*BoundedIdeal) Name() string { return NameBounded }

// Init runs the three stages and writes the bounds.
// Returns ErrUnsupportedCriteria unless the network has exactly two criteria.
func (e *BoundedIdeal) Init(net *network.Network, source, target int) error {
	if err := validate(net, source, target); err != nil {
		return err
	}
	if net.NumCriteria() != 2 {
		return fmt.Errorf("%w: bounded ideal needs 2, network has %d", ErrUnsupportedCriteria, net.NumCriteria())
	}

	net.ResetGeneration()

	// 1) c0-primary search up to the source.
	first := newLexSearch(net, 0, 1, nil)
	first.start(target)
	first.runUntil(func(_ criteria.Vector, u int) bool { return u == source })
	e.Bound1 = criteria.Infinity
	if first.discovered(source) {
		e.Bound1 = first.dist[source][1]
	}

	// 2) c1-primary search bounded by bound1.
	e.Marked = roaring.New()
	second := newLexSearch(net, 1, 0, e.Marked)
	second.start(target)
	second.runUntil(func(key criteria.Vector, _ int) bool { return key[0] > e.Bound1 })
	e.Bound0 = criteria.Infinity
	if d := second.final(source); d != nil {
		e.Bound0 = d[1]
	}

	// 3) Resume stage 1 up to bound0.
	first.runUntil(func(key criteria.Vector, _ int) bool { return key[0] > e.Bound0 })

	// Only settled distances are exact; everything else keeps the sentinel.
	net.SetHeuristic(criteria.Infinity)
	first.settled.Iterate(func(x uint32) bool {
		net.Node(int(x)).Heuristic[0] = first.dist[x][0]
		return true
	})
	second.settled.Iterate(func(x uint32) bool {
		net.Node(int(x)).Heuristic[1] = second.dist[x][0]
		return true
	})
	e.Settled = [2]uint64{first.settled.GetCardinality(), second.settled.GetCardinality()}

	return nil
}

// SourceSpecific reports that the bounds depend on the source as well as the
// target: a search must Init again before running from another source.
func (*BoundedIdeal) SourceSpecific() bool { return true }
