// SPDX-License-Identifier: MIT
// File: split.go
// Role: NAMOA* with per-node Open and Closed lists and one queue entry per node.

package namoa

import (
	"time"

	"github.com/katalvlaran/namoa/criteria"
	"github.com/katalvlaran/namoa/heuristic"
	"github.com/katalvlaran/namoa/network"
	"github.com/katalvlaran/namoa/pqueue"
)

// Split is the split open/closed NAMOA* strategy.
//
// Invariants after every step:
//   - Open(v) is sorted lexicographically and mutually non-dominated.
//   - No closed label at v dominates an open label at v.
//   - v is queued exactly when Open(v) is non-empty, keyed by g(front)+h(v).
//
// Complexity: O(L·(log N + d·P)) where L is the number of popped labels, d
// the out-degree and P the largest per-node label list.
type Split struct {
	base
	pq *pqueue.Queue[criteria.Vector, int]
}

// NewSplit wires a Split strategy over net with the given heuristic.
func NewSplit(net *network.Network, engine heuristic.Engine, opts ...Option) (*Split, error) {
	b, err := newBase(net, engine, opts)
	if err != nil {
		return nil, err
	}

	return &Split{base: b, pq: pqueue.NewVector[int]()}, nil
}

// Init clears all label state and computes heuristics towards target.
func (s *Split) Init(source, target int) error {
	s.pq.Clear()

	return s.initHeuristic(source, target)
}

// Run computes the Pareto set from source to target. Label state from an
// earlier Run is dropped first; heuristics are kept.
func (s *Split) Run(source, target int) error {
	if err := s.checkRun(source, target); err != nil {
		return err
	}
	start := time.Now()
	s.net.ResetSearch()
	s.pq.Clear()
	s.generated = 0

	zero := criteria.Zero(s.net.NumCriteria())
	src := s.net.Node(source)
	src.Open = []*network.Label{{Cost: zero, Node: source}}
	src.Handle = s.pq.Insert(zero.Add(src.Heuristic), source)

	tgt := s.net.Node(target)
	for !s.pq.Empty() {
		f, u := s.pq.PopMin()
		nu := s.net.Node(u)
		nu.Handle = pqueue.Handle{}
		s.generated++

		best := nu.Open[0]
		nu.Open = nu.Open[1:]
		nu.Closed = append(nu.Closed, best)
		if len(nu.Open) > 0 {
			nu.Handle = s.pq.Insert(nu.Open[0].Cost.Add(nu.Heuristic), u)
		}

		if u == target {
			continue
		}
		if dominatedByAny(tgt.Closed, f) || dominatedByAny(tgt.Open, f) {
			continue
		}

		for _, a := range nu.Out {
			v := a.Head
			nv := s.net.Node(v)
			gv := best.Cost.Add(a.Cost)
			fv := gv.Add(nv.Heuristic)

			if dominatedByAny(tgt.Closed, fv) || dominatedByAny(tgt.Open, fv) {
				continue
			}
			if dominatedByAny(nv.Closed, gv) {
				continue
			}

			open, inserted, frontChanged := mergeOpen(nv.Open, gv, best, v)
			nv.Open = open
			if !inserted || !frontChanged {
				continue
			}
			switch {
			case !s.pq.Contains(nv.Handle):
				nv.Handle = s.pq.Insert(fv, v)
			case fv.Less(s.pq.Key(nv.Handle)):
				s.pq.Decrease(nv.Handle, fv)
			}
			// An Infinity heuristic component saturates fv, which can then tie
			// the old key instead of beating it. The node keeps that key, so
			// the f popped for it and checked against the target above may
			// belong to the replaced front label. Such a node cannot reach the
			// target within the bound.
		}
	}
	s.logDone("split", source, target, len(tgt.Closed), start)

	return nil
}

// Solutions returns the target's closed labels in settle order. With a
// consistent heuristic that order is ascending lexicographic.
func (s *Split) Solutions() []*network.Label {
	if !s.ready {
		return nil
	}
	closed := s.net.Node(s.target).Closed
	out := make([]*network.Label, len(closed))
	copy(out, closed)

	return out
}

// mergeOpen inserts cost g (reached via pred) into the sorted open list of
// node. It returns the new list, whether g was inserted and whether g became
// the front. g is rejected when some open label dominates it, equal costs
// included; otherwise every open label g dominates is dropped.
func mergeOpen(open []*network.Label, g criteria.Vector, pred *network.Label, node int) ([]*network.Label, bool, bool) {
	if dominatedByAny(open, g) {
		return open, false, false
	}

	lbl := &network.Label{Cost: g, Pred: pred, Node: node}
	out := make([]*network.Label, 0, len(open)+1)
	placed := false
	for _, l := range open {
		if !placed && g.Less(l.Cost) {
			out = append(out, lbl)
			placed = true
		}
		if g.Dominates(l.Cost) {
			continue
		}
		out = append(out, l)
	}
	if !placed {
		out = append(out, lbl)
	}

	return out, true, out[0] == lbl
}
