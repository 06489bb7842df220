package namoa

import (
	"time"

	"github.com/katalvlaran/namoa/criteria"
	"github.com/katalvlaran/namoa/heuristic"
	"github.com/katalvlaran/namoa/network"
	"github.com/katalvlaran/namoa/pqueue"
)

// SingleList is the NAMOA* strategy with one label list per node and one
// queue entry per open label. Nodes are reset lazily through the network
// generation stamp, so Run touches only the nodes it reaches.
type SingleList struct {
	base
	pq  *pqueue.Queue[criteria.Vector, *network.Label]
	gen uint32

	forwardErased int
}

// NewSingleList wires a SingleList strategy over net with the given heuristic.
func NewSingleList(net *network.Network, engine heuristic.Engine, opts ...Option) (*SingleList, error) {
	b, err := newBase(net, engine, opts)
	if err != nil {
		return nil, err
	}

	return &SingleList{base: b, pq: pqueue.NewVector[*network.Label]()}, nil
}

// Init clears all label state and computes heuristics towards target.
func (s *SingleList) Init(source, target int) error {
	s.pq.Clear()
	s.gen = 0

	return s.initHeuristic(source, target)
}

// Run computes the Pareto set from source to target.
func (s *SingleList) Run(source, target int) error {
	if err := s.checkRun(source, target); err != nil {
		return err
	}
	start := time.Now()
	s.pq.Clear()
	s.generated = 0
	s.forwardErased = 0
	s.gen = s.net.NextGeneration()

	zero := criteria.Zero(s.net.NumCriteria())
	src := s.touch(source)
	tgt := s.touch(target)
	l0 := &network.Label{Cost: zero, Node: source}
	src.Labels = append(src.Labels, l0)
	l0.Handle = s.pq.Insert(zero.Add(src.Heuristic), l0)

	for !s.pq.Empty() {
		f, lu := s.pq.PopMin()
		lu.Handle = pqueue.Handle{}
		s.generated++

		u := lu.Node
		if u == target || dominatedByAny(tgt.Labels, f) {
			continue
		}

		for _, a := range s.net.Node(u).Out {
			v := a.Head
			nv := s.touch(v)
			gv := lu.Cost.Add(a.Cost)

			if hasCost(nv.Labels, gv) || dominatedByAny(nv.Labels, gv) {
				continue
			}
			s.eraseDominated(v, gv, false)

			fv := gv.Add(nv.Heuristic)
			if dominatedByAny(tgt.Labels, fv) {
				continue
			}
			l := &network.Label{Cost: gv, Pred: lu, Node: v}
			nv.Labels = append(nv.Labels, l)
			l.Handle = s.pq.Insert(fv, l)
		}
	}
	s.logDone("single", source, target, len(tgt.Labels), start)

	return nil
}

// Solutions returns the target's labels of the last Run.
func (s *SingleList) Solutions() []*network.Label {
	if !s.ready || s.gen == 0 {
		return nil
	}
	tgt := s.net.Node(s.target)
	if tgt.Timestamp != s.gen {
		return nil
	}
	out := make([]*network.Label, len(tgt.Labels))
	copy(out, tgt.Labels)

	return out
}

// ForwardErased returns how many labels the last Run removed downstream of
// an erased settled label. It stays zero without WithForwardPruning.
func (s *SingleList) ForwardErased() int { return s.forwardErased }

// touch drops labels left by an earlier Run on node v.
func (s *SingleList) touch(v int) *network.Node {
	n := s.net.Node(v)
	if n.Timestamp != s.gen {
		n.Labels = nil
		n.Timestamp = s.gen
	}

	return n
}

// eraseDominated removes from v every label dominated by g (strictly, when
// strict is set). Queued labels leave the queue. When forward pruning is on and
// a settled label was erased, the erasure continues along the out-arcs of v
// with the extended cost, always strictly.
func (s *SingleList) eraseDominated(v int, g criteria.Vector, strict bool) {
	nv := s.net.Node(v)
	kept := make([]*network.Label, 0, len(nv.Labels))
	settled := false
	for _, l := range nv.Labels {
		dominated := g.Dominates(l.Cost)
		if strict {
			dominated = g.StrictlyDominates(l.Cost)
		}
		if !dominated {
			kept = append(kept, l)
			continue
		}
		if strict {
			s.forwardErased++
		}
		if s.pq.Contains(l.Handle) {
			s.pq.Remove(l.Handle)
			l.Handle = pqueue.Handle{}
		} else {
			settled = true
		}
	}
	nv.Labels = kept

	if !settled || !s.opts.ForwardPruning {
		return
	}
	for _, a := range nv.Out {
		s.touch(a.Head)
		s.eraseDominated(a.Head, g.Add(a.Cost), true)
	}
}

// hasCost reports whether some label in ls has exactly cost c.
func hasCost(ls []*network.Label, c criteria.Vector) bool {
	for _, l := range ls {
		if l.Cost.Equal(c) {
			return true
		}
	}

	return false
}
