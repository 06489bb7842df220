package heuristic

import (
	"github.com/katalvlaran/namoa/criteria"
	"github.com/katalvlaran/namoa/network"
	"github.com/katalvlaran/namoa/pqueue"
)

// Ideal computes the ideal point: per criterion, the exact scalar distance
// to the target.
type Ideal struct {
	pq      *pqueue.Queue[criteria.Weight, int]
	handles []pqueue.Handle
}

// NewIdeal returns an ideal-point engine. The engine keeps its queue between
// calls and may be reused across targets and networks.
func NewIdeal() *Ideal {
	return &Ideal{pq: pqueue.NewScalar[int]()}
}

// Name returns "ideal".
func (*Ideal) Name() string { return NameIdeal }

// Init runs one reverse scalar Dijkstra per criterion.
//
// Steps:
//  1. Reset the generation counter and fill every heuristic with Infinity;
//     unreachable nodes keep it.
//  2. For each criterion c: start a new network generation, settle nodes
//     from target over In arcs, writing distances into Heuristic[c].
//
// Complexity: O(k·(n + m)·log n).
func (e *Ideal) Init(net *network.Network, source, target int) error {
	if err := validate(net, source, target); err != nil {
		return err
	}
	if cap(e.handles) < net.NumNodes() {
		e.handles = make([]pqueue.Handle, net.NumNodes())
	}
	e.handles = e.handles[:net.NumNodes()]

	net.ResetGeneration()
	net.SetHeuristic(criteria.Infinity)
	for c := 0; c < net.NumCriteria(); c++ {
		e.run(net, target, c)
	}

	return nil
}

// run settles every node reaching target on criterion c.
func (e *Ideal) run(net *network.Network, target, c int) {
	gen := net.NextGeneration()
	e.pq.Clear()

	t := net.Node(target)
	t.Heuristic[c] = 0
	t.Timestamp = gen
	e.handles[target] = e.pq.Insert(0, target)

	for !e.pq.Empty() {
		d, u := e.pq.PopMin()
		for _, a := range net.Node(u).In {
			nd := net.Node(a.Head)
			alt := criteria.AddWeight(d, a.Cost[c])
			switch {
			case nd.Timestamp != gen: // first discovery in this run
				nd.Heuristic[c] = alt
				nd.Timestamp = gen
				e.handles[a.Head] = e.pq.Insert(alt, a.Head)
			case alt < nd.Heuristic[c]: // settled nodes never improve
				nd.Heuristic[c] = alt
				e.pq.Decrease(e.handles[a.Head], alt)
			}
		}
	}
}
