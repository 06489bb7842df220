package bench

import (
	"fmt"

	"github.com/katalvlaran/namoa/criteria"
	"github.com/katalvlaran/namoa/network"
	"github.com/katalvlaran/namoa/pqueue"
)

// referenceFront is a label-setting multi-objective Dijkstra without
// heuristics or open-list bookkeeping. Labels are popped in lexicographic
// order, so a popped label not weakly dominated by a permanent one at its
// node is itself permanent. It reads only the network topology and leaves
// the search fields of every node alone.
func referenceFront(net *network.Network, source, target int) []criteria.Vector {
	type entry struct {
		node int
		cost criteria.Vector
	}
	permanent := make([][]criteria.Vector, net.NumNodes())
	covered := func(v int, c criteria.Vector) bool {
		for _, p := range permanent[v] {
			if p.Dominates(c) {
				return true
			}
		}
		return false
	}

	pq := pqueue.NewVector[entry]()
	zero := criteria.Zero(net.NumCriteria())
	pq.Insert(zero, entry{node: source, cost: zero})
	for !pq.Empty() {
		_, e := pq.PopMin()
		if covered(e.node, e.cost) || covered(target, e.cost) {
			continue
		}
		permanent[e.node] = append(permanent[e.node], e.cost)
		if e.node == target {
			continue
		}
		for _, a := range net.Node(e.node).Out {
			c := e.cost.Add(a.Cost)
			if covered(a.Head, c) || covered(target, c) {
				continue
			}
			pq.Insert(c, entry{node: a.Head, cost: c})
		}
	}

	return permanent[target]
}

// crossCheck fails with ErrMismatch unless both fronts hold the same costs.
func crossCheck(id int, reference, searched []criteria.Vector) error {
	a := append([]criteria.Vector(nil), reference...)
	b := append([]criteria.Vector(nil), searched...)
	criteria.SortLex(a)
	criteria.SortLex(b)
	if !criteria.EqualLists(a, b) {
		return fmt.Errorf("%w: generated problem %d: reference %v, search %v", ErrMismatch, id, a, b)
	}

	return nil
}
