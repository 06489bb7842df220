package heuristic

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/namoa/criteria"
	"github.com/katalvlaran/namoa/network"
	"github.com/katalvlaran/namoa/pqueue"
)

// lexSearch is a resumable reverse Dijkstra keyed by the pair
// (primary cost, companion cost) in lexicographic order. The companion is
// the other criterion's cost along the same tree path, so a settled node
// knows both costs of its lexicographically optimal path to the target.
type lexSearch struct {
	net       *network.Network
	primary   int
	companion int

	pq      *pqueue.Queue[criteria.Vector, int]
	dist    []criteria.Vector // (primary, companion); valid once discovered
	handles []pqueue.Handle

	// discovered uses the network generation when marked is nil.
	gen    uint32
	marked *roaring.Bitmap

	settled *roaring.Bitmap
}

func newLexSearch(net *network.Network, primary, companion int, marked *roaring.Bitmap) *lexSearch {
	return &lexSearch{
		net:       net,
		primary:   primary,
		companion: companion,
		pq:        pqueue.NewVector[int](),
		dist:      make([]criteria.Vector, net.NumNodes()),
		handles:   make([]pqueue.Handle, net.NumNodes()),
		marked:    marked,
		settled:   roaring.New(),
	}
}

func (s *lexSearch) discovered(v int) bool {
	if s.marked != nil {
		return s.marked.Contains(uint32(v))
	}

	return s.net.Node(v).Timestamp == s.gen
}

func (s *lexSearch) discover(v int, key criteria.Vector) {
	if s.marked != nil {
		s.marked.Add(uint32(v))
	} else {
		s.net.Node(v).Timestamp = s.gen
	}
	s.dist[v] = key
	s.handles[v] = s.pq.Insert(key, v)
}

// start seeds the search at target with a zero key.
func (s *lexSearch) start(target int) {
	if s.marked == nil {
		s.gen = s.net.NextGeneration()
	}
	s.discover(target, criteria.Zero(2))
}

// runUntil settles nodes in key order until the queue empties or stop
// accepts the current minimum, which then stays queued.
func (s *lexSearch) runUntil(stop func(key criteria.Vector, node int) bool) {
	for !s.pq.Empty() {
		key, u := s.pq.Min()
		if stop(key, u) {
			return
		}
		s.pq.PopMin()
		s.settled.Add(uint32(u))

		for _, a := range s.net.Node(u).In {
			alt := criteria.Vector{
				criteria.AddWeight(key[0], a.Cost[s.primary]),
				criteria.AddWeight(key[1], a.Cost[s.companion]),
			}
			v := a.Head
			switch {
			case !s.discovered(v):
				s.discover(v, alt)
			case alt.Less(s.dist[v]) && !s.settled.Contains(uint32(v)):
				s.dist[v] = alt
				s.pq.Decrease(s.handles[v], alt)
			}
		}
	}
}

// final returns the settled key of v, or nil when v is not settled.
func (s *lexSearch) final(v int) criteria.Vector {
	if !s.settled.Contains(uint32(v)) {
		return nil
	}

	return s.dist[v]
}
