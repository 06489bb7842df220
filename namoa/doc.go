// Package namoa computes every Pareto-optimal cost vector between two nodes of
// a multi-criteria network with NAMOA*, the lexicographic-priority
// generalization of A* to vector costs.
//
// Two strategies implement Searcher:
//
//   - Split (primary): each node keeps an Open list (sorted, front = best
//     candidate) and an append-only Closed list. The queue holds at most one
//     entry per node, keyed by f = g(front) + h. Closed labels at the target,
//     in settle order, are the result.
//   - SingleList: each node keeps one flat label list and the queue holds one
//     entry per open label. A new label erases the labels it dominates,
//     revoking their queue entries. WithForwardPruning additionally walks
//     out-arcs from erased settled labels, erasing labels strictly dominated
//     by the extended cost.
//
// Query lifecycle:
//
//	s, _ := namoa.NewSplit(net, heuristic.NewIdeal())
//	_ = s.Init(source, target) // clears labels, computes heuristics
//	_ = s.Run(source, target)  // tight loop until the queue empties
//	for _, l := range s.Solutions() { ... }
//
// Pruning (Split), per popped node u with key f:
//
//  1. Settle the front open label; requeue u with the next front if any.
//  2. Never expand the target.
//  3. Skip u when f is dominated by any open or closed target label.
//  4. For each arc (u,v): skip when f_v is dominated by a target label,
//     skip when g_v is dominated by a closed label at v, otherwise merge g_v
//     into Open(v) and insert or decrease v when the front changed.
//
// Dominance is weak (equal vectors dominate each other), so no node ever keeps
// two labels with the same cost.
//
// Correctness requires a consistent heuristic. WithConsistencyCheck verifies
// it after every Init and returns an error wrapping heuristic.ErrInconsistent.
//
// Concurrency: a Searcher owns the network's search state while it runs. Run
// is synchronous and not cancellable; independent networks may be searched in
// parallel.
package namoa
