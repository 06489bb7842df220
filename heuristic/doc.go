// Package heuristic computes per-node lower-bound cost vectors to a fixed
// target before a multi-objective search runs.
//
// Engines:
//
//   - Blind: the zero vector everywhere. The search degenerates into a
//     multi-criteria Dijkstra; used as the correctness baseline.
//   - Ideal: the ideal point. For each criterion i, a scalar Dijkstra from
//     the target over reversed arcs writes the criterion-i distance into
//     Heuristic[i]. One scalar queue and the network generation counter are
//     shared across the k runs.
//   - BoundedIdeal: two criteria only. Lexicographic reverse searches bounded
//     by the costs of the two lexicographically optimal paths, so only nodes
//     that can lie on a Pareto-optimal path receive finite bounds.
//
// Every engine writes Network node Heuristic vectors in place and leaves the
// label lists alone. Nodes the reverse searches never settle keep
// criteria.Infinity in the affected components; such nodes cannot reach the
// target within the relevant bound.
//
// Complexity (n nodes, m arcs, k criteria):
//
//   - Blind:        O(n·k)
//   - Ideal:        O(k·(n + m)·log n)
//   - BoundedIdeal: O((n + m)·log n) worst case, usually far less
package heuristic
