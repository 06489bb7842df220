// Package criteria implements fixed-length cost vectors for multi-objective
// path search.
//
// A Vector holds one non-negative integer Weight per criterion (distance,
// travel time, ...). The number of criteria k is fixed for a run and every
// binary operation requires both operands to have the same length.
//
// Orders:
//
//   - Dominates(a, b): a[i] ≤ b[i] for every i. This is WEAK dominance, so two
//     equal vectors dominate each other. Pareto pruning relies on this.
//   - Less(a, b): strict lexicographic order (first differing component decides).
//     It is a total order used for priority-queue keys and for keeping open
//     lists sorted; it is not the optimality criterion.
//
// Arithmetic:
//
//   - Add is component-wise and saturates at Infinity, so a heuristic sentinel
//     can be added to a realised cost without wrapping around.
//   - Sub is component-wise and panics if any component would become negative.
//
// Precondition violations (dimension mismatch, negative subtraction) panic:
// they indicate a caller bug, not a runtime condition.
package criteria
