// Package checker is the correctness oracle for grid benchmarks.
//
// A queries file lists problems by cell coordinates:
//
//	<comment>
//	<ncosts>
//	<nprobs>
//	<id> <x1> <y1> <x2> <y2>
//
// A solutions file lists the expected Pareto cost vectors of each problem:
//
//	<comment>
//	<id> <k>
//	<n>
//	<c1> ... <ck>    (n lines)
//
// Compare reports one of three outcomes. Match means the vectors agree in
// order. MatchUnordered means they agree only after lexicographic sorting,
// which callers treat as a warning. Mismatch is a result, not an error.
package checker
