package criteria

import "sort"

// SortLex sorts vs in place in ascending lexicographic order.
func SortLex(vs []Vector) {
	sort.SliceStable(vs, func(i, j int) bool { return vs[i].Less(vs[j]) })
}

// NonDominated filters vs down to its Pareto front: a vector is kept if no
// other vector strictly improves on it, and equal vectors are kept once.
// The result is sorted lexicographically. vs is not modified.
func NonDominated(vs []Vector) []Vector {
	sorted := make([]Vector, len(vs))
	copy(sorted, vs)
	SortLex(sorted)

	front := make([]Vector, 0, len(sorted))
	for _, cand := range sorted {
		keep := true
		for _, kept := range front {
			// kept precedes cand lexicographically, so weak dominance here
			// also covers the duplicate case.
			if kept.Dominates(cand) {
				keep = false
				break
			}
		}
		if keep {
			front = append(front, cand)
		}
	}

	return front
}

// EqualLists reports whether a and b hold equal vectors in the same order.
func EqualLists(a, b []Vector) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) || !a[i].Equal(b[i]) {
			return false
		}
	}

	return true
}
