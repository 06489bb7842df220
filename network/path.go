package network

// Path returns the node indices from the search source to l.Node, following
// predecessor links.
// Complexity: O(path length).
func Path(l *Label) []int {
	var rev []int
	for cur := l; cur != nil; cur = cur.Pred {
		rev = append(rev, cur.Node)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// PathIDs is Path translated to vertex IDs.
func (n *Network) PathIDs(l *Label) []string {
	idx := Path(l)
	out := make([]string, len(idx))
	for i, v := range idx {
		out[i] = n.nodes[v].ID
	}

	return out
}
