package checker

import (
	"bufio"
	"fmt"
	"io"
	"sort"
)

// WriteQueries emits a queries file for k criteria.
func WriteQueries(w io.Writer, comment string, k int, qs []Query) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n%d\n%d\n", comment, k, len(qs))
	for _, q := range qs {
		fmt.Fprintf(bw, "%d %d %d %d %d\n", q.ID, q.Source.X, q.Source.Y, q.Target.X, q.Target.Y)
	}

	return bw.Flush()
}

// WriteSolutions emits a solutions file for k criteria, problems in id order.
func WriteSolutions(w io.Writer, comment string, k int, s Solutions) error {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, comment)
	for _, id := range ids {
		fmt.Fprintf(bw, "%d %d\n%d\n", id, k, len(s[id]))
		for _, v := range s[id] {
			fmt.Fprintln(bw, v.Join(" "))
		}
	}

	return bw.Flush()
}
