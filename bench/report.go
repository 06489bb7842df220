package bench

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// WriteTSV writes one tab-separated table per instance: a row per query and,
// per engine, columns for search milliseconds, generated labels and Pareto
// set size.
func WriteTSV(w io.Writer, runName, runID string, results []QueryResult) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# run\t%s\t%s\n", runName, runID)

	for _, inst := range groupBy(results, func(r QueryResult) string { return r.Instance }) {
		rows := inst.items
		columns := groupBy(rows, func(r QueryResult) string { return r.Variant + " " + r.Engine })
		queries := groupBy(rows, func(r QueryResult) string { return strconv.Itoa(r.Query.ID) })

		fmt.Fprintf(bw, "# instance\t%s\n", inst.key)
		fmt.Fprint(bw, "source\tdestination")
		for _, c := range columns {
			fmt.Fprintf(bw, "\t%s ms\t%s labels\t%s |C|", c.key, c.key, c.key)
		}
		fmt.Fprintln(bw)

		for _, q := range queries {
			first := q.items[0]
			fmt.Fprintf(bw, "%s\t%s", first.SourceID, first.TargetID)
			for _, c := range columns {
				r, ok := find(q.items, func(r QueryResult) bool { return r.Variant+" "+r.Engine == c.key })
				if !ok {
					fmt.Fprint(bw, "\t\t\t")
					continue
				}
				fmt.Fprintf(bw, "\t%.3f\t%d\t%d", millis(r.QueryTime.Seconds()), r.Generated, len(r.Solutions))
			}
			fmt.Fprintln(bw)
		}
	}

	return bw.Flush()
}

// WriteTSVFile writes the report to path.
func WriteTSVFile(path, runName, runID string, results []QueryResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bench: report: %w", err)
	}
	if err = WriteTSV(f, runName, runID, results); err != nil {
		_ = f.Close()
		return fmt.Errorf("bench: report: %w", err)
	}

	return f.Close()
}

type group struct {
	key   string
	items []QueryResult
}

// groupBy groups results by key, in first-seen order.
func groupBy(rs []QueryResult, key func(QueryResult) string) []group {
	var out []group
	idx := make(map[string]int)
	for _, r := range rs {
		k := key(r)
		i, ok := idx[k]
		if !ok {
			i = len(out)
			idx[k] = i
			out = append(out, group{key: k})
		}
		out[i].items = append(out[i].items, r)
	}

	return out
}

func find(rs []QueryResult, pred func(QueryResult) bool) (QueryResult, bool) {
	for _, r := range rs {
		if pred(r) {
			return r, true
		}
	}

	return QueryResult{}, false
}

func millis(s float64) float64 { return s * 1000 }
