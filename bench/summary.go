package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/namoa/checker"
)

var styles = struct {
	Query   lipgloss.Style
	OK      lipgloss.Style
	Bad     lipgloss.Style
	Warning lipgloss.Style
	Stat    lipgloss.Style
	Title   lipgloss.Style
}{
	Query:   lipgloss.NewStyle().Background(lipgloss.Color("4")).Foreground(lipgloss.Color("15")),
	OK:      lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	Bad:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	Stat:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	Title:   lipgloss.NewStyle().Bold(true).Underline(true),
}

// Summarize prints one verdict line per query and, when verbose, the per-query
// statistics and totals per instance and engine.
func Summarize(w io.Writer, results []QueryResult, verbose bool) {
	for _, inst := range groupBy(results, func(r QueryResult) string { return r.Instance }) {
		for _, eng := range groupBy(inst.items, func(r QueryResult) string { return r.Variant + "/" + r.Engine }) {
			fmt.Fprintln(w, styles.Title.Render(fmt.Sprintf("%s with NAMOA* %s", inst.key, eng.key)))

			var total time.Duration
			labels := 0
			for _, r := range eng.items {
				total += r.QueryTime
				labels += r.Generated
				fmt.Fprintf(w, "%s\t\t", styles.Query.Render(fmt.Sprintf("(%s->%s)", r.SourceID, r.TargetID)))
				if verbose {
					fmt.Fprintf(w, "%s efficient paths were found.\n", styles.Stat.Render(fmt.Sprint(len(r.Solutions))))
					fmt.Fprintf(w, "\t\t\t%s labels were scanned.\n", styles.Stat.Render(fmt.Sprint(r.Generated)))
					fmt.Fprintf(w, "\t\t\t%s - calculation of heuristic.\n", styles.Stat.Render(r.HeuristicTime.String()))
					fmt.Fprintf(w, "\t\t\t%s - algorithm runtime.\n", styles.Stat.Render(r.QueryTime.String()))
				}
				fmt.Fprintf(w, "Solutions ... ->\t%s\n", verdict(r))
			}
			if verbose && len(eng.items) > 0 {
				fmt.Fprintf(w, "\tAlgorithm Runtime:\t%s (%s per query)\n", total, total/time.Duration(len(eng.items)))
				fmt.Fprintf(w, "\tGenerated labels:\t%d\n", labels)
			}
		}
	}
}

func verdict(r QueryResult) string {
	if !r.Checked {
		return styles.Stat.Render(fmt.Sprintf("%d solutions (unchecked)", len(r.Solutions)))
	}
	switch r.Outcome {
	case checker.Match:
		return styles.OK.Render("OK")
	case checker.MatchUnordered:
		return styles.OK.Render("OK") + "\n" + styles.Warning.Render("Warning!") +
			" The same set of solutions was found, but in different order."
	default:
		return styles.Bad.Render("Different!!!")
	}
}

// Tally counts results per outcome; unchecked results are counted apart.
type Tally struct {
	Match, Unordered, Mismatch, Unchecked int
}

// Count tallies results.
func Count(results []QueryResult) Tally {
	var t Tally
	for _, r := range results {
		switch {
		case !r.Checked:
			t.Unchecked++
		case r.Outcome == checker.Match:
			t.Match++
		case r.Outcome == checker.MatchUnordered:
			t.Unordered++
		default:
			t.Mismatch++
		}
	}

	return t
}
