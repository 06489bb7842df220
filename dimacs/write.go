package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/namoa/core"
)

// WritePair writes a two-criteria graph as a distance file and a travel-time
// file. Vertex i in insertion order becomes DIMACS node i+1; undirected edges
// are written in both directions.
func WritePair(dist, time io.Writer, g *core.Graph) error {
	if g.NumCriteria() != 2 {
		return fmt.Errorf("%w: need 2 criteria, graph has %d", ErrMalformed, g.NumCriteria())
	}
	num := make(map[string]string, g.VertexCount())
	for i, id := range g.Vertices() {
		num[id] = strconv.Itoa(i + 1)
	}

	edges := g.Edges()
	m := len(edges)
	if !g.Directed() {
		m *= 2
	}
	dw, tw := bufio.NewWriter(dist), bufio.NewWriter(time)
	fmt.Fprintf(dw, "c distance graph\np sp %d %d\n", g.VertexCount(), m)
	fmt.Fprintf(tw, "c travel time graph\np sp %d %d\n", g.VertexCount(), m)
	for _, e := range edges {
		u, v := num[e.From], num[e.To]
		fmt.Fprintf(dw, "a %s %s %d\n", u, v, e.Cost[0])
		fmt.Fprintf(tw, "a %s %s %d\n", u, v, e.Cost[1])
		if !e.Directed {
			fmt.Fprintf(dw, "a %s %s %d\n", v, u, e.Cost[0])
			fmt.Fprintf(tw, "a %s %s %d\n", v, u, e.Cost[1])
		}
	}
	if err := dw.Flush(); err != nil {
		return err
	}

	return tw.Flush()
}
