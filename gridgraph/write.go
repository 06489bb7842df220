package gridgraph

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/namoa/builder"
	"github.com/katalvlaran/namoa/core"
)

// LocateFn maps a vertex ID to its grid cell.
type LocateFn func(id string) (x, y int, err error)

// BuilderCells locates vertices named by builder.GridID.
func BuilderCells(id string) (int, int, error) { return builder.ParseGridID(id) }

// Write emits g as a grid file of side dim. Each unordered vertex pair is
// written once, with the cost of its first edge in insertion order; Read
// restores both directions. Vertices that locate outside the grid yield
// ErrOutOfGrid.
// Complexity: O(m·k).
func Write(w io.Writer, g *core.Graph, dim int, locate LocateFn) error {
	type cell struct{ x, y int }
	cells := make(map[string]cell, g.VertexCount())
	for _, id := range g.Vertices() {
		x, y, err := locate(id)
		if err != nil {
			return fmt.Errorf("gridgraph: locate %q: %w", id, err)
		}
		if x < 0 || x >= dim || y < 0 || y >= dim {
			return fmt.Errorf("%w: %q at (%d,%d) dim=%d", ErrOutOfGrid, id, x, y, dim)
		}
		cells[id] = cell{x, y}
	}

	seen := make(map[[2]string]bool)
	var lines []string
	for _, e := range g.Edges() {
		key := [2]string{e.From, e.To}
		if key[1] < key[0] {
			key[0], key[1] = key[1], key[0]
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		a, b := cells[e.From], cells[e.To]
		lines = append(lines, fmt.Sprintf("a %d %d %d %d %s", a.x, a.y, b.x, b.y, e.Cost.Join(" ")))
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", dim*dim, len(lines))
	for _, l := range lines {
		fmt.Fprintln(bw, l)
	}

	return bw.Flush()
}
