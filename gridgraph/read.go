// SPDX-License-Identifier: MIT
// File: read.go
// Role: grid benchmark file reader.

package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/namoa/core"
	"github.com/katalvlaran/namoa/criteria"
)

// Read parses a grid file with k criteria per arc into a directed multigraph.
//
// Steps:
//  1. Header: node and edge counts; the node count fixes dim.
//  2. Insert vertices 0..n-1 in order.
//  3. Each arc line adds (x1,y1)->(x2,y2) and, unless WithOneWay, the reverse.
//
// Errors carry the offending line number and wrap ErrMalformed, ErrNotSquare,
// ErrOutOfGrid or the core error returned by AddEdge.
// Complexity: O(n + m·k).
func Read(r io.Reader, k int, opts ...Option) (*Grid, error) {
	if k < 1 {
		return nil, ErrBadCriteria
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	line := 0

	// 1) header
	var nodes, edges int
	header := false
	for sc.Scan() {
		line++
		f := fields(sc.Text())
		if f == nil {
			continue
		}
		if len(f) != 2 {
			return nil, fmt.Errorf("%w: line %d: header needs 2 fields, got %d", ErrMalformed, line, len(f))
		}
		var err error
		if nodes, err = strconv.Atoi(f[0]); err != nil {
			return nil, fmt.Errorf("%w: line %d: nodes: %v", ErrMalformed, line, err)
		}
		if edges, err = strconv.Atoi(f[1]); err != nil || edges < 0 {
			return nil, fmt.Errorf("%w: line %d: edges: %q", ErrMalformed, line, f[1])
		}
		header = true
		break
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read header: %w", err)
	}
	if !header {
		return nil, fmt.Errorf("%w: no header line", ErrMalformed)
	}
	if nodes > MaxNodes {
		return nil, fmt.Errorf("%w: header declares %d nodes (max %d)", ErrMalformed, nodes, MaxNodes)
	}
	dim, err := Dim(nodes)
	if err != nil {
		return nil, fmt.Errorf("%w: %d nodes", err, nodes)
	}

	// 2) vertices in index order
	g := &Grid{Graph: core.NewGraph(k, core.WithDirected(true), core.WithMultiEdges(), core.WithLoops()), Dim: dim}
	for i := 0; i < nodes; i++ {
		if err = g.Graph.AddVertex(strconv.Itoa(i)); err != nil {
			return nil, err
		}
	}

	// 3) arcs
	arcs := 0
	for sc.Scan() {
		line++
		f := fields(sc.Text())
		if f == nil {
			continue
		}
		if f[0] != "a" || len(f) != 5+k {
			return nil, fmt.Errorf("%w: line %d: want \"a x1 y1 x2 y2\" plus %d costs", ErrMalformed, line, k)
		}
		nums, err := atois(f[1:])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, line, err)
		}
		x1, y1, x2, y2 := int(nums[0]), int(nums[1]), int(nums[2]), int(nums[3])
		if !g.InBounds(x1, y1) || !g.InBounds(x2, y2) {
			return nil, fmt.Errorf("%w: line %d: (%d,%d)->(%d,%d) dim=%d", ErrOutOfGrid, line, x1, y1, x2, y2, dim)
		}
		cost := criteria.Vector(nums[4:])
		u, v := g.NodeID(x1, y1), g.NodeID(x2, y2)
		if _, err = g.Graph.AddEdge(u, v, cost); err != nil {
			return nil, fmt.Errorf("gridgraph: line %d: %w", line, err)
		}
		if !o.OneWay {
			if _, err = g.Graph.AddEdge(v, u, cost); err != nil {
				return nil, fmt.Errorf("gridgraph: line %d: %w", line, err)
			}
		}
		arcs++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: line %d: %w", line, err)
	}
	if o.StrictCount && arcs != edges {
		return nil, fmt.Errorf("%w: header declares %d arcs, found %d", ErrMalformed, edges, arcs)
	}

	return g, nil
}

// fields splits a line, returning nil for blank and comment lines.
func fields(s string) []string {
	f := strings.Fields(s)
	if len(f) == 0 || strings.HasPrefix(f[0], "c") {
		return nil
	}

	return f
}

func atois(fs []string) ([]criteria.Weight, error) {
	out := make([]criteria.Weight, len(fs))
	for i, s := range fs {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}

	return out, nil
}
