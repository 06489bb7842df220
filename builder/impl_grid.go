// SPDX-License-Identifier: MIT
// Package: namoa/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Model:
//   • 2D orthogonal grid with 4-neighbourhood (right & bottom neighbour per cell).
//   • Vertex IDs use the fixed scheme "r,c" (row-major order), see GridID.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Each neighbour pair gets one cost vector drawn from cfg.cost().
//     In directed graphs the reverse arc carries the same cost.
//
// Complexity:
//   • Time: O(rows*cols*k).
//   • Space: O(1) extra.
//
// Determinism:
//   • Stable vertex order: row-major (r asc, then c asc).
//   • Stable edge order: for each (r,c) emit Right then Bottom if present.

package builder

import (
	"fmt"

	"github.com/katalvlaran/namoa/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early.
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		// 2) Vertices in row-major order.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := GridID(r, c)
				if err := g.AddVertex(id); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, id, err)
				}
			}
		}

		// 3) Right then Bottom neighbour of every cell.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := addSymmetric(g, u, GridID(r, c+1), cfg); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
				if r+1 < rows {
					if err := addSymmetric(g, u, GridID(r+1, c), cfg); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
			}
		}

		return nil
	}
}

// addSymmetric adds u–v with one drawn cost; directed graphs get both arcs.
func addSymmetric(g *core.Graph, u, v string, cfg builderConfig) error {
	w := cfg.cost()
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("AddEdge(%s→%s, w=%s): %w", u, v, w, err)
	}
	if g.Directed() {
		if _, err := g.AddEdge(v, u, w); err != nil {
			return fmt.Errorf("AddEdge(%s→%s, w=%s): %w", v, u, w, err)
		}
	}

	return nil
}
