// SPDX-License-Identifier: MIT
// File: read.go
// Role: DIMACS9 arc, coordinate and query readers.

package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/namoa/core"
	"github.com/katalvlaran/namoa/criteria"
)

// ReadPair merges a distance and a travel-time arc file into a directed
// two-criteria graph.
//
// Steps:
//  1. Parse both files; duplicate arcs keep their first weight.
//  2. Insert vertices 1..n in order.
//  3. For every distance arc, in file order, add an edge costing
//     (distance, time).
//
// Complexity: O(n + m).
func ReadPair(dist, time io.Reader) (*core.Graph, error) {
	n, distArcs, err := readArcs(dist)
	if err != nil {
		return nil, fmt.Errorf("dimacs: distance file: %w", err)
	}
	tn, timeArcs, err := readArcs(time)
	if err != nil {
		return nil, fmt.Errorf("dimacs: travel-time file: %w", err)
	}
	if tn != n {
		return nil, fmt.Errorf("%w: node counts differ (%d vs %d)", ErrMalformed, n, tn)
	}

	times := make(map[[2]int]int64, len(timeArcs))
	for _, a := range timeArcs {
		times[[2]int{a.u, a.v}] = a.w
	}

	g := core.NewGraph(2, core.WithDirected(true), core.WithLoops())
	for i := 1; i <= n; i++ {
		if err = g.AddVertex(strconv.Itoa(i)); err != nil {
			return nil, err
		}
	}
	for _, a := range distArcs {
		t, ok := times[[2]int{a.u, a.v}]
		if !ok {
			return nil, fmt.Errorf("%w: %d->%d", ErrMissingArc, a.u, a.v)
		}
		if _, err = g.AddEdge(strconv.Itoa(a.u), strconv.Itoa(a.v), criteria.Of(a.w, t)); err != nil {
			return nil, fmt.Errorf("dimacs: arc %d->%d: %w", a.u, a.v, err)
		}
	}

	return g, nil
}

// readArcs parses one ".gr" file, dropping repeated (u,v) pairs.
func readArcs(r io.Reader) (int, []arc, error) {
	sc := newScanner(r)
	n, line := -1, 0
	var arcs []arc
	seen := make(map[[2]int]bool)
	for sc.Scan() {
		line++
		f := strings.Fields(sc.Text())
		if len(f) == 0 || f[0] == "c" {
			continue
		}
		switch f[0] {
		case "p":
			if len(f) != 4 || f[1] != "sp" {
				return 0, nil, fmt.Errorf("%w: line %d: want \"p sp <n> <m>\"", ErrMalformed, line)
			}
			v, err := strconv.Atoi(f[2])
			if err != nil || v < 0 || v > MaxNodes {
				return 0, nil, fmt.Errorf("%w: line %d: node count %q (max %d)", ErrMalformed, line, f[2], MaxNodes)
			}
			m, err := strconv.Atoi(f[3])
			if err != nil || m < 0 {
				return 0, nil, fmt.Errorf("%w: line %d: arc count %q", ErrMalformed, line, f[3])
			}
			n = v
			arcs = make([]arc, 0, min(m, maxPrealloc))
		case "a":
			if n < 0 {
				return 0, nil, fmt.Errorf("%w: line %d: arc before problem line", ErrMalformed, line)
			}
			a, err := parseArc(f)
			if err != nil {
				return 0, nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, line, err)
			}
			if a.u < 1 || a.u > n || a.v < 1 || a.v > n {
				return 0, nil, fmt.Errorf("%w: line %d: %d->%d with n=%d", ErrNodeOutOfRange, line, a.u, a.v, n)
			}
			key := [2]int{a.u, a.v}
			if seen[key] {
				continue
			}
			seen[key] = true
			arcs = append(arcs, a)
		default:
			return 0, nil, fmt.Errorf("%w: line %d: unknown record %q", ErrMalformed, line, f[0])
		}
	}
	if err := sc.Err(); err != nil {
		return 0, nil, err
	}
	if n < 0 {
		return 0, nil, fmt.Errorf("%w: no problem line", ErrMalformed)
	}

	return n, arcs, nil
}

func parseArc(f []string) (arc, error) {
	if len(f) != 4 {
		return arc{}, fmt.Errorf("arc needs 3 fields, got %d", len(f)-1)
	}
	u, err := strconv.Atoi(f[1])
	if err != nil {
		return arc{}, err
	}
	v, err := strconv.Atoi(f[2])
	if err != nil {
		return arc{}, err
	}
	w, err := strconv.ParseInt(f[3], 10, 64)
	if err != nil {
		return arc{}, err
	}

	return arc{u: u, v: v, w: w}, nil
}

// ReadCoordinates parses a ".co" file ("v <id> <x> <y>" records).
func ReadCoordinates(r io.Reader) ([]Coord, error) {
	sc := newScanner(r)
	var out []Coord
	line := 0
	for sc.Scan() {
		line++
		f := strings.Fields(sc.Text())
		if len(f) == 0 || f[0] == "c" || f[0] == "p" {
			continue
		}
		if f[0] != "v" || len(f) != 4 {
			return nil, fmt.Errorf("%w: line %d: want \"v <id> <x> <y>\"", ErrMalformed, line)
		}
		id, err := strconv.Atoi(f[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, line, err)
		}
		x, err := strconv.ParseInt(f[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, line, err)
		}
		y, err := strconv.ParseInt(f[3], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, line, err)
		}
		out = append(out, Coord{ID: id, X: x, Y: y})
	}

	return out, sc.Err()
}

// ReadQueries parses "u v" lines, stopping after limit queries (0 = all).
func ReadQueries(r io.Reader, limit int) ([]Query, error) {
	sc := newScanner(r)
	var out []Query
	line := 0
	for (limit == 0 || len(out) < limit) && sc.Scan() {
		line++
		f := strings.Fields(sc.Text())
		if len(f) == 0 {
			continue
		}
		if len(f) < 2 {
			return nil, fmt.Errorf("%w: line %d: want \"<source> <target>\"", ErrMalformed, line)
		}
		s, err := strconv.Atoi(f[0])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, line, err)
		}
		t, err := strconv.Atoi(f[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, line, err)
		}
		out = append(out, Query{Source: s, Target: t})
	}

	return out, sc.Err()
}

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	return sc
}
