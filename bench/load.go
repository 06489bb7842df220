package bench

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/namoa/checker"
	"github.com/katalvlaran/namoa/dimacs"
	"github.com/katalvlaran/namoa/gridgraph"
	"github.com/katalvlaran/namoa/network"
)

// LoadGridInstances reads every configured grid with the shared queries file
// and, when given, the matching solutions file.
func LoadGridInstances(cfg Config) ([]*Instance, error) {
	var queries []checker.Query
	if cfg.Grid.Queries != "" {
		var err error
		if queries, err = readWith(cfg.Grid.Queries, func(r io.Reader) ([]checker.Query, error) {
			return checker.ParseQueries(r, cfg.Criteria)
		}); err != nil {
			return nil, err
		}
	}

	out := make([]*Instance, 0, len(cfg.Grid.Instances))
	for i, path := range cfg.Grid.Instances {
		g, err := readWith(path, func(r io.Reader) (*gridgraph.Grid, error) {
			return gridgraph.Read(r, cfg.Criteria)
		})
		if err != nil {
			return nil, err
		}
		net, err := network.Build(g.Graph)
		if err != nil {
			return nil, fmt.Errorf("bench: %s: %w", path, err)
		}
		inst := &Instance{Name: filepath.Base(path), Net: net}
		if inst.Queries, err = gridQueries(g, net, queries); err != nil {
			return nil, fmt.Errorf("bench: %s: %w", path, err)
		}
		if len(cfg.Grid.Solutions) > 0 {
			sols, err := readWith(cfg.Grid.Solutions[i], func(r io.Reader) (checker.Solutions, error) {
				return checker.ParseSolutions(r, cfg.Criteria)
			})
			if err != nil {
				return nil, err
			}
			inst.Oracle = checker.NewOracle(sols)
		}
		out = append(out, inst)
	}

	return out, nil
}

// gridQueries maps cell coordinates to network indices.
func gridQueries(g *gridgraph.Grid, net *network.Network, qs []checker.Query) ([]Query, error) {
	out := make([]Query, 0, len(qs))
	for _, q := range qs {
		if !g.InBounds(q.Source.X, q.Source.Y) || !g.InBounds(q.Target.X, q.Target.Y) {
			return nil, fmt.Errorf("%w: query %d outside %dx%d grid", gridgraph.ErrOutOfGrid, q.ID, g.Dim, g.Dim)
		}
		s, err := net.Index(g.NodeID(q.Source.X, q.Source.Y))
		if err != nil {
			return nil, err
		}
		t, err := net.Index(g.NodeID(q.Target.X, q.Target.Y))
		if err != nil {
			return nil, err
		}
		out = append(out, Query{ID: q.ID, Source: s, Target: t})
	}

	return out, nil
}

// LoadDIMACSInstance reads the configured distance/time pair and its query
// list. DIMACS queries have no oracle; their IDs are positions in the file.
func LoadDIMACSInstance(cfg Config) (*Instance, error) {
	dist, err := dimacs.Open(cfg.DIMACS.Dist)
	if err != nil {
		return nil, fmt.Errorf("bench: %w", err)
	}
	defer dist.Close()
	tm, err := dimacs.Open(cfg.DIMACS.Time)
	if err != nil {
		return nil, fmt.Errorf("bench: %w", err)
	}
	defer tm.Close()

	g, err := dimacs.ReadPair(dist, tm)
	if err != nil {
		return nil, fmt.Errorf("bench: %s: %w", cfg.DIMACS.Dist, err)
	}
	net, err := network.Build(g)
	if err != nil {
		return nil, err
	}
	inst := &Instance{Name: filepath.Base(cfg.DIMACS.Dist), Net: net}
	if cfg.DIMACS.Queries == "" {
		return inst, nil
	}

	qs, err := readWith(cfg.DIMACS.Queries, func(r io.Reader) ([]dimacs.Query, error) {
		return dimacs.ReadQueries(r, cfg.QueryLimit)
	})
	if err != nil {
		return nil, err
	}
	for i, q := range qs {
		s, err := net.Index(strconv.Itoa(q.Source))
		if err != nil {
			return nil, fmt.Errorf("bench: query %d: %w", i, err)
		}
		t, err := net.Index(strconv.Itoa(q.Target))
		if err != nil {
			return nil, fmt.Errorf("bench: query %d: %w", i, err)
		}
		inst.Queries = append(inst.Queries, Query{ID: i, Source: s, Target: t})
	}

	return inst, nil
}

// readWith opens path (gzip-aware) and parses it with parse.
func readWith[T any](path string, parse func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := dimacs.Open(path)
	if err != nil {
		return zero, fmt.Errorf("bench: %w", err)
	}
	defer f.Close()

	v, err := parse(f)
	if err != nil {
		return zero, fmt.Errorf("bench: %s: %w", path, err)
	}

	return v, nil
}
