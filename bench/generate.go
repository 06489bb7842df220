package bench

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/namoa/builder"
	"github.com/katalvlaran/namoa/checker"
	"github.com/katalvlaran/namoa/core"
	"github.com/katalvlaran/namoa/criteria"
	"github.com/katalvlaran/namoa/gridgraph"
	"github.com/katalvlaran/namoa/heuristic"
	"github.com/katalvlaran/namoa/namoa"
	"github.com/katalvlaran/namoa/network"
)

// DefaultOffsets are the diagonal distances of query targets from the grid
// centre.
var DefaultOffsets = []int{0, 1, 2, 3, 4, 5, 10, 15, 20, 25, 30, 35, 40, 45, 50}

// GenerateSpec describes a synthetic grid benchmark.
type GenerateSpec struct {
	Dir       string          `validate:"required"`
	Grids     int             `validate:"min=1"`
	Dim       int             `validate:"min=2"`
	Criteria  int             `validate:"min=1,max=16"`
	Seed      int64           `validate:"-"`
	MaxWeight criteria.Weight `validate:"min=1"`

	// Offsets overrides DefaultOffsets; targets outside the grid are dropped.
	Offsets []int `validate:"dive,min=0"`
}

// Generate writes random grids, a queries file and reference solutions under
// spec.Dir, and returns a Config that benchmarks them:
//
//	grids/Grid<i>.txt  queries/queries<k>.txt  solutions/p<i>/<k>.txt
//
// Queries run from the centre cell (dim/2-1, dim/2-1) to the diagonal cells
// at each offset. Reference sets come from a plain label-setting search and
// must agree with a split search under the ideal heuristic.
func Generate(spec GenerateSpec) (Config, error) {
	if err := validate.Struct(spec); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	k := strconv.Itoa(spec.Criteria)
	for _, d := range []string{"grids", "queries", "solutions"} {
		if err := os.MkdirAll(filepath.Join(spec.Dir, d), 0o755); err != nil {
			return Config{}, fmt.Errorf("bench: generate: %w", err)
		}
	}

	queries := centreQueries(spec.Dim, spec.Offsets)
	cfg := DefaultConfig()
	cfg.RunName = "generated"
	cfg.Criteria = spec.Criteria
	if spec.Criteria != 2 {
		cfg.Engines = []string{heuristic.NameBlind, heuristic.NameIdeal}
	}
	cfg.Grid.Queries = filepath.Join(spec.Dir, "queries", "queries"+k+".txt")
	if err := writeFile(cfg.Grid.Queries, func(f *os.File) error {
		return checker.WriteQueries(f, "generated queries", spec.Criteria, queries)
	}); err != nil {
		return Config{}, err
	}

	for i := 0; i < spec.Grids; i++ {
		fns := make([]builder.WeightFn, spec.Criteria)
		for c := range fns {
			fns[c] = builder.UniformWeightFn(1, spec.MaxWeight)
		}
		g, err := builder.BuildGraph(spec.Criteria,
			[]core.GraphOption{core.WithDirected(true)},
			[]builder.BuilderOption{builder.WithSeed(spec.Seed + int64(i)), builder.WithWeightFns(fns...)},
			builder.Grid(spec.Dim, spec.Dim))
		if err != nil {
			return Config{}, err
		}

		gridPath := filepath.Join(spec.Dir, "grids", fmt.Sprintf("Grid%d.txt", i))
		if err = writeFile(gridPath, func(f *os.File) error {
			return gridgraph.Write(f, g, spec.Dim, gridgraph.BuilderCells)
		}); err != nil {
			return Config{}, err
		}

		sols, err := solveAll(g, queries)
		if err != nil {
			return Config{}, err
		}
		solPath := filepath.Join(spec.Dir, "solutions", fmt.Sprintf("p%d", i), k+".txt")
		if err = os.MkdirAll(filepath.Dir(solPath), 0o755); err != nil {
			return Config{}, fmt.Errorf("bench: generate: %w", err)
		}
		if err = writeFile(solPath, func(f *os.File) error {
			return checker.WriteSolutions(f, "generated solutions", spec.Criteria, sols)
		}); err != nil {
			return Config{}, err
		}

		cfg.Grid.Instances = append(cfg.Grid.Instances, gridPath)
		cfg.Grid.Solutions = append(cfg.Grid.Solutions, solPath)
	}

	return cfg, cfg.Validate()
}

func centreQueries(dim int, offsets []int) []checker.Query {
	if offsets == nil {
		offsets = DefaultOffsets
	}
	c := dim/2 - 1
	if c < 0 {
		c = 0
	}
	var out []checker.Query
	for _, off := range offsets {
		if c+off >= dim {
			continue
		}
		out = append(out, checker.Query{
			ID:     len(out),
			Source: checker.Cell{X: c, Y: c},
			Target: checker.Cell{X: c + off, Y: c + off},
		})
	}

	return out
}

// solveAll computes reference sets for qs on g and cross-checks each one
// against NAMOA*.
func solveAll(g *core.Graph, qs []checker.Query) (checker.Solutions, error) {
	net, err := network.Build(g)
	if err != nil {
		return nil, err
	}
	s, err := namoa.NewSplit(net, heuristic.NewIdeal())
	if err != nil {
		return nil, err
	}
	out := make(checker.Solutions, len(qs))
	for _, q := range qs {
		src, err := net.Index(builder.GridID(q.Source.X, q.Source.Y))
		if err != nil {
			return nil, err
		}
		dst, err := net.Index(builder.GridID(q.Target.X, q.Target.Y))
		if err != nil {
			return nil, err
		}
		if err = s.Init(src, dst); err != nil {
			return nil, err
		}
		if err = s.Run(src, dst); err != nil {
			return nil, err
		}
		ref := referenceFront(net, src, dst)
		if err = crossCheck(q.ID, ref, namoa.Costs(s.Solutions())); err != nil {
			return nil, err
		}
		out[q.ID] = ref
	}

	return out, nil
}

func writeFile(path string, fill func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bench: generate: %w", err)
	}
	if err = fill(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("bench: generate %s: %w", path, err)
	}

	return f.Close()
}
