package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/namoa/bench"
	"github.com/katalvlaran/namoa/core"
	"github.com/katalvlaran/namoa/dimacs"
	"github.com/katalvlaran/namoa/gridgraph"
	"github.com/katalvlaran/namoa/heuristic"
	"github.com/katalvlaran/namoa/namoa"
	"github.com/katalvlaran/namoa/network"
)

var errNoGraph = errors.New("paretobench: give either --grid or both --dist and --time")

type solveFlags struct {
	grid        string
	dist        string
	travel      string
	coords      string
	criteria    int
	oneWay      bool
	from, to    string
	engine      string
	variant     string
	consistency bool
}

func newSolveCmd(g *globalFlags) *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Print the Pareto set and paths of one query",
		Example: `  paretobench solve --grid Grid0.txt --from 0 --to 99
  paretobench solve --dist NY_dist.gr.gz --time NY_travel.gr.gz --from 1 --to 4242 -e bounded
  paretobench solve --dist NY_dist.gr.gz --time NY_travel.gr.gz --coordinates NY.co.gz --from 1 --to 4242`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}

			return f.run(cmd, cfg)
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&f.grid, "grid", "", "grid instance file")
	fs.StringVar(&f.dist, "dist", "", "DIMACS distance arc file")
	fs.StringVar(&f.travel, "time", "", "DIMACS travel-time arc file")
	fs.StringVar(&f.coords, "coordinates", "", "DIMACS .co file; paths are also printed as coordinates")
	fs.IntVarP(&f.criteria, "criteria", "k", 2, "criteria per grid edge")
	fs.BoolVar(&f.oneWay, "one-way", false, "grid lines are single directed arcs")
	fs.StringVar(&f.from, "from", "", "source vertex ID")
	fs.StringVar(&f.to, "to", "", "target vertex ID")
	fs.StringVarP(&f.engine, "engine", "e", heuristic.NameIdeal, "heuristic: blind, ideal, bounded")
	fs.StringVar(&f.variant, "variant", namoa.VariantSplit, "search variant: split, single, single-forward")
	fs.BoolVar(&f.consistency, "consistency-check", false, "verify the heuristic before searching")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func (f *solveFlags) run(cmd *cobra.Command, cfg bench.Config) error {
	logger := bench.NewLogger(cfg.Log, cmd.ErrOrStderr())

	g, err := f.loadGraph()
	if err != nil {
		return err
	}
	net, err := network.Build(g)
	if err != nil {
		return err
	}
	s, err := net.Index(f.from)
	if err != nil {
		return fmt.Errorf("--from %q: %w", f.from, err)
	}
	t, err := net.Index(f.to)
	if err != nil {
		return fmt.Errorf("--to %q: %w", f.to, err)
	}

	engine, err := heuristic.ByName(f.engine)
	if err != nil {
		return err
	}
	opts := []namoa.Option{namoa.WithLogger(logger)}
	if f.consistency || cfg.ConsistencyCheck {
		opts = append(opts, namoa.WithConsistencyCheck())
	}
	search, err := namoa.New(f.variant, net, engine, opts...)
	if err != nil {
		return err
	}
	if err = search.Init(s, t); err != nil {
		return err
	}
	if err = search.Run(s, t); err != nil {
		return err
	}

	coords, err := f.loadCoordinates()
	if err != nil {
		return err
	}

	return printSolutions(cmd.OutOrStdout(), net, search, coords)
}

// loadCoordinates maps vertex IDs to their .co record, or returns nil when
// no file was given.
func (f *solveFlags) loadCoordinates() (map[string]dimacs.Coord, error) {
	if f.coords == "" {
		return nil, nil
	}
	file, err := dimacs.Open(f.coords)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	cs, err := dimacs.ReadCoordinates(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.coords, err)
	}
	out := make(map[string]dimacs.Coord, len(cs))
	for _, c := range cs {
		out[strconv.Itoa(c.ID)] = c
	}

	return out, nil
}

func (f *solveFlags) loadGraph() (*core.Graph, error) {
	switch {
	case f.grid != "":
		file, err := dimacs.Open(f.grid)
		if err != nil {
			return nil, err
		}
		defer file.Close()

		var opts []gridgraph.Option
		if f.oneWay {
			opts = append(opts, gridgraph.WithOneWay())
		}
		grid, err := gridgraph.Read(file, f.criteria, opts...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.grid, err)
		}

		return grid.Graph, nil
	case f.dist != "" && f.travel != "":
		dist, err := dimacs.Open(f.dist)
		if err != nil {
			return nil, err
		}
		defer dist.Close()
		travel, err := dimacs.Open(f.travel)
		if err != nil {
			return nil, err
		}
		defer travel.Close()

		return dimacs.ReadPair(dist, travel)
	default:
		return nil, errNoGraph
	}
}

// printSolutions writes one line per efficient path. With coords, each path
// is followed by its vertices as "(x,y)" pairs; unknown IDs print as "?".
func printSolutions(w io.Writer, net *network.Network, search namoa.Searcher, coords map[string]dimacs.Coord) error {
	sols := search.Solutions()
	if _, err := fmt.Fprintf(w, "%d efficient paths, %d labels generated\n", len(sols), search.GeneratedLabels()); err != nil {
		return err
	}
	for _, l := range sols {
		ids := net.PathIDs(l)
		if _, err := fmt.Fprintf(w, "%s\t%s\n", l.Cost, strings.Join(ids, " -> ")); err != nil {
			return err
		}
		if coords == nil {
			continue
		}
		pts := make([]string, len(ids))
		for i, id := range ids {
			pts[i] = "?"
			if c, ok := coords[id]; ok {
				pts[i] = fmt.Sprintf("(%d,%d)", c.X, c.Y)
			}
		}
		if _, err := fmt.Fprintf(w, "\t%s\n", strings.Join(pts, " ")); err != nil {
			return err
		}
	}

	return nil
}
