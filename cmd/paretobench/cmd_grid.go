package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/namoa/bench"
)

func newGridCmd(g *globalFlags) *cobra.Command {
	rf := &runFlags{}
	var instances, solutions []string
	var queries string

	cmd := &cobra.Command{
		Use:   "grid [grid files...]",
		Short: "Check grid benchmark instances against reference solutions",
		Long: `Runs every query of a grid queries file on each grid instance with the
selected heuristics and compares the Pareto sets with the reference solutions
("OK", "Warning!" for a different order, "Different!!!" for a wrong set).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			rf.apply(cmd, &cfg)
			if len(args) > 0 {
				cfg.Grid.Instances = args
			}
			if cmd.Flags().Changed("instances") {
				cfg.Grid.Instances = instances
			}
			if cmd.Flags().Changed("queries") {
				cfg.Grid.Queries = queries
			}
			if cmd.Flags().Changed("solutions") {
				cfg.Grid.Solutions = solutions
			}
			if err = cfg.Validate(); err != nil {
				return err
			}

			insts, err := bench.LoadGridInstances(cfg)
			if err != nil {
				return err
			}

			return execute(cmd.Context(), cmd, cfg, insts, rf.verbose)
		},
	}
	rf.bind(cmd)
	cmd.Flags().StringSliceVar(&instances, "instances", nil, "grid files (also accepted as arguments)")
	cmd.Flags().StringVarP(&queries, "queries", "q", "", "queries file")
	cmd.Flags().StringSliceVarP(&solutions, "solutions", "s", nil, "solutions files, one per instance")

	return cmd
}
