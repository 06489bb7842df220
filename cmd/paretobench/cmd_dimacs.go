package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/namoa/bench"
)

func newDIMACSCmd(g *globalFlags) *cobra.Command {
	rf := &runFlags{}
	var dist, travel, queries string

	cmd := &cobra.Command{
		Use:   "dimacs",
		Short: "Time bi-criteria queries on a DIMACS9 road network",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			rf.apply(cmd, &cfg)
			if dist != "" {
				cfg.DIMACS.Dist = dist
			}
			if travel != "" {
				cfg.DIMACS.Time = travel
			}
			if queries != "" {
				cfg.DIMACS.Queries = queries
			}
			cfg.Criteria = 2
			if err = cfg.Validate(); err != nil {
				return err
			}

			inst, err := bench.LoadDIMACSInstance(cfg)
			if err != nil {
				return err
			}

			return execute(cmd.Context(), cmd, cfg, []*bench.Instance{inst}, rf.verbose)
		},
	}
	rf.bind(cmd)
	cmd.Flags().StringVar(&dist, "dist", "", "distance arc file (.gr or .gr.gz)")
	cmd.Flags().StringVar(&travel, "time", "", "travel-time arc file (.gr or .gr.gz)")
	cmd.Flags().StringVarP(&queries, "queries", "q", "", "query file of \"source target\" lines")

	return cmd
}
