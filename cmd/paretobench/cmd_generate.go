package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/namoa/bench"
)

func newGenerateCmd() *cobra.Command {
	spec := bench.GenerateSpec{
		Grids:     1,
		Dim:       10,
		Criteria:  2,
		Seed:      1,
		MaxWeight: 10,
	}
	var configOut string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic grid suite with reference solutions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := bench.Generate(spec)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d grids of %dx%d to %s\n", spec.Grids, spec.Dim, spec.Dim, spec.Dir)
			if configOut == "" {
				return nil
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}

			return os.WriteFile(configOut, data, 0o644)
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&spec.Dir, "out", "o", "", "output directory")
	fs.IntVar(&spec.Grids, "grids", spec.Grids, "number of grid instances")
	fs.IntVar(&spec.Dim, "dim", spec.Dim, "grid side length")
	fs.IntVarP(&spec.Criteria, "criteria", "k", spec.Criteria, "criteria per edge")
	fs.Int64Var(&spec.Seed, "seed", spec.Seed, "random seed")
	fs.Int64Var(&spec.MaxWeight, "max-weight", spec.MaxWeight, "largest edge weight")
	fs.StringVar(&configOut, "write-config", "", "also write a YAML run config for the suite")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
