// Command paretobench runs multi-objective shortest path benchmarks: grid
// correctness suites with reference solutions, DIMACS9 road-network timings,
// single ad-hoc queries, and generation of synthetic grid suites.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
