// Package namoa is an in-memory toolkit for multi-objective shortest path
// search: every arc carries a vector of non-negative integer costs and a
// query returns the full Pareto set of source→target path costs.
//
// What is inside?
//
//	criteria/  - cost vectors, dominance tests, non-dominated filtering
//	pqueue/    - addressable binary heap with decrease-key and removal
//	core/      - thread-safe multi-criteria graph (vertices, parallel arcs)
//	builder/   - deterministic grid, path and random sparse constructors
//	network/   - frozen search representation: labels, open/closed lists
//	heuristic/ - blind, ideal point and bounded ideal point estimates
//	namoa/     - NAMOA* in two shapes: split open/closed and single list
//	gridgraph/ - grid benchmark file reader and writer
//	dimacs/    - DIMACS9 road network reader (.gr, .co, gzip)
//	checker/   - reference queries and solutions, result comparison
//	bench/     - benchmark runner, config, metrics, reports
//
// Command cmd/paretobench drives the benchmarks from the shell:
//
//	paretobench generate --out suite --dim 20 --grids 3 --write-config run.yaml
//	paretobench grid --config run.yaml --engine all -v
//	paretobench dimacs --dist NY_dist.gr.gz --time NY_travel.gr.gz --queries NY_queries -n 50
//	paretobench solve --grid suite/grids/Grid0.txt --from 189 --to 399
//
// Quick ASCII example (minutes, toll):
//
//	    A──(4,0)──B
//	    │         │
//	  (2,9)     (1,0)
//	    │         │
//	    C──(1,0)──D
//
// A→D has two Pareto-optimal routes: A-B-D at (5, 0) and A-C-D at (3, 9).
//
//	go get github.com/katalvlaran/namoa
package namoa
