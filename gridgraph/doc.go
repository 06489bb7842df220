// Package gridgraph reads and writes square-grid benchmark instances for
// multi-criteria path search.
//
// File layout (whitespace separated, one record per line):
//
//	<numNodes> <numEdges>
//	a <x1> <y1> <x2> <y2> <c1> ... <ck>
//	...
//
// numNodes must be a perfect square dim². Cell (x,y) becomes vertex
// x*dim+y, rendered in decimal, and vertices are inserted in id order so a
// network built from the graph uses the same indices. Each arc line yields two
// directed edges, one per direction, carrying the same cost vector. Parallel
// lines produce parallel edges.
//
// Blank lines and lines starting with 'c' are ignored.
package gridgraph
