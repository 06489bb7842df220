// Package dimacs reads 9th DIMACS Implementation Challenge road networks as
// bi-criteria graphs.
//
// A DIMACS9 map ships one arc file per metric with identical topology:
//
//	c comment
//	p sp <nodes> <arcs>
//	a <u> <v> <w>
//
// ReadPair zips the distance file and the travel-time file into one directed
// graph whose edges cost (distance, time). Node IDs are the 1-based DIMACS
// numbers rendered in decimal, inserted in numeric order. When an arc (u,v)
// repeats inside one file, its first occurrence wins.
//
// Open decompresses files ending in ".gz" on the fly.
package dimacs
