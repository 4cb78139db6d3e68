// Package arcgraph turns ARC puzzle boards into complete, entropy-weighted
// graphs, exposing which (colour, colour, distance) relations are expected
// and which are surprising.
//
// 🚀 What is arcgraph?
//
//	A small, deterministic, pure-Go core that brings together:
//		• Boards: validated rectangular grids, cell geometry, the ARC palette
//		• Statistics: triple frequencies, -p·log2(p) entropies, normalization
//		• Graphs: the complete directed graph over a board's cells, every edge
//		  annotated with distance, entropy and a [0,1] weight
//
// Under the hood, everything is organized under three subpackages:
//
//	board/     : Board, Coord/Point, Centroid, Manhattan, Palette
//	stats/     : Triple, Estimate, Table (distribution, entropies, Normalize)
//	boardgraph/: Node arena, five-phase pipeline, Edges, Relabel
//
// Quick ASCII example:
//
//	1 1        (0,0)─(0,1)
//	2 2   →      │ ╳ │       12 directed edges, 6 triples
//	           (1,0)─(1,1)
//
// Loading datasets and drawing graphs are left to callers.
//
//	go get github.com/katalvlaran/arcgraph
package arcgraph
