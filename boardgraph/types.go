package boardgraph

import (
	"sync"

	"github.com/katalvlaran/arcgraph/board"
	"github.com/katalvlaran/arcgraph/stats"
)

// Node is one graph vertex: a cell value and the cell coordinates it covers.
//
// Connections are indices into the owning Graph's node arena. Distances,
// entropies and normalized entropies are index-aligned with Connections once
// the pipeline has run. Nodes owned by a Graph must not be mutated.
type Node struct {
	value  int
	coords []board.Coord
	key    string // structural identity over (value, coords)

	connections []int               // arena indices, no self-loop, no duplicates
	linked      map[string]struct{} // keys of connected nodes, for idempotence
	distances   []int
	entropies   []float64
	normalized  []float64
	frozen      bool // set once the owning Graph is built
}

// Edge is one annotated connection, as exported for analysis and rendering.
type Edge struct {
	From       int     // source node index
	To         int     // target node index
	Distance   int     // Manhattan distance between centroids
	Entropy    float64 // -p·log2(p) of the edge's triple
	Normalized float64 // entropy rescaled into [0,1]
}

// Graph is the complete, entropy-annotated graph over one board.
// It is immutable once New returns.
type Graph struct {
	board *board.Board
	nodes []*Node      // arena, row-major scan order
	table *stats.Table // frozen statistics snapshot
	cfg   config

	rngMu sync.Mutex // guards cfg.rng, shared by Relabel(nil) callers
}
