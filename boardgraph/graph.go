package boardgraph

import (
	"github.com/katalvlaran/arcgraph/board"
	"github.com/katalvlaran/arcgraph/stats"
)

// New validates values, then runs the five-phase pipeline exactly once:
// materialize → connect → distances → statistics → attach.
//
// Returns the board.ErrNonRectangular error for ragged input, or an error
// wrapping ErrConstructionInvariant if an integrity gate fails. In both
// cases the Graph is nil. An empty board yields an empty Graph and no error.
//
// Complexity: O(N²) time and memory for N = rows×cols.
func New(values [][]int, opts ...Option) (*Graph, error) {
	b, err := board.New(values)
	if err != nil {
		return nil, err
	}
	return build(b, newConfig(opts...))
}

// FromBoard runs the pipeline over an already validated board.
func FromBoard(b *board.Board, opts ...Option) (*Graph, error) {
	return build(b, newConfig(opts...))
}

func build(b *board.Board, cfg config) (*Graph, error) {
	g := &Graph{board: b, cfg: cfg}
	log := cfg.logger
	rows, cols := b.Shape()

	log.Tracef(vPhase, "boardgraph: %s %dx%d board", phaseMaterialize, rows, cols)
	g.materialize()

	log.Tracef(vPhase, "boardgraph: %s %d nodes", phaseConnect, len(g.nodes))
	g.connect()
	if err := g.checkConnections(); err != nil {
		log.Errorf("boardgraph: %v", err)
		return nil, err
	}

	log.Tracef(vPhase, "boardgraph: %s with %d worker(s)", phaseDistances, cfg.workers)
	if err := g.computeDistances(); err != nil {
		log.Errorf("boardgraph: %v", err)
		return nil, err
	}

	log.Tracef(vPhase, "boardgraph: %s", phaseStatistics)
	g.table = stats.Estimate(g.triples())
	log.Tracef(vDetail, "boardgraph: %d edges, %d distinct triples, entropy in [%g, %g]",
		g.table.Total(), g.table.Len(), g.table.MinEntropy(), g.table.MaxEntropy())

	log.Tracef(vPhase, "boardgraph: %s", phaseAttach)
	if err := g.attach(); err != nil {
		log.Errorf("boardgraph: %v", err)
		return nil, err
	}
	if err := g.checkAttachment(); err != nil {
		log.Errorf("boardgraph: %v", err)
		return nil, err
	}
	for _, n := range g.nodes {
		n.frozen = true
	}

	return g, nil
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Node returns the node at arena index i, or nil if i is out of range.
func (g *Graph) Node(i int) *Node {
	if i < 0 || i >= len(g.nodes) {
		return nil
	}
	return g.nodes[i]
}

// Nodes returns the arena in row-major scan order. The slice is a copy;
// the nodes are shared and must not be mutated.
func (g *Graph) Nodes() []*Node {
	return append([]*Node(nil), g.nodes...)
}

// EdgeCount returns the total number of directed connections.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, n := range g.nodes {
		total += n.Degree()
	}
	return total
}

// Board returns the validated input board.
func (g *Graph) Board() *board.Board { return g.board }

// Shape returns the input board's (rows, cols).
func (g *Graph) Shape() (rows, cols int) { return g.board.Shape() }

// NodeCoords returns each node's coordinates in arena order.
func (g *Graph) NodeCoords() [][]board.Coord {
	out := make([][]board.Coord, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = n.Coords()
	}
	return out
}

// Table returns the frozen statistics snapshot.
func (g *Graph) Table() *stats.Table { return g.table }

// Distribution returns a copy of the triple → probability map.
func (g *Graph) Distribution() map[stats.Triple]float64 { return g.table.Distribution() }

// Entropies returns a copy of the triple → entropy map.
func (g *Graph) Entropies() map[stats.Triple]float64 { return g.table.Entropies() }

// MinEntropy returns the smallest triple entropy, 0 for an edgeless graph.
func (g *Graph) MinEntropy() float64 { return g.table.MinEntropy() }

// MaxEntropy returns the largest triple entropy, 0 for an edgeless graph.
func (g *Graph) MaxEntropy() float64 { return g.table.MaxEntropy() }
