package boardgraph

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/arcgraph/board"
)

// unlabeled marks cells not covered by any node.
const unlabeled = -1

// Relabel returns a grid of the input shape where every cell of node i is
// stamped with perm[i], perm being a uniform random permutation of [0,N).
// The labels show the node partition, not the cell values.
//
// Source policy: rng if non-nil; otherwise the source set by WithRand or
// WithSeed; otherwise a fresh time-seeded source per call.
//
// Concurrency: Relabel(nil) is safe for concurrent use; draws from the
// configured default source are serialized by the Graph. A non-nil rng is
// used as is and must not be shared across goroutines.
// Complexity: O(N) time and memory.
func (g *Graph) Relabel(rng *rand.Rand) [][]int {
	var labels []int
	switch {
	case rng != nil:
		labels = permRange(len(g.nodes), rng)
	case g.cfg.rng != nil:
		g.rngMu.Lock()
		labels = permRange(len(g.nodes), g.cfg.rng)
		g.rngMu.Unlock()
	default:
		labels = permRange(len(g.nodes), rand.New(rand.NewSource(time.Now().UnixNano())))
	}

	rows, cols := g.board.Shape()
	out := board.Filled(rows, cols, unlabeled)
	for i, n := range g.nodes {
		for _, c := range n.coords {
			out[c.Row][c.Col] = labels[i]
		}
	}
	return out
}

// permRange returns a Fisher–Yates shuffled permutation of 0..n-1 drawn from r.
// Complexity: O(n) time and space.
func permRange(n int, r *rand.Rand) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
	return p
}
