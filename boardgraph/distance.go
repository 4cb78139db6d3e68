package boardgraph

import (
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/arcgraph/board"
)

// computeDistances fills every node's distances, index-aligned with its
// connections. Centroids are computed once per node; each edge is then the
// L1 distance between the two centroids, rounded to the nearest integer
// (exact for single-cell nodes).
//
// With workers > 1 nodes are processed on a bounded errgroup. Every goroutine
// writes only its own node's slice, and Wait is the barrier before the
// statistics phase.
// Complexity: O(N²) time.
func (g *Graph) computeDistances() error {
	centers := make([]board.Point, len(g.nodes))
	for i, n := range g.nodes {
		p, err := n.Center()
		if err != nil {
			return invariantf(phaseDistances, "node %d %v: %v", i, n, err)
		}
		centers[i] = p
	}

	if g.cfg.workers <= 1 || len(g.nodes) < 2 {
		for i := range g.nodes {
			g.nodeDistances(i, centers)
		}
		return nil
	}

	var eg errgroup.Group
	eg.SetLimit(g.cfg.workers)
	for i := range g.nodes {
		eg.Go(func() error {
			g.nodeDistances(i, centers)
			return nil
		})
	}
	return eg.Wait()
}

// nodeDistances computes node i's distances from precomputed centers.
func (g *Graph) nodeDistances(i int, centers []board.Point) {
	u := g.nodes[i]
	u.distances = make([]int, len(u.connections))
	for k, j := range u.connections {
		u.distances[k] = int(math.Round(board.Manhattan(centers[i], centers[j])))
	}
}
