package boardgraph

import (
	"github.com/katalvlaran/arcgraph/board"
)

// materialize creates one single-cell Node per board cell in row-major order.
// Complexity: O(N).
func (g *Graph) materialize() {
	g.nodes = make([]*Node, 0, g.board.Len())
	g.board.Cells(func(c board.Coord, v int) bool {
		g.nodes = append(g.nodes, NewNode(v, c))
		return true
	})
}

// connect links every unordered pair {i,j}, i<j, in both directions.
// Each node ends up with connections in ascending arena order.
// Complexity: O(N²).
func (g *Graph) connect() {
	n := len(g.nodes)
	for _, u := range g.nodes {
		u.connections = make([]int, 0, n-1)
	}
	for i := 0; i < n; i++ {
		u := g.nodes[i]
		for j := i + 1; j < n; j++ {
			v := g.nodes[j]
			u.AddConnection(j, v)
			v.AddConnection(i, u)
		}
	}
}

// checkConnections enforces Σ degree == N·(N−1).
func (g *Graph) checkConnections() error {
	n := len(g.nodes)
	have, want := g.EdgeCount(), n*(n-1)
	if have != want {
		return invariantf(phaseConnect, "have %d directed connections, want %d for %d nodes", have, want, n)
	}
	return nil
}
