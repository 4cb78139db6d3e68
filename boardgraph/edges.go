package boardgraph

// Edges returns every directed edge with its annotations, in node order
// then connection order.
// Complexity: O(N²).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.EdgeCount())
	for i, u := range g.nodes {
		for k, j := range u.connections {
			out = append(out, u.edge(i, j, k))
		}
	}
	return out
}

// UndirectedEdges returns one Edge per unordered pair, taken from the view of
// the lower-index endpoint (From < To). This is the weight a 2D/3D plot of
// the graph draws.
// Complexity: O(N²).
func (g *Graph) UndirectedEdges() []Edge {
	out := make([]Edge, 0, g.EdgeCount()/2)
	for i, u := range g.nodes {
		for k, j := range u.connections {
			if j > i {
				out = append(out, u.edge(i, j, k))
			}
		}
	}
	return out
}

// edge builds the Edge for connection k of node u (arena index i → j).
func (u *Node) edge(i, j, k int) Edge {
	return Edge{
		From:       i,
		To:         j,
		Distance:   u.distances[k],
		Entropy:    u.entropies[k],
		Normalized: u.normalized[k],
	}
}
