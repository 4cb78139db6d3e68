package boardgraph

import (
	"github.com/katalvlaran/arcgraph/stats"
)

// triples collects one Triple per directed edge, node order then connection
// order. Edges are directed: (a,b,d) and (b,a,d) are both counted.
// Complexity: O(N²).
func (g *Graph) triples() []stats.Triple {
	out := make([]stats.Triple, 0, g.EdgeCount())
	for _, u := range g.nodes {
		for k, j := range u.connections {
			out = append(out, stats.Triple{
				Source:   u.value,
				Target:   g.nodes[j].value,
				Distance: u.distances[k],
			})
		}
	}
	return out
}

// attach looks up each edge's entropy in the frozen table and appends it,
// together with its normalized value, to the source node.
// A triple missing from the table means the statistics snapshot does not
// describe this graph.
func (g *Graph) attach() error {
	for i, u := range g.nodes {
		u.entropies = make([]float64, 0, len(u.connections))
		u.normalized = make([]float64, 0, len(u.connections))
		for k, j := range u.connections {
			tr := stats.Triple{Source: u.value, Target: g.nodes[j].value, Distance: u.distances[k]}
			e, ok := g.table.Entropy(tr)
			if !ok {
				return invariantf(phaseAttach, "node %d edge to %d: triple %v not in distribution", i, j, tr)
			}
			u.entropies = append(u.entropies, e)
			u.normalized = append(u.normalized, g.table.Normalize(e, g.cfg.fallback))
		}
	}
	return nil
}

// checkAttachment enforces that every per-edge annotation is aligned with
// the node's connections.
func (g *Graph) checkAttachment() error {
	for i, u := range g.nodes {
		d := len(u.connections)
		if len(u.distances) != d || len(u.entropies) != d || len(u.normalized) != d {
			return invariantf(phaseAttach,
				"node %d: %d connections, %d distances, %d entropies, %d normalized",
				i, d, len(u.distances), len(u.entropies), len(u.normalized))
		}
	}
	return nil
}
