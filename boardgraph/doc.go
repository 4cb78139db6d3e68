// Package boardgraph builds the complete directed graph over the cells of an
// ARC puzzle board and scores every edge with an entropy weight.
//
// 🚀 What does it compute?
//
//	Each cell becomes a Node. Every ordered pair of distinct nodes is linked,
//	each link is measured with the Manhattan distance between node centroids,
//	and each directed edge is bucketed by its (source value, target value,
//	distance) triple. The empirical frequency p of a triple over the whole
//	graph gives its entropy -p·log2(p), which is rescaled into [0,1] and
//	attached back onto the edge:
//	  • common triples (low entropy)  → normalized weight near 1
//	  • rare, surprising triples      → normalized weight near 0
//
// ⚙️ Pipeline (runs once, inside New):
//
//  1. materialize: row-major scan, one Node per cell
//  2. connect    : complete graph; gate: Σ degree == N·(N−1)
//  3. distances  : centroid L1 distance per edge (optionally parallel)
//  4. statistics : stats.Estimate over all directed edge triples
//  5. attach     : entropy + normalized entropy per edge; gate: aligned lengths
//
// A failed gate is a logic defect, not bad input: New returns nil and an
// error wrapping ErrConstructionInvariant. An empty board yields an empty,
// valid Graph.
//
// Storage:
//
//	Nodes live in a single arena owned by the Graph; connections are arena
//	indices, so mutual links never form pointer cycles. Node identity is
//	structural over (value, coords), which is what makes AddConnection
//	idempotent.
//
// Usage:
//
//	g, err := boardgraph.New([][]int{{1, 1}, {2, 2}}, boardgraph.WithSeed(7))
//	if err != nil {
//	  // ragged board or invariant violation
//	}
//	for _, e := range g.Edges() {
//	  fmt.Println(e.From, e.To, e.Distance, e.Normalized)
//	}
//
// Complexity:
//
//   - Time:   O(N²) for N cells (complete graph), inherent to the model.
//   - Memory: O(N²) edge annotations.
package boardgraph
