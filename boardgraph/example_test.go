package boardgraph_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/arcgraph/boardgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: New
////////////////////////////////////////////////////////////////////////////////

// ExampleNew builds the graph of a 1×3 strip of one colour.
// Scenario:
//
//   - 3 nodes, 6 directed edges.
//   - Neighbouring cells form triple (3,3,1), seen 4 times (p=2/3).
//   - The two ends form triple (3,3,2), seen twice (p=1/3).
//   - -p·log2(p) is lower for p=2/3, so the neighbour edges normalize to 1.
func ExampleNew() {
	g, err := boardgraph.New([][]int{{3, 3, 3}})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("nodes:", g.Len(), "edges:", g.EdgeCount())
	for _, e := range g.UndirectedEdges() {
		fmt.Printf("%d-%d d=%d entropy=%.3f weight=%.2f\n", e.From, e.To, e.Distance, e.Entropy, e.Normalized)
	}
	// Output:
	// nodes: 3 edges: 6
	// 0-1 d=1 entropy=0.390 weight=1.00
	// 0-2 d=2 entropy=0.528 weight=0.00
	// 1-2 d=1 entropy=0.390 weight=1.00
}

////////////////////////////////////////////////////////////////////////////////
// Example: Graph.Table
////////////////////////////////////////////////////////////////////////////////

// ExampleGraph_Table lists the distribution of a 2×2 board in key order.
// Every triple occurs twice out of twelve edges, so the range is degenerate
// and every edge takes the fallback weight.
func ExampleGraph_Table() {
	g, _ := boardgraph.New([][]int{{1, 1}, {2, 2}})

	tab := g.Table()
	for _, tr := range tab.Triples() {
		p, _ := tab.Probability(tr)
		fmt.Printf("%v p=%.3f\n", tr, p)
	}
	fmt.Println("degenerate:", tab.Degenerate())
	// Output:
	// (1,1,1) p=0.167
	// (1,2,1) p=0.167
	// (1,2,2) p=0.167
	// (2,1,1) p=0.167
	// (2,1,2) p=0.167
	// (2,2,1) p=0.167
	// degenerate: true
}

////////////////////////////////////////////////////////////////////////////////
// Example: Graph.Relabel
////////////////////////////////////////////////////////////////////////////////

// ExampleGraph_Relabel stamps each node's cells with a shuffled label.
// Labels depend on the random source; the partition does not.
func ExampleGraph_Relabel() {
	g, _ := boardgraph.New([][]int{{0, 1}, {2, 3}})

	out := g.Relabel(rand.New(rand.NewSource(42)))
	distinct := map[int]bool{}
	for _, row := range out {
		for _, v := range row {
			distinct[v] = true
		}
	}
	fmt.Printf("shape=%dx%d labels=%d\n", len(out), len(out[0]), len(distinct))
	// Output:
	// shape=2x2 labels=4
}
