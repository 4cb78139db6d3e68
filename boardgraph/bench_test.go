package boardgraph_test

import (
	"testing"

	"github.com/katalvlaran/arcgraph/boardgraph"
)

// BenchmarkNew measures the full pipeline on a 30×30 board (the largest ARC
// board), 900 nodes and 809,100 directed edges.
// Complexity: O(N²)
func BenchmarkNew(b *testing.B) {
	grid := randomGrid(30, 30, 10, 42)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := boardgraph.New(grid); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}

// BenchmarkNew_Workers runs the same board with a parallel distance phase.
func BenchmarkNew_Workers(b *testing.B) {
	grid := randomGrid(30, 30, 10, 42)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := boardgraph.New(grid, boardgraph.WithWorkers(8)); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}
