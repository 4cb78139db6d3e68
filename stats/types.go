// SPDX-License-Identifier: MIT
// Package: arcgraph/stats
//
// types.go: Triple key and the frozen Table snapshot.

package stats

import (
	"fmt"

	"github.com/emirpasic/gods/trees/redblacktree"
)

// Triple buckets a directed edge by its endpoint values and distance.
// (a,b,d) and (b,a,d) are distinct keys unless a == b.
type Triple struct {
	Source   int // value of the edge's source node
	Target   int // value of the edge's target node
	Distance int // distance between the two node centroids
}

// String renders the triple as "(source,target,distance)".
func (t Triple) String() string {
	return fmt.Sprintf("(%d,%d,%d)", t.Source, t.Target, t.Distance)
}

// Table is an immutable snapshot of triple frequencies and entropies.
// Build it with Estimate; the zero value is an empty table.
type Table struct {
	total     int                // number of triples counted (directed edges)
	counts    map[Triple]int     // triple → occurrences
	probs     map[Triple]float64 // triple → count/total
	entropies map[Triple]float64 // triple → -p·log2(p)
	min, max  float64            // over entropies; 0 when empty

	// ordered index over distinct triples, keyed by TripleComparator
	order *redblacktree.Tree
}
