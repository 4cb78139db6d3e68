// SPDX-License-Identifier: MIT
// Package: arcgraph/stats
//
// entropy.go: distribution estimation, entropy scoring and normalization.
//
// Contract:
//   • Estimate never mutates its input and never fails.
//   • Zero triples ⇒ empty table, MinEntropy = MaxEntropy = 0.
//   • Σ Probability = 1 for any non-empty table (up to float rounding).
//   • MinEntropy ≤ Entropy(t) ≤ MaxEntropy for every counted t.

package stats

import (
	"math"

	"github.com/emirpasic/gods/trees/redblacktree"
)

// EntropyOf returns the entropy contribution -p·log2(p) of probability p.
// Non-positive p contributes nothing.
func EntropyOf(p float64) float64 {
	if p <= 0 {
		return 0
	}
	return -p * math.Log2(p)
}

// Estimate counts triples, converts counts to probabilities and scores each
// distinct triple with EntropyOf.
// Complexity: O(E + K·log K) time, O(K) space.
func Estimate(triples []Triple) *Table {
	t := &Table{
		total:     len(triples),
		counts:    make(map[Triple]int),
		probs:     make(map[Triple]float64),
		entropies: make(map[Triple]float64),
		order:     redblacktree.NewWith(TripleComparator),
	}
	if t.total == 0 {
		return t
	}

	// Stage 1: count every directed occurrence.
	for _, tr := range triples {
		t.counts[tr]++
	}

	// Stage 2: probabilities and entropies per distinct triple.
	total := float64(t.total)
	first := true
	for tr, n := range t.counts {
		p := float64(n) / total
		e := EntropyOf(p)
		t.probs[tr] = p
		t.entropies[tr] = e
		t.order.Put(tr, n)

		if first {
			t.min, t.max = e, e
			first = false
			continue
		}
		if e < t.min {
			t.min = e
		}
		if e > t.max {
			t.max = e
		}
	}

	return t
}

// TripleComparator orders triples by Source, then Target, then Distance.
// It follows the gods utils.Comparator contract.
func TripleComparator(a, b interface{}) int {
	x, y := a.(Triple), b.(Triple)
	switch {
	case x.Source != y.Source:
		return compareInt(x.Source, y.Source)
	case x.Target != y.Target:
		return compareInt(x.Target, y.Target)
	default:
		return compareInt(x.Distance, y.Distance)
	}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Normalize maps entropy e into [0,1] relative to the table's range:
// 1 - (e-min)/(max-min). A degenerate table yields fallback.
func (t *Table) Normalize(e, fallback float64) float64 {
	if t.Degenerate() {
		return fallback
	}
	return 1 - (e-t.min)/(t.max-t.min)
}

// Degenerate reports whether MaxEntropy == MinEntropy, which includes the
// empty table and any table with a single distinct triple.
func (t *Table) Degenerate() bool {
	return t.max == t.min
}
