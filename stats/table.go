// SPDX-License-Identifier: MIT
// Package: arcgraph/stats
//
// table.go: read-only accessors. Maps are copied so a Table stays frozen.

package stats

// Total returns the number of triples counted.
func (t *Table) Total() int { return t.total }

// Len returns the number of distinct triples.
func (t *Table) Len() int { return len(t.counts) }

// MinEntropy returns the smallest entropy over distinct triples, 0 if empty.
func (t *Table) MinEntropy() float64 { return t.min }

// MaxEntropy returns the largest entropy over distinct triples, 0 if empty.
func (t *Table) MaxEntropy() float64 { return t.max }

// Count returns how many times tr was counted.
func (t *Table) Count(tr Triple) (int, bool) {
	n, ok := t.counts[tr]
	return n, ok
}

// Probability returns the empirical probability of tr.
func (t *Table) Probability(tr Triple) (float64, bool) {
	p, ok := t.probs[tr]
	return p, ok
}

// Entropy returns the entropy contribution of tr.
func (t *Table) Entropy(tr Triple) (float64, bool) {
	e, ok := t.entropies[tr]
	return e, ok
}

// Distribution returns a copy of the triple → probability map.
func (t *Table) Distribution() map[Triple]float64 {
	return copyMap(t.probs)
}

// Entropies returns a copy of the triple → entropy map.
func (t *Table) Entropies() map[Triple]float64 {
	return copyMap(t.entropies)
}

// Triples returns the distinct triples in ascending (Source, Target, Distance) order.
func (t *Table) Triples() []Triple {
	if t.order == nil {
		return nil
	}
	out := make([]Triple, 0, t.order.Size())
	for it := t.order.Iterator(); it.Next(); {
		out = append(out, it.Key().(Triple))
	}
	return out
}

func copyMap(m map[Triple]float64) map[Triple]float64 {
	out := make(map[Triple]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
