// SPDX-License-Identifier: MIT
// Package stats estimates the empirical distribution of edge triples and
// scores each distinct triple with its Shannon entropy contribution.
//
// What:
//
//   - Triple is the bucketing key (source value, target value, distance).
//   - Estimate counts a multiset of triples once and freezes the result in a Table.
//   - Table exposes probabilities p = count/total, entropies -p·log2(p),
//     their min/max, and a normalization into [0,1].
//
// Normalization:
//
//	norm(e) = 1 - (e - min) / (max - min)
//
//	Common triples (entropy near min) map near 1, rare ones near 0.
//	When max == min the table is degenerate and Normalize returns the caller's
//	fallback instead of dividing by zero.
//
// Determinism:
//
//   - Tables are immutable snapshots; maps are copied out on read.
//   - Triples() iterates in ascending (Source, Target, Distance) order.
//
// Complexity:
//
//   - Estimate: O(E + K·log K) for E triples and K distinct keys.
//   - Lookups:  O(1).
package stats
