// Package board holds the input boundary of arcgraph: a validated,
// deep-copied rectangular grid of small integer cells (an ARC puzzle board),
// plus the cell geometry the graph layer measures with.
//
// What:
//
//   - Board wraps a rectangular [][]int and is immutable once built.
//   - Coord addresses one cell as (Row, Col); Point is a real-valued centroid.
//   - Centroid averages a set of coordinates; Manhattan measures L1 distance.
//   - Filled allocates output grids of a given shape (used by relabeling).
//   - Palette maps the ten ARC colour codes to hex strings for renderers.
//
// Why:
//
//   - Every downstream phase indexes cells row-major; doing it in one place
//     keeps scan order (and therefore reproducibility) identical everywhere.
//
// Complexity:
//
//   - New:       O(R×C) time and memory (deep copy).
//   - Centroid:  O(k) for k coordinates.
//   - Manhattan: O(1).
//
// Errors:
//
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNoCoords: centroid of an empty coordinate set.
//
// A grid with zero cells is accepted and yields an empty Board; callers
// downstream short-circuit on Len() == 0 instead of erroring.
package board
