package board

import "math"

// Centroid returns the mean row and mean column of coords.
// For a single coordinate it is the cell itself.
// Returns ErrNoCoords when coords is empty.
// Complexity: O(k).
func Centroid(coords []Coord) (Point, error) {
	if len(coords) == 0 {
		return Point{}, ErrNoCoords
	}
	var sumR, sumC int
	for _, c := range coords {
		sumR += c.Row
		sumC += c.Col
	}
	n := float64(len(coords))

	return Point{Row: float64(sumR) / n, Col: float64(sumC) / n}, nil
}

// Manhattan returns the L1 distance between two points.
func Manhattan(a, b Point) float64 {
	return math.Abs(a.Row-b.Row) + math.Abs(a.Col-b.Col)
}
