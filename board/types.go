package board

import "fmt"

// Coord represents a single grid cell position.
type Coord struct {
	Row, Col int // Coordinates within the grid
}

// String renders the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Point is a real-valued position, typically the centroid of several cells.
type Point struct {
	Row, Col float64
}

// Board is an immutable rectangular grid of cell values.
// cells[r][c] holds the original input value at (r, c).
type Board struct {
	rows, cols int
	cells      [][]int
}
