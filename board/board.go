package board

// New constructs a Board from a rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrNonRectangular if any row length differs from the first.
// A grid with no rows, or rows with no columns, yields an empty Board.
// Algorithmic complexity: O(R×C) time and memory.
func New(values [][]int) (*Board, error) {
	h := len(values)
	w := 0
	if h > 0 {
		w = len(values[0])
	}
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]int, w)
		copy(cells[r], values[r])
	}

	return &Board{rows: h, cols: w, cells: cells}, nil
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// Shape returns (rows, cols).
func (b *Board) Shape() (rows, cols int) { return b.rows, b.cols }

// Len returns the number of cells, rows×cols.
func (b *Board) Len() int { return b.rows * b.cols }

// InBounds reports whether (r,c) lies within the grid boundaries.
// Complexity: O(1).
func (b *Board) InBounds(r, c int) bool {
	return r >= 0 && r < b.rows && c >= 0 && c < b.cols
}

// At returns the value at (r,c). It panics on out-of-range coordinates,
// like slice indexing; check InBounds first when unsure.
func (b *Board) At(r, c int) int {
	return b.cells[r][c]
}

// Index maps a coordinate to its row-major index: Row*Cols + Col.
// Complexity: O(1).
func (b *Board) Index(c Coord) int {
	return c.Row*b.cols + c.Col
}

// Coordinate converts a row-major index back to a Coord.
// A board without columns has no cells; every index maps to the zero Coord.
// Complexity: O(1).
func (b *Board) Coordinate(idx int) Coord {
	if b.cols == 0 {
		return Coord{}
	}
	return Coord{Row: idx / b.cols, Col: idx % b.cols}
}

// Values returns a deep copy of the grid.
func (b *Board) Values() [][]int {
	out := make([][]int, b.rows)
	for r := range b.cells {
		out[r] = make([]int, b.cols)
		copy(out[r], b.cells[r])
	}
	return out
}

// Cells calls fn for every cell in row-major order.
// Iteration stops early if fn returns false.
func (b *Board) Cells(fn func(c Coord, value int) bool) {
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if !fn(Coord{Row: r, Col: c}, b.cells[r][c]) {
				return
			}
		}
	}
}

// Filled allocates a rows×cols grid with every cell set to fill.
// Negative dimensions are treated as zero.
func Filled(rows, cols, fill int) [][]int {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	out := make([][]int, rows)
	for r := range out {
		row := make([]int, cols)
		for c := range row {
			row[c] = fill
		}
		out[r] = row
	}
	return out
}
