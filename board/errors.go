package board

import "errors"

var (
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("board: all rows must have the same length")
	// ErrNoCoords indicates a centroid was requested for an empty coordinate set.
	ErrNoCoords = errors.New("board: centroid of empty coordinate set")
)
