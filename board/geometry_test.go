package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arcgraph/board"
)

func TestCentroid(t *testing.T) {
	p, err := board.Centroid([]board.Coord{{Row: 2, Col: 3}})
	require.NoError(t, err)
	assert.Equal(t, board.Point{Row: 2, Col: 3}, p, "singleton centroid is the cell")

	p, err = board.Centroid([]board.Coord{{0, 0}, {0, 1}, {1, 0}, {1, 1}})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, p.Row, 1e-12)
	assert.InDelta(t, 0.5, p.Col, 1e-12)

	_, err = board.Centroid(nil)
	assert.ErrorIs(t, err, board.ErrNoCoords)
}

func TestManhattan(t *testing.T) {
	cases := []struct {
		a, b board.Point
		want float64
	}{
		{board.Point{0, 0}, board.Point{2, 3}, 5},
		{board.Point{2, 3}, board.Point{0, 0}, 5},
		{board.Point{1, 1}, board.Point{1, 1}, 0},
		{board.Point{0.5, 0}, board.Point{0, 1.5}, 2},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, board.Manhattan(tc.a, tc.b), 1e-12, "%v→%v", tc.a, tc.b)
	}
}

func TestCoordString(t *testing.T) {
	assert.Equal(t, "(3,7)", board.Coord{Row: 3, Col: 7}.String())
}
