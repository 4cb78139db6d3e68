package boardgraph

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/arcgraph/board"
)

// NewNode creates a detached Node with the given value and coordinates.
// Graph construction always passes exactly one coordinate; more are allowed
// for merged regions.
func NewNode(value int, coords ...board.Coord) *Node {
	cs := make([]board.Coord, len(coords))
	copy(cs, coords)

	return &Node{
		value:  value,
		coords: cs,
		key:    nodeKey(value, cs),
		linked: make(map[string]struct{}),
	}
}

// nodeKey formats the structural identity "value|r,c;r,c".
func nodeKey(value int, coords []board.Coord) string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(value))
	sb.WriteByte('|')
	for i, c := range coords {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(strconv.Itoa(c.Row))
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(c.Col))
	}
	return sb.String()
}

// Value returns the cell value (ARC colour code).
func (n *Node) Value() int { return n.value }

// Coords returns a copy of the node's coordinates.
func (n *Node) Coords() []board.Coord {
	out := make([]board.Coord, len(n.coords))
	copy(out, n.coords)
	return out
}

// Center returns the centroid of the node's coordinates.
// Returns board.ErrNoCoords for a node without coordinates.
func (n *Node) Center() (board.Point, error) {
	return board.Centroid(n.coords)
}

// Key returns the structural identity of the node.
// Two nodes with equal keys are interchangeable.
func (n *Node) Key() string { return n.key }

// Equal reports structural equality over (value, coords).
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.key == other.key
}

// AddConnection links other, stored as arena index idx, unless other is
// structurally equal to n or to a node already linked. It reports whether a
// connection was appended. Nodes owned by a built Graph are frozen and
// always return false.
// Complexity: O(1) amortized.
func (n *Node) AddConnection(idx int, other *Node) bool {
	if n.frozen || other == nil || n.Equal(other) {
		return false
	}
	if _, ok := n.linked[other.key]; ok {
		return false
	}
	if n.linked == nil {
		n.linked = make(map[string]struct{})
	}
	n.linked[other.key] = struct{}{}
	n.connections = append(n.connections, idx)
	return true
}

// Degree returns the number of outgoing connections.
func (n *Node) Degree() int { return len(n.connections) }

// Connections returns a copy of the connected arena indices.
func (n *Node) Connections() []int {
	return append([]int(nil), n.connections...)
}

// Distances returns a copy of the per-connection distances.
func (n *Node) Distances() []int {
	return append([]int(nil), n.distances...)
}

// Entropies returns a copy of the per-connection entropies.
func (n *Node) Entropies() []float64 {
	return append([]float64(nil), n.entropies...)
}

// NormalizedEntropies returns a copy of the per-connection normalized entropies.
func (n *Node) NormalizedEntropies() []float64 {
	return append([]float64(nil), n.normalized...)
}

// String renders the node as "Coords=[(r,c);...], Value=v".
func (n *Node) String() string {
	parts := make([]string, len(n.coords))
	for i, c := range n.coords {
		parts[i] = c.String()
	}
	return "Coords=[" + strings.Join(parts, ";") + "], Value=" + strconv.Itoa(n.value)
}
