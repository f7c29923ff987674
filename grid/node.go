package grid

import "fmt"

// Node is one cell of a search graph. Identity is the coordinate alone;
// priority and neighbour mask are not part of it.
type Node[C Coordinate, P Priority] struct {
	point     Point[C]
	priority  P
	neighbors Direction
}

// Node8, Node16 and Node32 pair each coordinate width with a priority type
// wide enough to hold path costs across a full grid.
type (
	Node8  = Node[int8, int16]
	Node16 = Node[int16, int32]
	Node32 = Node[int32, int64]
)

// NewNode returns a node at (x, y) with zero priority and no neighbours.
func NewNode[C Coordinate, P Priority](x, y C) Node[C, P] {
	return Node[C, P]{point: Point[C]{X: x, Y: y}}
}

// NodeFromKey returns a node at the unpacked coordinate of k.
func NodeFromKey[C Coordinate, P Priority](k Key) Node[C, P] {
	x, y := Unpack[C](k)
	return NewNode[C, P](x, y)
}

func (n Node[C, P]) X() C                 { return n.point.X }
func (n Node[C, P]) Y() C                 { return n.point.Y }
func (n Node[C, P]) Point() Point[C]      { return n.point }
func (n Node[C, P]) Key() Key             { return n.point.Key() }
func (n Node[C, P]) Hash() uint64         { return n.point.Hash() }
func (n Node[C, P]) Neighbors() Direction { return n.neighbors }

// Priority is only meaningful while the node sits in a search frontier.
func (n Node[C, P]) Priority() P { return n.priority }

// SetPriority sets the search priority. Lower values are expanded first.
func (n *Node[C, P]) SetPriority(p P) { n.priority = p }

// Equal reports whether both nodes address the same cell.
func (n Node[C, P]) Equal(other Node[C, P]) bool {
	return n.point == other.point
}

func (n Node[C, P]) String() string {
	return fmt.Sprintf("Node[%d, %d]", n.point.X, n.point.Y)
}
