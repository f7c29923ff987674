package grid

import "fmt"

// MaxCells bounds width*height so a bad configuration fails fast instead of
// attempting a pathological allocation.
const MaxCells = 1 << 24

// SquareGrid is a dense width×height table of nodes, stored row-major.
// It is safe for concurrent searches as long as no mask is modified while
// a search is running.
type SquareGrid[C Coordinate, P Priority] struct {
	width  C
	height C
	nodes  []Node[C, P]
}

// New allocates and initializes a grid.
func New[C Coordinate, P Priority](width, height C) (*SquareGrid[C, P], error) {
	g := &SquareGrid[C, P]{}
	if err := g.Initialize(width, height); err != nil {
		return nil, err
	}
	return g, nil
}

// Initialize allocates width*height nodes positioned at their coordinates
// with every mask cleared. Any previous state is discarded.
func (g *SquareGrid[C, P]) Initialize(width, height C) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d must be positive", ErrConfiguration, width, height)
	}
	if int64(width)*int64(height) > MaxCells {
		return fmt.Errorf("%w: %dx%d exceeds %d cells", ErrConfiguration, width, height, MaxCells)
	}

	nodes := make([]Node[C, P], int(width)*int(height))
	for y := C(0); y < height; y++ {
		for x := C(0); x < width; x++ {
			nodes[int(y)*int(width)+int(x)] = NewNode[C, P](x, y)
		}
	}

	g.width, g.height, g.nodes = width, height, nodes
	return nil
}

func (g *SquareGrid[C, P]) Width() C  { return g.width }
func (g *SquareGrid[C, P]) Height() C { return g.height }

// Len returns the number of cells.
func (g *SquareGrid[C, P]) Len() int { return len(g.nodes) }

// IsValidNode reports whether (x, y) lies inside the grid.
func (g *SquareGrid[C, P]) IsValidNode(x, y C) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// GetNode returns a copy of the node at (x, y).
func (g *SquareGrid[C, P]) GetNode(x, y C) (Node[C, P], error) {
	i, err := g.index(x, y)
	if err != nil {
		return Node[C, P]{}, err
	}
	return g.nodes[i], nil
}

// SetNodeNeighbors overwrites the adjacency mask of (x, y).
func (g *SquareGrid[C, P]) SetNodeNeighbors(x, y C, mask Direction) error {
	i, err := g.index(x, y)
	if err != nil {
		return err
	}
	g.nodes[i].neighbors = mask & All
	return nil
}

// AddNodeNeighbors sets the bits of mask on (x, y), keeping the others.
func (g *SquareGrid[C, P]) AddNodeNeighbors(x, y C, mask Direction) error {
	i, err := g.index(x, y)
	if err != nil {
		return err
	}
	g.nodes[i].neighbors |= mask & All
	return nil
}

// Fill sets the same mask on every cell.
func (g *SquareGrid[C, P]) Fill(mask Direction) error {
	if len(g.nodes) == 0 {
		return ErrNotInitialized
	}
	for i := range g.nodes {
		g.nodes[i].neighbors = mask & All
	}
	return nil
}

// Isolate cuts (x, y) off in both directions: its own mask is cleared and
// each adjacent cell loses the bit pointing at it.
func (g *SquareGrid[C, P]) Isolate(x, y C) error {
	i, err := g.index(x, y)
	if err != nil {
		return err
	}
	g.nodes[i].neighbors = None

	p := g.nodes[i].point
	for _, d := range Cardinals {
		dx, dy := d.Delta()
		q := p.Add(dx, dy)
		if !g.IsValidNode(q.X, q.Y) {
			continue
		}
		g.nodes[g.offset(q.X, q.Y)].neighbors &^= d.Opposite()
	}
	return nil
}

// GetNeighbors appends to out every node reachable from node in one step,
// in North, East, South, West order. Directions leading off the grid are
// dropped. The mask is taken from the grid's own copy of the cell.
func (g *SquareGrid[C, P]) GetNeighbors(node Node[C, P], out []Node[C, P]) []Node[C, P] {
	if !g.IsValidNode(node.X(), node.Y()) {
		return out
	}
	mask := g.nodes[g.offset(node.X(), node.Y())].neighbors
	for _, d := range Cardinals {
		if mask&d == 0 {
			continue
		}
		dx, dy := d.Delta()
		q := node.point.Add(dx, dy)
		if !g.IsValidNode(q.X, q.Y) {
			continue
		}
		out = append(out, g.nodes[g.offset(q.X, q.Y)])
	}
	return out
}

func (g *SquareGrid[C, P]) index(x, y C) (int, error) {
	if len(g.nodes) == 0 {
		return 0, ErrNotInitialized
	}
	if !g.IsValidNode(x, y) {
		return 0, fmt.Errorf("%w: (%d, %d) not in %dx%d", ErrOutOfRange, x, y, g.width, g.height)
	}
	return g.offset(x, y), nil
}

func (g *SquareGrid[C, P]) offset(x, y C) int {
	return int(y)*int(g.width) + int(x)
}
