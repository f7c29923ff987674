package astar

import "github.com/pdrpinto/gridastar/grid"

// Heuristic returns the estimated cost from node a to node b.
// It must never overestimate the true remaining cost or the returned path
// may not be optimal.
type Heuristic[C grid.Coordinate, P grid.Priority] func(from, to grid.Node[C, P]) P

// Manhattan is |dx| + |dy|. It is admissible and consistent on a 4-connected
// grid where every step costs at least 1.
func Manhattan[C grid.Coordinate, P grid.Priority](from, to grid.Node[C, P]) P {
	return P(absDiff(from.X(), to.X()) + absDiff(from.Y(), to.Y()))
}

// Zero turns the search into Dijkstra's algorithm.
func Zero[C grid.Coordinate, P grid.Priority](_, _ grid.Node[C, P]) P {
	return 0
}

func absDiff[C grid.Coordinate](a, b C) int64 {
	d := int64(a) - int64(b)
	if d < 0 {
		return -d
	}
	return d
}
