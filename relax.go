package astar

import "github.com/pdrpinto/gridastar/grid"

// Relaxation records a neighbour whose best known cost was lowered while
// expanding From. To carries the priority it was queued with.
type Relaxation[C grid.Coordinate, P grid.Priority] struct {
	From grid.Node[C, P]
	To   grid.Node[C, P]
	Cost P
}
