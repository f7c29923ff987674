package astar

import "errors"

var (
	// ErrNilGraph is returned when no graph is supplied.
	ErrNilGraph = errors.New("astar: nil graph")
	// ErrInvalidParameter is returned when start or goal is not a valid node
	// of the graph. An uninitialized grid has no valid nodes.
	ErrInvalidParameter = errors.New("astar: invalid search parameter")
)
