package astar

import (
	"context"
	"time"

	"github.com/pdrpinto/gridastar/grid"
	"github.com/pdrpinto/gridastar/internal"
)

// Graph is the neighbour-query contract the search runs against.
// *grid.SquareGrid implements it.
type Graph[C grid.Coordinate, P grid.Priority] interface {
	IsValidNode(x, y C) bool
	// GetNeighbors appends every node reachable from node in one step to out
	// and returns the extended slice. The order must be stable.
	GetNeighbors(node grid.Node[C, P], out []grid.Node[C, P]) []grid.Node[C, P]
}

// CostGraph is a Graph that reports per-edge costs. Graphs that do not
// implement it cost 1 per step. Costs should be at least 1 to keep the
// default heuristic admissible.
type CostGraph[C grid.Coordinate, P grid.Priority] interface {
	Graph[C, P]
	StepCost(from, to grid.Node[C, P]) P
}

// Result contains the outcome of a search
type Result[C grid.Coordinate, P grid.Priority] struct {
	// Path runs from goal to start. Empty when Found is false.
	Path          []grid.Node[C, P]
	TotalCost     P
	ExpandedNodes int
	PushedNodes   int
	StaleEntries  int
	Found         bool
}

// Forward returns the path from start to goal.
func (r Result[C, P]) Forward() []grid.Node[C, P] {
	return internal.Reversed(r.Path)
}

// Options defines parameters for the search.
type Options struct {
	// SkipStale drops a popped entry whose cost is worse than the best cost
	// known for its coordinate instead of expanding it again.
	SkipStale bool
	Observer  Observer
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithStaleSkipping toggles skipping of outdated frontier entries.
func WithStaleSkipping(enabled bool) Option {
	return func(options *Options) { options.SkipStale = enabled }
}

// WithObserver reports the statistics of every search to observer.
func WithObserver(observer Observer) Option {
	return func(options *Options) { options.Observer = observer }
}

// Solve searches graph for a minimal-cost path from start to goal using the
// Manhattan heuristic. A missing path is reported as found == false, not as
// an error.
func Solve[C grid.Coordinate, P grid.Priority](
	graph Graph[C, P],
	start grid.Node[C, P],
	goal grid.Node[C, P],
) (bool, []grid.Node[C, P], error) {
	result, err := Search(context.Background(), graph, start, goal, nil)
	return result.Found, result.Path, err
}

// Search executes the A* search algorithm. A nil heuristic selects
// Manhattan. The context is checked once per frontier pop.
func Search[C grid.Coordinate, P grid.Priority](
	contextObject context.Context,
	graph Graph[C, P],
	startNode grid.Node[C, P],
	goalNode grid.Node[C, P],
	heuristic Heuristic[C, P],
	options ...Option,
) (Result[C, P], error) {

	// --- Apply options ---
	searchOptions := applyOptions(options)
	began := time.Now()

	result, err := runSearch(contextObject, graph, startNode, goalNode, heuristic, searchOptions)

	if searchOptions.Observer != nil {
		searchOptions.Observer.ObserveSearch(result.stats(time.Since(began), err))
	}
	return result, err
}

func runSearch[C grid.Coordinate, P grid.Priority](
	contextObject context.Context,
	graph Graph[C, P],
	startNode grid.Node[C, P],
	goalNode grid.Node[C, P],
	heuristic Heuristic[C, P],
	searchOptions Options,
) (Result[C, P], error) {
	state, err := newSearch(graph, startNode, goalNode, heuristic, searchOptions)
	if err != nil {
		return Result[C, P]{}, err
	}

	for !state.done {
		if err := contextObject.Err(); err != nil {
			return state.result(), err
		}
		state.step(false)
	}
	return state.result(), nil
}

func applyOptions(options []Option) Options {
	var searchOptions Options
	for _, option := range options {
		option(&searchOptions)
	}
	return searchOptions
}
