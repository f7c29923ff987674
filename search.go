package astar

import (
	"fmt"

	"github.com/pdrpinto/gridastar/grid"
	"github.com/pdrpinto/gridastar/internal"
)

// search is the state of one A* run. It is shared by Search and Stepper and
// never outlives the call or stepper that created it.
//
// There is no closed set. A coordinate relaxed to a better cost is pushed
// again and its older entries stay queued; popping one of those re-walks
// its neighbours without improving anything unless SkipStale is set.
type search[C grid.Coordinate, P grid.Priority] struct {
	graph     Graph[C, P]
	stepCost  func(from, to grid.Node[C, P]) P
	heuristic Heuristic[C, P]
	start     grid.Node[C, P]
	goal      grid.Node[C, P]
	skipStale bool

	frontier  *frontier[C, P]
	costSoFar map[grid.Point[C]]P
	cameFrom  map[grid.Point[C]]grid.Node[C, P]
	neighbors []grid.Node[C, P]

	expanded int
	pushed   int
	stale    int
	done     bool
	found    bool
	path     []grid.Node[C, P]
}

// stepOutcome describes a single frontier pop.
type stepOutcome[C grid.Coordinate, P grid.Priority] struct {
	current grid.Node[C, P]
	popped  bool
	skipped bool
	relaxed []Relaxation[C, P]
}

func newSearch[C grid.Coordinate, P grid.Priority](
	graph Graph[C, P],
	startNode grid.Node[C, P],
	goalNode grid.Node[C, P],
	heuristic Heuristic[C, P],
	searchOptions Options,
) (*search[C, P], error) {
	if graph == nil {
		return nil, ErrNilGraph
	}
	if !graph.IsValidNode(startNode.X(), startNode.Y()) {
		return nil, fmt.Errorf("%w: start %v", ErrInvalidParameter, startNode.Point())
	}
	if !graph.IsValidNode(goalNode.X(), goalNode.Y()) {
		return nil, fmt.Errorf("%w: goal %v", ErrInvalidParameter, goalNode.Point())
	}
	if heuristic == nil {
		heuristic = Manhattan[C, P]
	}

	s := &search[C, P]{
		graph:     graph,
		stepCost:  unitCost[C, P],
		heuristic: heuristic,
		start:     startNode,
		goal:      goalNode,
		skipStale: searchOptions.SkipStale,
		frontier:  newFrontier[C, P](),
		costSoFar: make(map[grid.Point[C]]P),
		cameFrom:  make(map[grid.Point[C]]grid.Node[C, P]),
		neighbors: make([]grid.Node[C, P], 0, 4),
	}
	if weighted, ok := graph.(CostGraph[C, P]); ok {
		s.stepCost = weighted.StepCost
	}

	// the start entry is queued at priority 0 and is its own predecessor
	s.start.SetPriority(0)
	s.frontier.push(s.start, 0)
	s.costSoFar[s.start.Point()] = 0
	s.cameFrom[s.start.Point()] = s.start
	return s, nil
}

func unitCost[C grid.Coordinate, P grid.Priority](_, _ grid.Node[C, P]) P {
	return 1
}

// step pops one frontier entry and relaxes its neighbours. Relaxations are
// only collected when record is set.
func (s *search[C, P]) step(record bool) stepOutcome[C, P] {
	if s.done {
		return stepOutcome[C, P]{}
	}

	entry, ok := s.frontier.pop()
	if !ok {
		s.done = true
		return stepOutcome[C, P]{}
	}
	current := entry.node
	currentCost := s.costSoFar[current.Point()]
	outcome := stepOutcome[C, P]{current: current, popped: true}

	if s.skipStale && entry.cost > currentCost {
		s.stale++
		outcome.skipped = true
		return outcome
	}

	// Goal check
	if current.Point() == s.goal.Point() {
		s.done, s.found = true, true
		s.path = internal.ReconstructPath(s.cameFrom, pointOf[C, P], current, s.start.Point())
		return outcome
	}

	s.expanded++
	s.neighbors = s.graph.GetNeighbors(current, s.neighbors[:0])
	for _, next := range s.neighbors {
		tentative := currentCost + s.stepCost(current, next)
		known, seen := s.costSoFar[next.Point()]
		if seen && tentative >= known {
			continue
		}

		s.costSoFar[next.Point()] = tentative
		next.SetPriority(tentative + s.heuristic(next, s.goal))
		s.frontier.push(next, tentative)
		s.pushed++
		s.cameFrom[next.Point()] = current

		if record {
			outcome.relaxed = append(outcome.relaxed, Relaxation[C, P]{From: current, To: next, Cost: tentative})
		}
	}
	return outcome
}

func (s *search[C, P]) result() Result[C, P] {
	r := Result[C, P]{
		ExpandedNodes: s.expanded,
		PushedNodes:   s.pushed,
		StaleEntries:  s.stale,
		Found:         s.found,
	}
	if s.found {
		r.Path = s.path
		r.TotalCost = s.costSoFar[s.goal.Point()]
	}
	return r
}

func pointOf[C grid.Coordinate, P grid.Priority](node grid.Node[C, P]) grid.Point[C] {
	return node.Point()
}
