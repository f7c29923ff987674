package astar

import (
	"context"
	"slices"

	"github.com/pdrpinto/gridastar/grid"
	"github.com/zyedidia/generic/mapset"
)

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot[C grid.Coordinate, P grid.Priority] struct {
	Current      grid.Node[C, P]
	Relaxed      []Relaxation[C, P]
	Expanded     mapset.Set[grid.Point[C]]
	CameFrom     map[grid.Point[C]]grid.Point[C]
	FrontierSize int
	Skipped      bool // Current was a stale entry and was not expanded
	Done         bool
	Found        bool
	Path         []grid.Node[C, P]
	StepIndex    int
}

// Stepper runs the same search as Search one frontier pop at a time.
// It is not safe for concurrent use.
type Stepper[C grid.Coordinate, P grid.Priority] struct {
	ctx       context.Context
	state     *search[C, P]
	expanded  mapset.Set[grid.Point[C]]
	stepCount int
	current   grid.Node[C, P]
}

// NewStepper validates the parameters and queues the start node.
func NewStepper[C grid.Coordinate, P grid.Priority](
	ctx context.Context,
	graph Graph[C, P],
	startNode grid.Node[C, P],
	goalNode grid.Node[C, P],
	heuristic Heuristic[C, P],
	options ...Option,
) (*Stepper[C, P], error) {
	state, err := newSearch(graph, startNode, goalNode, heuristic, applyOptions(options))
	if err != nil {
		return nil, err
	}
	return &Stepper[C, P]{
		ctx:      ctx,
		state:    state,
		expanded: mapset.New[grid.Point[C]](),
	}, nil
}

// Done reports whether the search has finished.
func (s *Stepper[C, P]) Done() bool { return s.state.done }

// Result returns the outcome so far. It is final once Done is true.
func (s *Stepper[C, P]) Result() Result[C, P] { return s.state.result() }

// Step advances the search by one frontier pop and returns a snapshot.
// Once the search is done further calls return the final snapshot again.
func (s *Stepper[C, P]) Step() (StepSnapshot[C, P], error) {
	if s.state.done {
		return s.snapshot(nil, false), nil
	}
	if err := s.ctx.Err(); err != nil {
		s.state.done = true
		return s.snapshot(nil, false), err
	}

	outcome := s.state.step(true)
	if !outcome.popped {
		return s.snapshot(nil, false), nil
	}

	s.stepCount++
	s.current = outcome.current
	if !outcome.skipped && !s.state.found {
		s.expanded.Put(outcome.current.Point())
	}
	return s.snapshot(outcome.relaxed, outcome.skipped), nil
}

func (s *Stepper[C, P]) snapshot(relaxed []Relaxation[C, P], skipped bool) StepSnapshot[C, P] {
	snap := StepSnapshot[C, P]{
		Current:      s.current,
		Relaxed:      relaxed,
		Expanded:     copySet(s.expanded),
		CameFrom:     copyCameFrom(s.state.cameFrom),
		FrontierSize: s.state.frontier.Len(),
		Skipped:      skipped,
		Done:         s.state.done,
		Found:        s.state.found,
		StepIndex:    s.stepCount,
	}
	if s.state.found {
		snap.Path = slices.Clone(s.state.path)
	}
	return snap
}

func copySet[T comparable](set mapset.Set[T]) mapset.Set[T] {
	c := mapset.New[T]()
	set.Each(func(key T) { c.Put(key) })
	return c
}

func copyCameFrom[C grid.Coordinate, P grid.Priority](
	m map[grid.Point[C]]grid.Node[C, P],
) map[grid.Point[C]]grid.Point[C] {
	c := make(map[grid.Point[C]]grid.Point[C], len(m))
	for k, v := range m {
		c[k] = v.Point()
	}
	return c
}
