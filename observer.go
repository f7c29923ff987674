package astar

import "time"

// Stats summarizes one Search call.
type Stats struct {
	Found      bool
	Expanded   int
	Pushed     int
	Stale      int
	PathLength int // edges, 0 when not found
	Duration   time.Duration
	Err        error
}

// Observer receives the statistics of every Search it is installed on.
// It is called synchronously, after the search finishes.
type Observer interface {
	ObserveSearch(stats Stats)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(stats Stats)

func (f ObserverFunc) ObserveSearch(stats Stats) { f(stats) }

func (r Result[C, P]) stats(elapsed time.Duration, err error) Stats {
	s := Stats{
		Found:    r.Found,
		Expanded: r.ExpandedNodes,
		Pushed:   r.PushedNodes,
		Stale:    r.StaleEntries,
		Duration: elapsed,
		Err:      err,
	}
	if r.Found {
		s.PathLength = len(r.Path) - 1
	}
	return s
}
