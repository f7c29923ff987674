// Package pathmetrics exports astar search statistics to Prometheus.
package pathmetrics

import (
	astar "github.com/pdrpinto/gridastar"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultFound    = "found"
	resultNotFound = "not_found"
	resultError    = "error"
)

// Recorder is an astar.Observer that records every search it sees.
type Recorder struct {
	searches   *prometheus.CounterVec
	expanded   prometheus.Histogram
	pathLength prometheus.Histogram
	duration   prometheus.Histogram
}

var _ astar.Observer = (*Recorder)(nil)

// NewRecorder registers the search metrics with reg. A nil reg uses the
// default registerer.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Recorder{
		// searches counts finished searches by outcome
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gridastar_searches_total",
			Help: "Total searches by result",
		}, []string{"result"}),

		expanded: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridastar_expanded_nodes",
			Help:    "Nodes expanded per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~260k
		}),

		// pathLength only observes searches that found a path
		pathLength: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridastar_path_length",
			Help:    "Edges in returned paths",
			Buckets: prometheus.ExponentialBuckets(1, 2, 14),
		}),

		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridastar_search_duration_seconds",
			Help:    "Search duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}),
	}
}

// ObserveSearch implements astar.Observer.
func (r *Recorder) ObserveSearch(stats astar.Stats) {
	switch {
	case stats.Err != nil:
		r.searches.WithLabelValues(resultError).Inc()
		return
	case stats.Found:
		r.searches.WithLabelValues(resultFound).Inc()
		r.pathLength.Observe(float64(stats.PathLength))
	default:
		r.searches.WithLabelValues(resultNotFound).Inc()
	}
	r.expanded.Observe(float64(stats.Expanded))
	r.duration.Observe(stats.Duration.Seconds())
}
