// Package metrics exports path-finding statistics as Prometheus metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/rogpeppe/gridpath/graph/path"
)

// Values of the result label on the searches counter.
const (
	ResultFound   = "found"
	ResultNone    = "none"
	ResultAborted = "aborted"
	ResultCached  = "cached"
)

// Recorder records search results. It is safe for concurrent use.
type Recorder struct {
	searches      *prometheus.CounterVec
	opened        prometheus.Counter
	closed        prometheus.Counter
	reprioritized prometheus.Counter
	peakOpen      prometheus.Histogram
	duration      prometheus.Histogram
}

// New returns a Recorder whose collectors are registered with reg.
// If reg is nil, the collectors are not registered.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	r := &Recorder{
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gridpath_searches_total",
			Help: "Path searches by result",
		}, []string{"result"}),
		opened: f.NewCounter(prometheus.CounterOpts{
			Name: "gridpath_nodes_opened_total",
			Help: "Nodes admitted to the open set",
		}),
		closed: f.NewCounter(prometheus.CounterOpts{
			Name: "gridpath_nodes_closed_total",
			Help: "Nodes whose cost was finalized",
		}),
		reprioritized: f.NewCounter(prometheus.CounterOpts{
			Name: "gridpath_nodes_reprioritized_total",
			Help: "Open nodes updated after a cheaper route was found",
		}),
		peakOpen: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridpath_peak_open_nodes",
			Help:    "Largest open set size per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridpath_search_duration_seconds",
			Help:    "Search duration",
			Buckets: []float64{0.000001, 0.00001, 0.0001, 0.001, 0.01, 0.1},
		}),
	}
	// Make every result visible from the start.
	for _, result := range []string{ResultFound, ResultNone, ResultAborted, ResultCached} {
		r.searches.WithLabelValues(result)
	}
	return r
}

// Observe records the result of one search that took d.
// Node counters are only meaningful when the search was
// made with statistics enabled; see path.WithStats.
// A cached result is counted as a search and nothing else.
func (r *Recorder) Observe(res path.Result, d time.Duration) {
	if res.Cached {
		r.searches.WithLabelValues(ResultCached).Inc()
		return
	}
	r.searches.WithLabelValues(resultLabel(res)).Inc()
	r.opened.Add(float64(res.Stats.Opened))
	r.closed.Add(float64(res.Stats.Closed))
	r.reprioritized.Add(float64(res.Stats.Reprioritized))
	r.peakOpen.Observe(float64(res.Stats.PeakOpen))
	r.duration.Observe(d.Seconds())
}

func resultLabel(res path.Result) string {
	switch {
	case res.Stats.FailsafeTripped:
		return ResultAborted
	case res.Found():
		return ResultFound
	}
	return ResultNone
}
