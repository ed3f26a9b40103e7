package session

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/pathgrid/astar"
)

// Metrics counts search runs. A nil *Metrics records nothing.
type Metrics struct {
	runs     *prometheus.CounterVec
	expanded prometheus.Histogram
	pathLen  prometheus.Histogram
	duration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg creates unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pathgrid_runs_total",
			Help: "Search runs by outcome.",
		}, []string{"outcome"}),
		expanded: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "pathgrid_expanded_cells",
			Help:    "Frontier pops per run.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~260k
		}),
		pathLen: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "pathgrid_path_length",
			Help:    "Steps of found paths.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "pathgrid_run_duration_seconds",
			Help:    "Time spent inside the engine per run.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16), // 0.1ms to ~3s
		}),
	}
}

func (m *Metrics) observe(res astar.Result, d time.Duration) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(res.Outcome.String()).Inc()
	m.expanded.Observe(float64(res.Expanded))
	if res.Found() {
		m.pathLen.Observe(float64(res.Cost))
	}
	m.duration.Observe(d.Seconds())
}
