package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK       = "ok"
	outcomeInvalid  = "invalid"
	outcomeUpstream = "upstream_error"
	outcomeEmpty    = "empty"
)

type metrics struct {
	generations *prometheus.CounterVec
	completion  prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		generations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "hookgen_generations_total",
			Help: "Hook generation requests by outcome.",
		}, []string{"outcome"}),
		completion: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "hookgen_completion_duration_seconds",
			Help:    "Time spent waiting on the completion API and parsing its answer.",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 8),
		}),
	}
}

func (m *metrics) observeCompletion(d time.Duration) {
	m.completion.Observe(d.Seconds())
}
