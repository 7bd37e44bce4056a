// Package metrics exposes the Prometheus instrumentation for the evaluation
// pipeline and its caches.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Decisions counts access decisions by outcome ("granted" / "denied").
	Decisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "guardian_access_decisions_total",
		Help: "Access decisions produced by the evaluation pipeline.",
	}, []string{"outcome"})

	// EvaluationDuration tracks the latency of full Evaluate calls.
	EvaluationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "guardian_evaluation_duration_seconds",
		Help:    "Latency of access evaluations, including store reads.",
		Buckets: prometheus.DefBuckets,
	})

	// CacheLookups counts aggregator cache lookups by aggregator
	// ("policy" / "role") and result ("hit" / "miss").
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "guardian_aggregator_cache_lookups_total",
		Help: "Aggregator cache lookups by result.",
	}, []string{"aggregator", "result"})

	// DanglingReferences counts references filtered out during evaluation
	// because the target record no longer exists.
	DanglingReferences = promauto.NewCounter(prometheus.CounterOpts{
		Name: "guardian_dangling_references_total",
		Help: "Dangling permission/policy references skipped during evaluation.",
	})
)

// Handler serves the default Prometheus registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordDecision increments the decision counter for the given outcome.
func RecordDecision(granted bool) {
	if granted {
		Decisions.WithLabelValues("granted").Inc()
		return
	}
	Decisions.WithLabelValues("denied").Inc()
}
