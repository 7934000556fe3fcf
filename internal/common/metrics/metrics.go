// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GenerationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plan_generation_requests_total",
			Help: "Total number of plan generation requests",
		},
		[]string{"flavor"},
	)

	GenerationOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plan_generation_outcomes_total",
			Help: "Plan generation outcomes by provenance",
		},
		[]string{"flavor", "source"},
	)

	ModelAttemptFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plan_model_attempt_failures_total",
			Help: "Failed model attempts by error code",
		},
		[]string{"flavor", "error_code"},
	)

	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "plan_generation_duration_seconds",
			Help:    "End-to-end duration of plan generation in seconds",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
		},
		[]string{"flavor", "source"},
	)

	CatalogFallbackPicks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plan_catalog_repeat_picks_total",
			Help: "Selections that had to reuse an excluded catalog item",
		},
		[]string{"domain"},
	)
)
