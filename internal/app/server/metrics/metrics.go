package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels
const (
	OutcomeCreated  = "created"
	OutcomeMissing  = "missing_fields"
	OutcomeConflict = "conflict"
	OutcomeError    = "error"
	OutcomeOK       = "ok"
)

var (
	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "datareceiver_submissions_total",
			Help: "Total number of data submissions by outcome",
		},
		[]string{"outcome"},
	)

	QueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "datareceiver_queries_total",
			Help: "Total number of data queries by outcome",
		},
		[]string{"outcome"},
	)

	QueryResultRows = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "datareceiver_query_result_rows",
			Help:    "Number of rows returned per data query",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "datareceiver_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "operation", "status"},
	)
)
