// Package metrics defines the prometheus collectors exposed at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// QueriesTotal counts event queries issued against the store.
	QueriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eventboard_queries_total",
		Help: "Number of event list queries issued.",
	})

	// StaleResultsDiscarded counts query responses dropped because a newer
	// query superseded them before they arrived.
	StaleResultsDiscarded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eventboard_stale_results_discarded_total",
		Help: "Number of superseded query responses discarded on arrival.",
	})

	// QueryDuration observes end-to-end event query latency.
	QueryDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "eventboard_query_duration_seconds",
		Help:    "Event list query duration, including simulated store latency.",
		Buckets: prometheus.DefBuckets,
	})
)
