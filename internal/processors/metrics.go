package processors

import (
	"ecom-analytics/internal/shared/metrics"
)

// metricEventsProcessedTotal counts consumed events by type and outcome.
// The event_type label is empty when the payload never decoded far enough
// to know the type.
var (
	metricEventsProcessedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubProcessing,
			Name:      "events_processed_total",
		},
		[]string{"event_type", metrics.FieldErrorCode},
	)

	// metricSearchIndexFailuresTotal counts events that were durably stored but
	// could not be indexed into the search store.
	metricSearchIndexFailuresTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubProcessing,
			Name:      "search_index_failures_total",
		},
	)
)
