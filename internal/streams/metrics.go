package streams

import (
	"ecom-analytics/internal/shared/metrics"
)

const (
	publishModeAsync = "async"
	publishModeSync  = "sync"
)

var (
	// metricEventsPublishedTotal counts publish attempts; the error label is
	// empty on success, "marshal" or "write" on failure.
	metricEventsPublishedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "events_published_total",
		},
		[]string{"mode", metrics.FieldErrorCode},
	)

	// metricEventsConsumedTotal counts messages taken off the stream, by final
	// outcome after retries.
	metricEventsConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "events_consumed_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	// metricEventRetriesTotal counts retry attempts after transient processing
	// failures.
	metricEventRetriesTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "event_retries_total",
		},
	)
)
