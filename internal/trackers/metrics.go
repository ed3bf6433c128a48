package trackers

import (
	"ecom-analytics/internal/shared/metrics"
)

// metricEventsTrackedTotal counts events accepted at the tracking edge. The
// event_type label is empty when validation rejected the request.
var (
	metricEventsTrackedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubTracking,
			Name:      "events_tracked_total",
		},
		[]string{"event_type", metrics.FieldErrorCode},
	)
)
