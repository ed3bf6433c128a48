package aggregators

import (
	"ecom-analytics/internal/shared/metrics"
)

const (
	triggerEvent   = "event"
	triggerRefresh = "refresh"
)

// metricAggregateUpdatesTotal counts product aggregate writes.
//
// The trigger label distinguishes the two write paths:
//   - "event": a behavioral event folded its counters into the aggregate
//   - "refresh": the canonical entity changed and display fields were replaced
//
// error_code is empty on success, otherwise the AGG_* code of the failure.
var (
	metricAggregateUpdatesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "aggregate_updates_total",
		},
		[]string{"trigger", metrics.FieldErrorCode},
	)
)
