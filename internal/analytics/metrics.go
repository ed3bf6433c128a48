package analytics

import (
	"ecom-analytics/internal/shared/metrics"
)

const (
	cacheHit  = "hit"
	cacheMiss = "miss"
)

// metricAnalyticsCacheTotal counts cache lookups on the analytics query paths.
var (
	metricAnalyticsCacheTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalytics,
			Name:      "cache_lookups_total",
		},
		[]string{"result"},
	)
)
