package products

import (
	"ecom-analytics/internal/shared/metrics"
)

const (
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"
	opStock  = "stock"

	cacheHit  = "hit"
	cacheMiss = "miss"
)

var (
	// metricProductMutationsTotal counts committed catalog mutations.
	metricProductMutationsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubProducts,
			Name:      "product_mutations_total",
		},
		[]string{"operation", metrics.FieldErrorCode},
	)

	// metricProductCacheTotal counts cache lookups on the product read paths.
	metricProductCacheTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubProducts,
			Name:      "cache_lookups_total",
		},
		[]string{"result"},
	)
)
