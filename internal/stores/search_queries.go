package stores

import (
	"encoding/json"
	"fmt"

	"ecom-analytics/internal/models"
)

// Aggregation names used in query bodies and expected back in responses.
const (
	aggTopProducts        = "top_products"
	aggTopCategories      = "top_categories"
	aggTrendingProducts   = "trending_products"
	aggTrendingCategories = "trending_categories"
	aggConversionProducts = "products"
)

// topProductsQuery filters on one event type and buckets by productId.
// Response buckets carry {key: productId, doc_count: N}.
func topProductsQuery(eventType models.EventType, limit int) ([]byte, error) {
	body := map[string]any{
		"size":  0,
		"query": termQuery("eventType", eventType.String()),
		"aggs": map[string]any{
			aggTopProducts: termsAggregation("productId", limit),
		},
	}
	return json.Marshal(body)
}

func topCategoriesQuery(limit int) ([]byte, error) {
	body := map[string]any{
		"size": 0,
		"aggs": map[string]any{
			aggTopCategories: termsAggregation("category", limit),
		},
	}
	return json.Marshal(body)
}

// trendingQuery buckets by field over events newer than "now minus hours".
func trendingQuery(aggName, field string, hours, limit int) ([]byte, error) {
	body := map[string]any{
		"size": 0,
		"query": map[string]any{
			"range": map[string]any{
				"timestamp": map[string]any{
					"gte": fmt.Sprintf("now-%dh", hours),
				},
			},
		},
		"aggs": map[string]any{
			aggName: termsAggregation(field, limit),
		},
	}
	return json.Marshal(body)
}

// conversionRatesQuery buckets by productId with two filtered sub-aggregations
// counting VIEW and PURCHASE documents. The ratio is derived by the caller,
// never in the aggregation language, to avoid divide-by-zero in the store.
func conversionRatesQuery(limit int) ([]byte, error) {
	body := map[string]any{
		"size": 0,
		"aggs": map[string]any{
			aggConversionProducts: map[string]any{
				"terms": map[string]any{
					"field": "productId",
					"size":  limit,
				},
				"aggs": map[string]any{
					"views": map[string]any{
						"filter": termQuery("eventType", models.EventView.String()),
					},
					"purchases": map[string]any{
						"filter": termQuery("eventType", models.EventPurchase.String()),
					},
				},
			},
		},
	}
	return json.Marshal(body)
}

func countByEventTypeQuery(eventType models.EventType) ([]byte, error) {
	return json.Marshal(map[string]any{"query": termQuery("eventType", eventType.String())})
}

func termQuery(field, value string) map[string]any {
	return map[string]any{
		"term": map[string]any{field: value},
	}
}

func termsAggregation(field string, size int) map[string]any {
	return map[string]any{
		"terms": map[string]any{
			"field": field,
			"size":  size,
		},
	}
}
