package stores

import (
	"encoding/json"
	"fmt"
	"sort"

	"ecom-analytics/internal/models"
)

// searchResponse covers the slice of an Elasticsearch search/count response
// this package reads: bucketed aggregations and counts.
type searchResponse struct {
	Aggregations map[string]termsResult `json:"aggregations"`
}

type termsResult struct {
	Buckets []termsBucket `json:"buckets"`
}

type termsBucket struct {
	Key       string        `json:"key"`
	DocCount  int64         `json:"doc_count"`
	Views     *filterResult `json:"views,omitempty"`
	Purchases *filterResult `json:"purchases,omitempty"`
}

type filterResult struct {
	DocCount int64 `json:"doc_count"`
}

type countResponse struct {
	Count int64 `json:"count"`
}

// parseRankedCounts extracts the named terms aggregation as an ordered
// (key, count) list. Elasticsearch returns buckets ordered by count
// descending already; the order is preserved.
func parseRankedCounts(raw []byte, aggName string) ([]models.RankedCount, error) {
	var response searchResponse
	if err := json.Unmarshal(raw, &response); err != nil {
		return nil, fmt.Errorf("failed to parse aggregation response: %w", err)
	}

	terms, ok := response.Aggregations[aggName]
	if !ok {
		return nil, fmt.Errorf("aggregation %q missing in response", aggName)
	}

	result := make([]models.RankedCount, 0, len(terms.Buckets))
	for _, bucket := range terms.Buckets {
		result = append(result, models.RankedCount{Key: bucket.Key, Count: bucket.DocCount})
	}
	return result, nil
}

// parseConversionRates extracts per-product view and purchase sub-counts and
// derives the ratio, 0 when there are no views. Buckets are re-ranked by rate
// descending with product ID as the deterministic tie-break.
func parseConversionRates(raw []byte) ([]models.ConversionRate, error) {
	var response searchResponse
	if err := json.Unmarshal(raw, &response); err != nil {
		return nil, fmt.Errorf("failed to parse aggregation response: %w", err)
	}

	terms, ok := response.Aggregations[aggConversionProducts]
	if !ok {
		return nil, fmt.Errorf("aggregation %q missing in response", aggConversionProducts)
	}

	result := make([]models.ConversionRate, 0, len(terms.Buckets))
	for _, bucket := range terms.Buckets {
		rate := models.ConversionRate{ProductID: bucket.Key}
		if bucket.Views != nil {
			rate.Views = bucket.Views.DocCount
		}
		if bucket.Purchases != nil {
			rate.Purchases = bucket.Purchases.DocCount
		}
		if rate.Views > 0 {
			rate.Rate = float64(rate.Purchases) / float64(rate.Views)
		}
		result = append(result, rate)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Rate != result[j].Rate {
			return result[i].Rate > result[j].Rate
		}
		return result[i].ProductID < result[j].ProductID
	})
	return result, nil
}
