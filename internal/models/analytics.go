package models

// RankedCount is one bucket of a ranking query: a key (product ID or
// category) and its event count, ordered by count descending.
type RankedCount struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// ConversionRate is one bucket of a conversion-leaders query. The rate is
// derived from the two sub-counts in the query layer, never in the store,
// so a zero view count yields 0 instead of a divide-by-zero.
type ConversionRate struct {
	ProductID string  `json:"productId"`
	Views     int64   `json:"views"`
	Purchases int64   `json:"purchases"`
	Rate      float64 `json:"conversionRate"`
}

// EventSummary reports event counts by type from the search store.
type EventSummary struct {
	TotalEvents    int64 `json:"totalEvents"`
	ViewEvents     int64 `json:"viewEvents"`
	ClickEvents    int64 `json:"clickEvents"`
	CartEvents     int64 `json:"cartEvents"`
	PurchaseEvents int64 `json:"purchaseEvents"`
}
