package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"ecom-analytics/internal/aggregators"
)

// realtimeHandler exposes the in-memory rolling-window counters. All reads
// are process-local snapshots: approximate, reset on the window timer, and
// empty right after a restart.
type realtimeHandler struct {
	counters *aggregators.RealtimeCounterSet
}

func NewRealtimeHandler(counters *aggregators.RealtimeCounterSet) *realtimeHandler {
	return &realtimeHandler{counters: counters}
}

type realtimeSummaryResponse struct {
	EventCounts map[string]int64 `json:"eventCounts"`
	WindowStart time.Time        `json:"windowStart"`
}

func (h *realtimeHandler) Summary(w http.ResponseWriter, r *http.Request) error {
	return respondJSON(w, http.StatusOK, realtimeSummaryResponse{
		EventCounts: h.counters.EventTypeCounts(),
		WindowStart: h.counters.LastReset(),
	})
}

func (h *realtimeHandler) TopViewed(w http.ResponseWriter, r *http.Request) error {
	return respondJSON(w, http.StatusOK, h.counters.TopViewedProducts(queryInt(r, "limit", defaultAnalyticsLimit)))
}

func (h *realtimeHandler) TopPurchased(w http.ResponseWriter, r *http.Request) error {
	return respondJSON(w, http.StatusOK, h.counters.TopPurchasedProducts(queryInt(r, "limit", defaultAnalyticsLimit)))
}

func (h *realtimeHandler) TopCategories(w http.ResponseWriter, r *http.Request) error {
	return respondJSON(w, http.StatusOK, h.counters.TopCategories(queryInt(r, "limit", defaultAnalyticsLimit)))
}

func (h *realtimeHandler) TopAgents(w http.ResponseWriter, r *http.Request) error {
	return respondJSON(w, http.StatusOK, h.counters.TopAgentFamilies(queryInt(r, "limit", defaultAnalyticsLimit)))
}

func (h *realtimeHandler) ConversionRates(w http.ResponseWriter, r *http.Request) error {
	return respondJSON(w, http.StatusOK, h.counters.TopConversionRates(queryInt(r, "limit", defaultAnalyticsLimit)))
}

func (h *realtimeHandler) ProductConversion(w http.ResponseWriter, r *http.Request) error {
	productID := chi.URLParam(r, "productId")
	return respondJSON(w, http.StatusOK, map[string]any{
		"productId":      productID,
		"conversionRate": h.counters.ConversionRate(productID),
	})
}
