package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ecom-analytics/internal/analytics"
	"ecom-analytics/internal/shared/svcerrors"
	"ecom-analytics/internal/stores"
)

const (
	defaultAnalyticsLimit = 10
	defaultTrendingHours  = 24

	codeAggregateNotFound = "ANL_1001"
)

type analyticsHandler struct {
	analyticsService analytics.AnalyticsService
	aggregateStore   stores.ProductAggregateStore
}

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService, aggregateStore stores.ProductAggregateStore) *analyticsHandler {
	return &analyticsHandler{
		analyticsService: analyticsService,
		aggregateStore:   aggregateStore,
	}
}

func (h *analyticsHandler) Summary(w http.ResponseWriter, r *http.Request) error {
	summary, err := h.analyticsService.EventSummary(r.Context())
	if err != nil {
		return err
	}
	return respondJSON(w, http.StatusOK, summary)
}

func (h *analyticsHandler) TopViewed(w http.ResponseWriter, r *http.Request) error {
	ranked, err := h.analyticsService.TopViewedProducts(r.Context(), queryInt(r, "limit", defaultAnalyticsLimit))
	if err != nil {
		return err
	}
	return respondJSON(w, http.StatusOK, ranked)
}

func (h *analyticsHandler) TopPurchased(w http.ResponseWriter, r *http.Request) error {
	ranked, err := h.analyticsService.TopPurchasedProducts(r.Context(), queryInt(r, "limit", defaultAnalyticsLimit))
	if err != nil {
		return err
	}
	return respondJSON(w, http.StatusOK, ranked)
}

func (h *analyticsHandler) TopCategories(w http.ResponseWriter, r *http.Request) error {
	ranked, err := h.analyticsService.TopCategories(r.Context(), queryInt(r, "limit", defaultAnalyticsLimit))
	if err != nil {
		return err
	}
	return respondJSON(w, http.StatusOK, ranked)
}

func (h *analyticsHandler) TrendingProducts(w http.ResponseWriter, r *http.Request) error {
	ranked, err := h.analyticsService.TrendingProducts(r.Context(),
		queryInt(r, "hours", defaultTrendingHours), queryInt(r, "limit", defaultAnalyticsLimit))
	if err != nil {
		return err
	}
	return respondJSON(w, http.StatusOK, ranked)
}

func (h *analyticsHandler) TrendingCategories(w http.ResponseWriter, r *http.Request) error {
	ranked, err := h.analyticsService.TrendingCategories(r.Context(),
		queryInt(r, "hours", defaultTrendingHours), queryInt(r, "limit", defaultAnalyticsLimit))
	if err != nil {
		return err
	}
	return respondJSON(w, http.StatusOK, ranked)
}

func (h *analyticsHandler) ConversionRates(w http.ResponseWriter, r *http.Request) error {
	rates, err := h.analyticsService.ProductConversionRates(r.Context(), queryInt(r, "limit", defaultAnalyticsLimit))
	if err != nil {
		return err
	}
	return respondJSON(w, http.StatusOK, rates)
}

// ProductAggregate serves the per-product analytics document maintained by
// the aggregate updater.
func (h *analyticsHandler) ProductAggregate(w http.ResponseWriter, r *http.Request) error {
	productID := chi.URLParam(r, "productId")
	aggregate, err := h.aggregateStore.Get(r.Context(), productID)
	if err != nil {
		if errors.Is(err, stores.ErrAggregateNotFound) {
			return svcerrors.NewNotFoundError(codeAggregateNotFound, "no aggregate for product "+productID, err)
		}
		return err
	}
	return respondJSON(w, http.StatusOK, aggregate)
}
