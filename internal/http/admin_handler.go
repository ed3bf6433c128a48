package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"ecom-analytics/internal/aggregators"
	"ecom-analytics/internal/caches"
	"ecom-analytics/internal/shared/loggers"
	"ecom-analytics/internal/shared/svcerrors"
	"ecom-analytics/internal/stores"
)

const codeInternalAggregateDeleteFailed = "ADM_9000"

// adminHandler hosts operator endpoints.
type adminHandler struct {
	updater        aggregators.AggregateUpdater
	aggregateStore stores.ProductAggregateStore
	cache          caches.CacheStore
}

func NewAdminHandler(updater aggregators.AggregateUpdater, aggregateStore stores.ProductAggregateStore, cache caches.CacheStore) *adminHandler {
	return &adminHandler{updater: updater, aggregateStore: aggregateStore, cache: cache}
}

// Reindex rebuilds every product aggregate from the canonical catalog,
// preserving accumulated counters, then drops the cached analytics results so
// readers see the rebuilt documents.
func (h *adminHandler) Reindex(w http.ResponseWriter, r *http.Request) error {
	indexed, svcErr := h.updater.RefreshAll(r.Context())
	if svcErr != nil {
		return svcErr
	}

	// stale cached analytics would mask the rebuild
	h.evictAnalyticsCache(r)

	return respondJSON(w, http.StatusOK, map[string]int{"indexed": indexed})
}

// DeleteAggregate removes a product aggregate document. Aggregates outlive
// their canonical product, so pruning one is an explicit operator action.
func (h *adminHandler) DeleteAggregate(w http.ResponseWriter, r *http.Request) error {
	productID := chi.URLParam(r, "productId")
	if productID == "" {
		return errInvalidPathParam("productId", nil)
	}

	if err := h.aggregateStore.Delete(r.Context(), productID); err != nil {
		return svcerrors.NewInternalError(codeInternalAggregateDeleteFailed, err)
	}

	h.evictAnalyticsCache(r)

	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *adminHandler) evictAnalyticsCache(r *http.Request) {
	if err := h.cache.DeletePrefix(r.Context(), caches.PrefixAnalytics); err != nil {
		loggers.Ctx(r.Context()).Warn().Err(err).
			Str(loggers.FieldCacheKey, caches.PrefixAnalytics).
			Msg("failed to evict analytics cache")
	}
}
