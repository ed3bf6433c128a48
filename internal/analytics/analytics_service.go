package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"ecom-analytics/internal/caches"
	"ecom-analytics/internal/models"
	"ecom-analytics/internal/shared/loggers"
	"ecom-analytics/internal/stores"
)

const (
	opSummary            = "summary"
	opTopViewed          = "top_viewed"
	opTopPurchased       = "top_purchased"
	opTopCategories      = "top_categories"
	opTrendingProducts   = "trending_products"
	opTrendingCategories = "trending_categories"
	opConversionRates    = "conversion_rates"
)

//go:generate mockgen -source=./analytics_service.go -destination=./mocks/analytics_service_mock.go -package=mocks

// AnalyticsService answers historical questions by running aggregations over
// the indexed event stream. Every operation is cached under a key built from
// the operation name and its full parameter tuple, so different parameters
// never collide. Results trail ingestion by the pipeline lag; that is
// inherent, not a bug.
type AnalyticsService interface {
	EventSummary(ctx context.Context) (*models.EventSummary, error)
	TopViewedProducts(ctx context.Context, limit int) ([]models.RankedCount, error)
	TopPurchasedProducts(ctx context.Context, limit int) ([]models.RankedCount, error)
	TopCategories(ctx context.Context, limit int) ([]models.RankedCount, error)
	TrendingProducts(ctx context.Context, hours, limit int) ([]models.RankedCount, error)
	TrendingCategories(ctx context.Context, hours, limit int) ([]models.RankedCount, error)
	ProductConversionRates(ctx context.Context, limit int) ([]models.ConversionRate, error)
}

type analyticsService struct {
	searchStore stores.UserEventSearchStore
	cache       caches.CacheStore
	ttl         time.Duration
}

func NewAnalyticsService(searchStore stores.UserEventSearchStore, cache caches.CacheStore, ttl time.Duration) AnalyticsService {
	return &analyticsService{
		searchStore: searchStore,
		cache:       cache,
		ttl:         ttl,
	}
}

func (s *analyticsService) EventSummary(ctx context.Context) (*models.EventSummary, error) {
	return cachedQuery(ctx, s, caches.KeyAnalytics(opSummary), func() (*models.EventSummary, error) {
		return s.buildSummary(ctx)
	})
}

func (s *analyticsService) TopViewedProducts(ctx context.Context, limit int) ([]models.RankedCount, error) {
	if err := validateLimit(limit); err != nil {
		return nil, err
	}
	key := caches.KeyAnalytics(opTopViewed, caches.Param("limit", limit))
	return cachedQuery(ctx, s, key, func() ([]models.RankedCount, error) {
		return s.searchStore.TopProducts(ctx, models.EventView, limit)
	})
}

func (s *analyticsService) TopPurchasedProducts(ctx context.Context, limit int) ([]models.RankedCount, error) {
	if err := validateLimit(limit); err != nil {
		return nil, err
	}
	key := caches.KeyAnalytics(opTopPurchased, caches.Param("limit", limit))
	return cachedQuery(ctx, s, key, func() ([]models.RankedCount, error) {
		return s.searchStore.TopProducts(ctx, models.EventPurchase, limit)
	})
}

func (s *analyticsService) TopCategories(ctx context.Context, limit int) ([]models.RankedCount, error) {
	if err := validateLimit(limit); err != nil {
		return nil, err
	}
	key := caches.KeyAnalytics(opTopCategories, caches.Param("limit", limit))
	return cachedQuery(ctx, s, key, func() ([]models.RankedCount, error) {
		return s.searchStore.TopCategories(ctx, limit)
	})
}

func (s *analyticsService) TrendingProducts(ctx context.Context, hours, limit int) ([]models.RankedCount, error) {
	if err := validateWindow(hours, limit); err != nil {
		return nil, err
	}
	key := caches.KeyAnalytics(opTrendingProducts, caches.Param("hours", hours), caches.Param("limit", limit))
	return cachedQuery(ctx, s, key, func() ([]models.RankedCount, error) {
		return s.searchStore.TrendingProducts(ctx, hours, limit)
	})
}

func (s *analyticsService) TrendingCategories(ctx context.Context, hours, limit int) ([]models.RankedCount, error) {
	if err := validateWindow(hours, limit); err != nil {
		return nil, err
	}
	key := caches.KeyAnalytics(opTrendingCategories, caches.Param("hours", hours), caches.Param("limit", limit))
	return cachedQuery(ctx, s, key, func() ([]models.RankedCount, error) {
		return s.searchStore.TrendingCategories(ctx, hours, limit)
	})
}

func (s *analyticsService) ProductConversionRates(ctx context.Context, limit int) ([]models.ConversionRate, error) {
	if err := validateLimit(limit); err != nil {
		return nil, err
	}
	key := caches.KeyAnalytics(opConversionRates, caches.Param("limit", limit))
	return cachedQuery(ctx, s, key, func() ([]models.ConversionRate, error) {
		return s.searchStore.ProductConversionRates(ctx, limit)
	})
}

func (s *analyticsService) buildSummary(ctx context.Context) (*models.EventSummary, error) {
	total, err := s.searchStore.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := &models.EventSummary{TotalEvents: total}
	counts := []struct {
		eventType models.EventType
		target    *int64
	}{
		{models.EventView, &summary.ViewEvents},
		{models.EventClick, &summary.ClickEvents},
		{models.EventAddToCart, &summary.CartEvents},
		{models.EventPurchase, &summary.PurchaseEvents},
	}
	for _, c := range counts {
		count, err := s.searchStore.CountByEventType(ctx, c.eventType)
		if err != nil {
			return nil, err
		}
		*c.target = count
	}
	return summary, nil
}

// cachedQuery is the read-through path shared by every analytics operation.
// Cache trouble degrades to the search store and is logged, never returned.
func cachedQuery[T any](ctx context.Context, s *analyticsService, key string, load func() (T, error)) (T, error) {
	var zero T

	raw, err := s.cache.Get(ctx, key)
	if err == nil {
		var cached T
		if unmarshalErr := json.Unmarshal(raw, &cached); unmarshalErr == nil {
			metricAnalyticsCacheTotal.WithLabelValues(cacheHit).Inc()
			return cached, nil
		} else {
			logCacheError(ctx, key, unmarshalErr)
		}
	} else if !errors.Is(err, caches.ErrCacheMiss) {
		logCacheError(ctx, key, err)
	}
	metricAnalyticsCacheTotal.WithLabelValues(cacheMiss).Inc()

	result, err := load()
	if err != nil {
		return zero, errInternalSearchQueryFailed(err)
	}

	if raw, marshalErr := json.Marshal(result); marshalErr != nil {
		logCacheError(ctx, key, marshalErr)
	} else if setErr := s.cache.Set(ctx, key, raw, s.ttl); setErr != nil {
		logCacheError(ctx, key, setErr)
	}

	return result, nil
}

func validateLimit(limit int) error {
	if limit <= 0 {
		return errValidationFailed("limit must be positive", nil)
	}
	return nil
}

func validateWindow(hours, limit int) error {
	if hours <= 0 {
		return errValidationFailed("hours must be positive", nil)
	}
	return validateLimit(limit)
}

func logCacheError(ctx context.Context, key string, err error) {
	loggers.Ctx(ctx).Warn().Err(err).
		Str(loggers.FieldCacheKey, key).
		Msg("cache operation failed")
}
