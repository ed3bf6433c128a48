package products

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"ecom-analytics/internal/caches"
	"ecom-analytics/internal/events"
	"ecom-analytics/internal/models"
	"ecom-analytics/internal/shared/loggers"
	"ecom-analytics/internal/shared/metrics"
	"ecom-analytics/internal/stores"
)

//go:generate mockgen -source=./product_service.go -destination=./mocks/product_service_mock.go -package=mocks

// ChangeListener observes committed product mutations. Listeners run after
// the store write succeeded and must not fail the mutation; they handle their
// own errors.
type ChangeListener interface {
	OnProductChange(ctx context.Context, change *events.ProductChangeEvent)
}

// ProductService owns the canonical catalog. Reads go through the cache
// layer; every committed mutation evicts exactly the keys it invalidates and
// notifies the registered change listeners.
type ProductService interface {
	GetAll(ctx context.Context) ([]*models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	GetByCategory(ctx context.Context, category string) ([]*models.Product, error)
	// GetMostPopular ranks products by total ordered quantity.
	GetMostPopular(ctx context.Context, limit int) ([]*models.Product, error)
	GetLowStock(ctx context.Context, threshold int) ([]*models.Product, error)

	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	Update(ctx context.Context, id int64, product *models.Product) (*models.Product, error)
	Delete(ctx context.Context, id int64) error

	// SetStock replaces the stock level; AdjustStock applies a delta. Both
	// reject a resulting negative stock synchronously.
	SetStock(ctx context.Context, id int64, quantity int) (*models.Product, error)
	AdjustStock(ctx context.Context, id int64, delta int) (*models.Product, error)
	IsInStock(ctx context.Context, id int64) (bool, error)
}

type productService struct {
	store     stores.ProductStore
	cache     caches.CacheStore
	ttl       caches.TTLSet
	listeners []ChangeListener
}

func NewProductService(store stores.ProductStore, cache caches.CacheStore, ttl caches.TTLSet, listeners ...ChangeListener) ProductService {
	return &productService{
		store:     store,
		cache:     cache,
		ttl:       ttl,
		listeners: listeners,
	}
}

func (s *productService) GetAll(ctx context.Context) ([]*models.Product, error) {
	return cachedProducts(ctx, s, caches.KeyAllProducts(), s.ttl.Products, func() ([]*models.Product, error) {
		return s.store.GetAll(ctx)
	})
}

func (s *productService) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	key := caches.KeyProductByID(id)

	var cached models.Product
	if hit := s.cacheGet(ctx, key, &cached); hit {
		return &cached, nil
	}

	product, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, stores.ErrProductNotFound) {
			return nil, errProductNotFound(id, err)
		}
		return nil, errInternalProductStoreFailed(err)
	}

	s.cacheSet(ctx, key, product, s.ttl.ProductByID)
	return product, nil
}

func (s *productService) GetByCategory(ctx context.Context, category string) ([]*models.Product, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, errValidationFailed("category is required", nil)
	}
	return cachedProducts(ctx, s, caches.KeyCategory(category), s.ttl.Category, func() ([]*models.Product, error) {
		return s.store.GetByCategory(ctx, category)
	})
}

func (s *productService) GetMostPopular(ctx context.Context, limit int) ([]*models.Product, error) {
	if limit <= 0 {
		return nil, errValidationFailed("limit must be positive", nil)
	}
	return cachedProducts(ctx, s, caches.KeyPopular(limit), s.ttl.Popular, func() ([]*models.Product, error) {
		ids, err := s.store.MostOrderedIDs(ctx, limit)
		if err != nil {
			return nil, err
		}
		ranked := make([]*models.Product, 0, len(ids))
		for _, id := range ids {
			product, err := s.store.GetByID(ctx, id)
			if err != nil {
				if errors.Is(err, stores.ErrProductNotFound) {
					// product deleted between ranking and lookup
					continue
				}
				return nil, err
			}
			ranked = append(ranked, product)
		}
		return ranked, nil
	})
}

func (s *productService) GetLowStock(ctx context.Context, threshold int) ([]*models.Product, error) {
	if threshold < 0 {
		return nil, errValidationFailed("threshold must not be negative", nil)
	}
	low, err := s.store.GetLowStock(ctx, threshold)
	if err != nil {
		return nil, errInternalProductStoreFailed(err)
	}
	return low, nil
}

func (s *productService) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now

	created, err := s.store.Create(ctx, product)
	if err != nil {
		return nil, errInternalProductStoreFailed(err)
	}

	s.cacheDelete(ctx, caches.KeyAllProducts())
	s.cacheDelete(ctx, caches.KeyCategory(created.Category))
	s.cacheDeletePrefix(ctx, caches.PrefixPopular)
	s.cacheSet(ctx, caches.KeyProductByID(created.ID), created, s.ttl.ProductByID)

	s.notify(ctx, &events.ProductChangeEvent{
		Type:        events.ProductCreated,
		Product:     created,
		OldCategory: created.Category,
	})

	metricProductMutationsTotal.WithLabelValues(opCreate, metrics.ValueNoError).Inc()
	return created, nil
}

func (s *productService) Update(ctx context.Context, id int64, product *models.Product) (*models.Product, error) {
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	// The pre-write entity supplies the old category for eviction; after the
	// write it is gone.
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, stores.ErrProductNotFound) {
			return nil, errProductNotFound(id, err)
		}
		return nil, errInternalProductStoreFailed(err)
	}

	updated := *product
	updated.ID = id
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	if err := s.store.Update(ctx, &updated); err != nil {
		if errors.Is(err, stores.ErrProductNotFound) {
			return nil, errProductNotFound(id, err)
		}
		return nil, errInternalProductStoreFailed(err)
	}

	s.evictAfterWrite(ctx, &updated, existing.Category, false)

	s.notify(ctx, &events.ProductChangeEvent{
		Type:        events.ProductUpdated,
		Product:     &updated,
		OldCategory: existing.Category,
	})

	metricProductMutationsTotal.WithLabelValues(opUpdate, metrics.ValueNoError).Inc()
	return &updated, nil
}

func (s *productService) Delete(ctx context.Context, id int64) error {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, stores.ErrProductNotFound) {
			return errProductNotFound(id, err)
		}
		return errInternalProductStoreFailed(err)
	}

	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, stores.ErrProductNotFound) {
			return errProductNotFound(id, err)
		}
		return errInternalProductStoreFailed(err)
	}

	s.evictAfterWrite(ctx, existing, existing.Category, true)

	s.notify(ctx, &events.ProductChangeEvent{
		Type:        events.ProductDeleted,
		Product:     existing,
		OldCategory: existing.Category,
	})

	metricProductMutationsTotal.WithLabelValues(opDelete, metrics.ValueNoError).Inc()
	return nil
}

func (s *productService) SetStock(ctx context.Context, id int64, quantity int) (*models.Product, error) {
	if quantity < 0 {
		return nil, errNegativeStock(quantity)
	}
	return s.writeStock(ctx, id, func(*models.Product) int { return quantity })
}

func (s *productService) AdjustStock(ctx context.Context, id int64, delta int) (*models.Product, error) {
	return s.writeStock(ctx, id, func(p *models.Product) int { return p.StockQuantity + delta })
}

func (s *productService) IsInStock(ctx context.Context, id int64) (bool, error) {
	product, err := s.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return product.StockQuantity > 0, nil
}

func (s *productService) writeStock(ctx context.Context, id int64, nextStock func(*models.Product) int) (*models.Product, error) {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, stores.ErrProductNotFound) {
			return nil, errProductNotFound(id, err)
		}
		return nil, errInternalProductStoreFailed(err)
	}

	quantity := nextStock(existing)
	if quantity < 0 {
		return nil, errNegativeStock(quantity)
	}

	updated := *existing
	updated.StockQuantity = quantity
	updated.UpdatedAt = time.Now().UTC()

	if err := s.store.Update(ctx, &updated); err != nil {
		if errors.Is(err, stores.ErrProductNotFound) {
			return nil, errProductNotFound(id, err)
		}
		return nil, errInternalProductStoreFailed(err)
	}

	s.evictAfterWrite(ctx, &updated, existing.Category, false)

	s.notify(ctx, &events.ProductChangeEvent{
		Type:        events.ProductUpdated,
		Product:     &updated,
		OldCategory: existing.Category,
	})

	metricProductMutationsTotal.WithLabelValues(opStock, metrics.ValueNoError).Inc()
	return &updated, nil
}

// evictAfterWrite drops every cache entry the mutation may have invalidated:
// the full catalog, the old and new category lists, all popular-N rankings,
// and the by-id entry. For non-deletes the by-id entry is refreshed in place
// instead of evicted.
func (s *productService) evictAfterWrite(ctx context.Context, product *models.Product, oldCategory string, deleted bool) {
	s.cacheDelete(ctx, caches.KeyAllProducts())
	s.cacheDelete(ctx, caches.KeyCategory(oldCategory))
	if product.Category != oldCategory {
		s.cacheDelete(ctx, caches.KeyCategory(product.Category))
	}
	s.cacheDeletePrefix(ctx, caches.PrefixPopular)

	if deleted {
		s.cacheDelete(ctx, caches.KeyProductByID(product.ID))
	} else {
		s.cacheSet(ctx, caches.KeyProductByID(product.ID), product, s.ttl.ProductByID)
	}
}

func (s *productService) notify(ctx context.Context, change *events.ProductChangeEvent) {
	for _, listener := range s.listeners {
		listener.OnProductChange(ctx, change)
	}
}

func validateProduct(product *models.Product) error {
	if product == nil {
		return errValidationFailed("product payload is required", nil)
	}
	if strings.TrimSpace(product.Name) == "" {
		return errValidationFailed("name is required", nil)
	}
	if strings.TrimSpace(product.Category) == "" {
		return errValidationFailed("category is required", nil)
	}
	if product.Price < 0 {
		return errValidationFailed("price must not be negative", nil)
	}
	if product.StockQuantity < 0 {
		return errNegativeStock(product.StockQuantity)
	}
	return nil
}

// cachedProducts is the read-through path for product list endpoints. Cache
// failures degrade to the store; they are logged, never returned.
func cachedProducts(ctx context.Context, s *productService, key string, ttl time.Duration, load func() ([]*models.Product, error)) ([]*models.Product, error) {
	var cached []*models.Product
	if hit := s.cacheGet(ctx, key, &cached); hit {
		return cached, nil
	}

	loaded, err := load()
	if err != nil {
		return nil, errInternalProductStoreFailed(err)
	}

	s.cacheSet(ctx, key, loaded, ttl)
	return loaded, nil
}

func (s *productService) cacheGet(ctx context.Context, key string, target any) bool {
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, caches.ErrCacheMiss) {
			s.logCacheError(ctx, key, err)
		}
		metricProductCacheTotal.WithLabelValues(cacheMiss).Inc()
		return false
	}
	if err := json.Unmarshal(raw, target); err != nil {
		s.logCacheError(ctx, key, err)
		metricProductCacheTotal.WithLabelValues(cacheMiss).Inc()
		return false
	}
	metricProductCacheTotal.WithLabelValues(cacheHit).Inc()
	return true
}

func (s *productService) cacheSet(ctx context.Context, key string, value any, ttl time.Duration) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.logCacheError(ctx, key, err)
		return
	}
	if err := s.cache.Set(ctx, key, raw, ttl); err != nil {
		s.logCacheError(ctx, key, err)
	}
}

func (s *productService) cacheDelete(ctx context.Context, key string) {
	if err := s.cache.Delete(ctx, key); err != nil {
		s.logCacheError(ctx, key, err)
	}
}

func (s *productService) cacheDeletePrefix(ctx context.Context, prefix string) {
	if err := s.cache.DeletePrefix(ctx, prefix); err != nil {
		s.logCacheError(ctx, prefix, err)
	}
}

func (s *productService) logCacheError(ctx context.Context, key string, err error) {
	loggers.Ctx(ctx).Warn().Err(err).
		Str(loggers.FieldCacheKey, key).
		Msg("cache operation failed")
}
