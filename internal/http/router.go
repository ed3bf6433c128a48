package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"ecom-analytics/internal/aggregators"
	"ecom-analytics/internal/analytics"
	"ecom-analytics/internal/caches"
	"ecom-analytics/internal/products"
	"ecom-analytics/internal/shared/loggers"
	"ecom-analytics/internal/shared/metrics"
	"ecom-analytics/internal/stores"
	"ecom-analytics/internal/trackers"
)

// RouterDeps carries everything the HTTP surface needs.
type RouterDeps struct {
	TrackingService  trackers.TrackingService
	EventStore       stores.EventStore
	ProductService   products.ProductService
	AnalyticsService analytics.AnalyticsService
	AggregateStore   stores.ProductAggregateStore
	Counters         *aggregators.RealtimeCounterSet
	Updater          aggregators.AggregateUpdater
	Cache            caches.CacheStore
}

// NewRouter creates and configures the HTTP router.
func NewRouter(deps RouterDeps, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	trackHandler := NewTrackEventHandler(deps.TrackingService)
	eventHandler := NewEventQueryHandler(deps.EventStore)
	productHandler := NewProductHandler(deps.ProductService)
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsService, deps.AggregateStore)
	realtimeHandler := NewRealtimeHandler(deps.Counters)
	adminHandler := NewAdminHandler(deps.Updater, deps.AggregateStore, deps.Cache)

	handle := func(f func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc {
		return errorHandlingAdapter(appHandlerFunc(f))
	}

	router.Post("/events", errorHandlingAdapter(trackHandler))
	router.Route("/events", func(r chi.Router) {
		r.Get("/user/{userId}", handle(eventHandler.ByUser))
		r.Get("/session/{sessionId}", handle(eventHandler.BySession))
		r.Get("/product/{productId}", handle(eventHandler.ByProduct))
	})

	router.Route("/products", func(r chi.Router) {
		r.Get("/", handle(productHandler.List))
		r.Post("/", handle(productHandler.Create))
		r.Get("/popular", handle(productHandler.Popular))
		r.Get("/low-stock", handle(productHandler.LowStock))
		r.Get("/{id}", handle(productHandler.Get))
		r.Put("/{id}", handle(productHandler.Update))
		r.Delete("/{id}", handle(productHandler.Delete))
		r.Put("/{id}/stock", handle(productHandler.Stock))
		r.Get("/{id}/in-stock", handle(productHandler.InStock))
	})

	router.Route("/analytics", func(r chi.Router) {
		r.Get("/summary", handle(analyticsHandler.Summary))
		r.Get("/products/top-viewed", handle(analyticsHandler.TopViewed))
		r.Get("/products/top-purchased", handle(analyticsHandler.TopPurchased))
		r.Get("/categories/top", handle(analyticsHandler.TopCategories))
		r.Get("/products/trending", handle(analyticsHandler.TrendingProducts))
		r.Get("/categories/trending", handle(analyticsHandler.TrendingCategories))
		r.Get("/products/conversion-rates", handle(analyticsHandler.ConversionRates))
		r.Get("/products/{productId}", handle(analyticsHandler.ProductAggregate))
	})

	router.Route("/realtime", func(r chi.Router) {
		r.Get("/summary", handle(realtimeHandler.Summary))
		r.Get("/products/top-viewed", handle(realtimeHandler.TopViewed))
		r.Get("/products/top-purchased", handle(realtimeHandler.TopPurchased))
		r.Get("/categories/top", handle(realtimeHandler.TopCategories))
		r.Get("/agents/top", handle(realtimeHandler.TopAgents))
		r.Get("/products/conversion-rates", handle(realtimeHandler.ConversionRates))
		r.Get("/products/{productId}/conversion", handle(realtimeHandler.ProductConversion))
	})

	router.Post("/admin/reindex", handle(adminHandler.Reindex))
	router.Delete("/admin/aggregates/{productId}", handle(adminHandler.DeleteAggregate))

	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
