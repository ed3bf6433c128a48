package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	_ "github.com/lib/pq"

	"ecom-analytics/internal/aggregators"
	"ecom-analytics/internal/analytics"
	"ecom-analytics/internal/caches"
	internalhttp "ecom-analytics/internal/http"
	"ecom-analytics/internal/processors"
	"ecom-analytics/internal/products"
	"ecom-analytics/internal/shared/configs"
	"ecom-analytics/internal/shared/loggers"
	"ecom-analytics/internal/stores"
	"ecom-analytics/internal/streams"
	"ecom-analytics/internal/trackers"
)

const clientInitTimeout = 10 * time.Second

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	consumer streams.UserEventConsumer
	producer streams.UserEventProducer
	counters *aggregators.RealtimeCounterSet

	mongoClient *mongo.Client
	postgres    *sql.DB
	redisClient *redis.Client

	backgroundCtx    context.Context
	backgroundCancel context.CancelFunc
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "ecom-analytics").
		Logger()

	initCtx, cancel := context.WithTimeout(context.Background(), clientInitTimeout)
	defer cancel()

	// Durable event store
	mongoClient, err := mongo.Connect(initCtx, options.Client().ApplyURI(config.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	eventStore := stores.NewEventStore(mongoClient.Database(config.Mongo.Database))

	// Canonical product store
	postgres, err := sql.Open("postgres", config.Postgres.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}
	productStore := stores.NewProductStore(postgres)

	// Search / analytics store
	esClient, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: config.Elasticsearch.Addresses})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize elasticsearch client: %w", err)
	}
	searchStore := stores.NewUserEventSearchStore(esClient, config.Elasticsearch.EventIndex)
	aggregateStore := stores.NewProductAggregateStore(esClient, config.Elasticsearch.ProductIndex)

	// Cache layer
	redisClient := redis.NewClient(&redis.Options{Addr: config.Redis.Addr, DB: config.Redis.DB})
	cacheStore := caches.NewRedisCacheStore(redisClient)
	ttl := caches.TTLSet{
		Products:    time.Duration(config.Cache.ProductsTTLMinutes) * time.Minute,
		ProductByID: time.Duration(config.Cache.ProductByIDTTLMinutes) * time.Minute,
		Category:    time.Duration(config.Cache.CategoryTTLMinutes) * time.Minute,
		Popular:     time.Duration(config.Cache.PopularTTLMinutes) * time.Minute,
		Analytics:   time.Duration(config.Cache.AnalyticsTTLMinutes) * time.Minute,
	}

	// Aggregation
	counters := aggregators.NewRealtimeCounterSet()
	updater := aggregators.NewAggregateUpdater(aggregateStore, productStore)

	// Processing pipeline
	processor := processors.NewEventProcessor(eventStore, searchStore, counters, updater)
	consumerLogger := loggers.Component(appLogger, "consumer")
	fetcherFactory := streams.NewKafkaFetcherFactory(config.Kafka.Brokers, config.Kafka.Topic, config.Kafka.GroupID)
	consumer := streams.NewUserEventConsumer(fetcherFactory, processor, streams.ConsumerConfig{
		Workers:     config.Kafka.Workers,
		BatchSize:   config.Kafka.BatchSize,
		MaxRetries:  config.Kafka.MaxRetries,
		RetryDelay:  time.Duration(config.Kafka.RetryDelayMs) * time.Millisecond,
		PollTimeout: time.Duration(config.Kafka.PollTimeoutMs) * time.Millisecond,
	}, consumerLogger)

	// Tracking edge
	writer := streams.NewKafkaWriter(config.Kafka.Brokers, config.Kafka.Topic, time.Duration(config.Kafka.WriteTimeoutMs)*time.Millisecond)
	producer := streams.NewUserEventProducer(writer)
	trackingService := trackers.NewTrackingService(producer)

	// Catalog and analytics services
	productService := products.NewProductService(productStore, cacheStore, ttl, updater)
	analyticsService := analytics.NewAnalyticsService(searchStore, cacheStore, ttl.Analytics)

	// HTTP surface
	httpLogger := loggers.Component(appLogger, "http")
	router := internalhttp.NewRouter(internalhttp.RouterDeps{
		TrackingService:  trackingService,
		EventStore:       eventStore,
		ProductService:   productService,
		AnalyticsService: analyticsService,
		AggregateStore:   aggregateStore,
		Counters:         counters,
		Updater:          updater,
		Cache:            cacheStore,
	}, httpLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:      config,
		appLogger:   appLogger,
		server:      server,
		consumer:    consumer,
		producer:    producer,
		counters:    counters,
		mongoClient: mongoClient,
		postgres:    postgres,
		redisClient: redisClient,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting ecom-analytics service on port %d (log_level=%s, topic=%s, workers=%d)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Kafka.Topic,
			app.config.Kafka.Workers)

	// start background consumers and the realtime window timer
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.consumer.Start(app.backgroundCtx)
	go app.runCounterReset(app.backgroundCtx)

	return app.server.ListenAndServe()
}

// runCounterReset clears the realtime counters every window.
func (app *App) runCounterReset(ctx context.Context) {
	window := time.Duration(app.config.Realtime.WindowHours) * time.Hour
	ticker := time.NewTicker(window)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			app.counters.Reset()
			app.appLogger.Info().Msg("realtime counters reset")
		}
	}
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Cancel background consumers and wait for them to drain
	if app.backgroundCancel != nil {
		app.backgroundCancel()
	}
	app.consumer.Stop()
	app.appLogger.Info().Msg("Background consumers stopped")

	// 3) Flush the producer
	if err := app.producer.Close(); err != nil {
		app.appLogger.Error().Err(err).Msg("failed to close producer")
	}

	// 4) Close clients
	if err := app.mongoClient.Disconnect(ctx); err != nil {
		app.appLogger.Error().Err(err).Msg("failed to disconnect mongo client")
	}
	if err := app.postgres.Close(); err != nil {
		app.appLogger.Error().Err(err).Msg("failed to close postgres pool")
	}
	if err := app.redisClient.Close(); err != nil {
		app.appLogger.Error().Err(err).Msg("failed to close redis client")
	}

	return nil
}
