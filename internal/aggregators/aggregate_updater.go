package aggregators

import (
	"context"
	"errors"
	"time"

	"ecom-analytics/internal/events"
	"ecom-analytics/internal/models"
	"ecom-analytics/internal/shared/loggers"
	"ecom-analytics/internal/shared/metrics"
	"ecom-analytics/internal/shared/svcerrors"
	"ecom-analytics/internal/stores"
)

//go:generate mockgen -source=./aggregate_updater.go -destination=./mocks/aggregate_updater_mock.go -package=mocks

// AggregateUpdater maintains per-product analytics documents in the search
// store. Events flow in from the processing pipeline; canonical product
// changes flow in from the product service. Both paths converge on the same
// read-modify-write of one aggregate document.
type AggregateUpdater interface {
	// ApplyEvent folds one behavioral event into the product's aggregate,
	// creating the aggregate lazily from the canonical product on first touch.
	ApplyEvent(ctx context.Context, event *models.UserEvent) *svcerrors.ServiceError

	// RefreshProduct replaces the aggregate's display fields from the
	// canonical entity while carrying the accumulated counters forward.
	RefreshProduct(ctx context.Context, product *models.Product) *svcerrors.ServiceError

	// RefreshAll rebuilds an aggregate for every canonical product and
	// returns how many were written.
	RefreshAll(ctx context.Context) (int, *svcerrors.ServiceError)

	// OnProductChange consumes the product service's change notifications.
	OnProductChange(ctx context.Context, change *events.ProductChangeEvent)
}

type aggregateUpdater struct {
	aggregateStore stores.ProductAggregateStore
	productStore   stores.ProductStore
}

func NewAggregateUpdater(
	aggregateStore stores.ProductAggregateStore,
	productStore stores.ProductStore,
) AggregateUpdater {
	return &aggregateUpdater{
		aggregateStore: aggregateStore,
		productStore:   productStore,
	}
}

func (u *aggregateUpdater) ApplyEvent(ctx context.Context, event *models.UserEvent) *svcerrors.ServiceError {
	if event.ProductID == "" {
		return nil
	}

	switch event.EventType {
	case models.EventView, models.EventPurchase:
	default:
		return nil
	}

	aggregate, svcErr := u.loadOrCreate(ctx, event.ProductID)
	if svcErr != nil {
		return svcErr
	}
	if aggregate == nil {
		// No canonical product behind this id; nothing to aggregate.
		loggers.Ctx(ctx).Debug().
			Str(loggers.FieldProductId, event.ProductID).
			Msg("skip aggregate update for unknown product")
		return nil
	}

	switch event.EventType {
	case models.EventView:
		aggregate.TotalViews++
	case models.EventPurchase:
		aggregate.TotalPurchases++
		aggregate.TotalRevenue += purchasePrice(event, aggregate)
		purchasedAt := event.Timestamp
		aggregate.LastPurchaseAt = &purchasedAt
	}
	aggregate.RecomputeConversionRate()
	aggregate.UpdatedAt = time.Now().UTC()

	if err := u.aggregateStore.Upsert(ctx, aggregate); err != nil {
		metricAggregateUpdatesTotal.WithLabelValues(triggerEvent, codeInternalAggregateStoreFailed).Inc()
		return errInternalAggregateStoreFailed(err)
	}

	metricAggregateUpdatesTotal.WithLabelValues(triggerEvent, metrics.ValueNoError).Inc()
	return nil
}

func (u *aggregateUpdater) RefreshProduct(ctx context.Context, product *models.Product) *svcerrors.ServiceError {
	refreshed := models.NewProductAggregate(product)

	previous, err := u.aggregateStore.Get(ctx, refreshed.ProductID)
	switch {
	case err == nil:
		refreshed.CopyCountersFrom(previous)
	case errors.Is(err, stores.ErrAggregateNotFound):
		// first write for this product, counters start at zero
	default:
		metricAggregateUpdatesTotal.WithLabelValues(triggerRefresh, codeInternalAggregateStoreFailed).Inc()
		return errInternalAggregateStoreFailed(err)
	}

	refreshed.RecomputeConversionRate()
	refreshed.UpdatedAt = time.Now().UTC()

	if err := u.aggregateStore.Upsert(ctx, refreshed); err != nil {
		metricAggregateUpdatesTotal.WithLabelValues(triggerRefresh, codeInternalAggregateStoreFailed).Inc()
		return errInternalAggregateStoreFailed(err)
	}

	metricAggregateUpdatesTotal.WithLabelValues(triggerRefresh, metrics.ValueNoError).Inc()
	return nil
}

func (u *aggregateUpdater) RefreshAll(ctx context.Context) (int, *svcerrors.ServiceError) {
	products, err := u.productStore.GetAll(ctx)
	if err != nil {
		return 0, errInternalProductLookupFailed(err)
	}

	written := 0
	for _, product := range products {
		if svcErr := u.RefreshProduct(ctx, product); svcErr != nil {
			loggers.Ctx(ctx).Error().Err(svcErr).
				Int64(loggers.FieldProductId, product.ID).
				Msg("reindex: refresh failed for product")
			continue
		}
		written++
	}
	return written, nil
}

// OnProductChange wires the updater into the product service's change
// notifications. Deletes also refresh rather than remove: aggregates outlive
// their canonical entity so historical analytics stay queryable.
func (u *aggregateUpdater) OnProductChange(ctx context.Context, change *events.ProductChangeEvent) {
	if change == nil || change.Product == nil {
		return
	}
	if svcErr := u.RefreshProduct(ctx, change.Product); svcErr != nil {
		loggers.Ctx(ctx).Error().Err(svcErr).
			Int64(loggers.FieldProductId, change.Product.ID).
			Str("change_type", string(change.Type)).
			Msg("aggregate refresh on product change failed")
	}
}

// loadOrCreate fetches the aggregate, falling back to building a fresh one
// from the canonical product. Returns (nil, nil) when the product does not
// exist either.
func (u *aggregateUpdater) loadOrCreate(ctx context.Context, productID string) (*models.ProductAggregate, *svcerrors.ServiceError) {
	aggregate, err := u.aggregateStore.Get(ctx, productID)
	if err == nil {
		return aggregate, nil
	}
	if !errors.Is(err, stores.ErrAggregateNotFound) {
		return nil, errInternalAggregateStoreFailed(err)
	}

	id, ok := models.ParseProductID(productID)
	if !ok {
		return nil, nil
	}
	product, err := u.productStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, stores.ErrProductNotFound) {
			return nil, nil
		}
		return nil, errInternalProductLookupFailed(err)
	}
	return models.NewProductAggregate(product), nil
}

// purchasePrice prefers the price carried on the event, falling back to the
// denormalized catalog price on the aggregate.
func purchasePrice(event *models.UserEvent, aggregate *models.ProductAggregate) float64 {
	if price, ok := event.UnitPrice(); ok {
		return price
	}
	return aggregate.Price
}
