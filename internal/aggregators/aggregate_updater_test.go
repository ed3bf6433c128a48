package aggregators_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"ecom-analytics/internal/aggregators"
	"ecom-analytics/internal/models"
	"ecom-analytics/internal/stores"
	storemocks "ecom-analytics/internal/stores/mocks"
)

func TestApplyEvent_ViewThenPurchase(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	aggregateStore := storemocks.NewMockProductAggregateStore(ctrl)
	productStore := storemocks.NewMockProductStore(ctrl)
	updater := aggregators.NewAggregateUpdater(aggregateStore, productStore)

	ctx := context.Background()
	product := &models.Product{ID: 17, Name: "Widget", Price: 20.0, Category: "electronics"}

	// first event: no aggregate yet, lazily created from the canonical product
	aggregateStore.EXPECT().Get(ctx, "17").Return(nil, stores.ErrAggregateNotFound)
	productStore.EXPECT().GetByID(ctx, int64(17)).Return(product, nil)

	var afterView *models.ProductAggregate
	aggregateStore.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a *models.ProductAggregate) error {
			afterView = a
			return nil
		})

	svcErr := updater.ApplyEvent(ctx, &models.UserEvent{ID: "e1", EventType: models.EventView, ProductID: "17"})
	require.Nil(t, svcErr)
	require.NotNil(t, afterView)
	assert.Equal(t, int64(1), afterView.TotalViews)
	assert.Zero(t, afterView.TotalPurchases)
	assert.Zero(t, afterView.ConversionRate) // purchases/views = 0/1

	// second event: purchase folds revenue and recomputes the rate
	purchasedAt := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	aggregateStore.EXPECT().Get(ctx, "17").Return(afterView, nil)

	var afterPurchase *models.ProductAggregate
	aggregateStore.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a *models.ProductAggregate) error {
			afterPurchase = a
			return nil
		})

	svcErr = updater.ApplyEvent(ctx, &models.UserEvent{
		ID:        "e2",
		EventType: models.EventPurchase,
		ProductID: "17",
		Timestamp: purchasedAt,
		Metadata:  map[string]any{"price": 20.0},
	})
	require.Nil(t, svcErr)
	require.NotNil(t, afterPurchase)
	assert.Equal(t, int64(1), afterPurchase.TotalViews)
	assert.Equal(t, int64(1), afterPurchase.TotalPurchases)
	assert.Equal(t, 20.0, afterPurchase.TotalRevenue)
	assert.InDelta(t, 1.0, afterPurchase.ConversionRate, 1e-9)
	require.NotNil(t, afterPurchase.LastPurchaseAt)
	assert.Equal(t, purchasedAt, *afterPurchase.LastPurchaseAt)
}

func TestApplyEvent_PurchaseWithoutEventPrice_UsesAggregatePrice(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	aggregateStore := storemocks.NewMockProductAggregateStore(ctrl)
	productStore := storemocks.NewMockProductStore(ctrl)
	updater := aggregators.NewAggregateUpdater(aggregateStore, productStore)

	ctx := context.Background()
	existing := &models.ProductAggregate{ProductID: "17", Price: 25.0}
	aggregateStore.EXPECT().Get(ctx, "17").Return(existing, nil)

	var written *models.ProductAggregate
	aggregateStore.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a *models.ProductAggregate) error {
			written = a
			return nil
		})

	svcErr := updater.ApplyEvent(ctx, &models.UserEvent{ID: "e1", EventType: models.EventPurchase, ProductID: "17"})
	require.Nil(t, svcErr)
	assert.Equal(t, 25.0, written.TotalRevenue)
}

func TestApplyEvent_NonCountedTypesAreNoOps(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	aggregateStore := storemocks.NewMockProductAggregateStore(ctrl)
	productStore := storemocks.NewMockProductStore(ctrl)
	updater := aggregators.NewAggregateUpdater(aggregateStore, productStore)

	ctx := context.Background()
	for _, eventType := range []models.EventType{models.EventClick, models.EventAddToCart, models.EventSearch} {
		svcErr := updater.ApplyEvent(ctx, &models.UserEvent{ID: "e1", EventType: eventType, ProductID: "17"})
		assert.Nil(t, svcErr)
	}
}

func TestApplyEvent_UnknownProductIsSkipped(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	aggregateStore := storemocks.NewMockProductAggregateStore(ctrl)
	productStore := storemocks.NewMockProductStore(ctrl)
	updater := aggregators.NewAggregateUpdater(aggregateStore, productStore)

	ctx := context.Background()
	aggregateStore.EXPECT().Get(ctx, "99").Return(nil, stores.ErrAggregateNotFound)
	productStore.EXPECT().GetByID(ctx, int64(99)).Return(nil, stores.ErrProductNotFound)

	svcErr := updater.ApplyEvent(ctx, &models.UserEvent{ID: "e1", EventType: models.EventView, ProductID: "99"})
	assert.Nil(t, svcErr)
}

func TestApplyEvent_StoreFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	aggregateStore := storemocks.NewMockProductAggregateStore(ctrl)
	productStore := storemocks.NewMockProductStore(ctrl)
	updater := aggregators.NewAggregateUpdater(aggregateStore, productStore)

	ctx := context.Background()
	aggregateStore.EXPECT().Get(ctx, "17").Return(nil, errors.New("search store down"))

	svcErr := updater.ApplyEvent(ctx, &models.UserEvent{ID: "e1", EventType: models.EventView, ProductID: "17"})
	require.NotNil(t, svcErr)
	assert.Equal(t, "AGG_9000", svcErr.Code)
}

func TestRefreshProduct_PreservesCounters(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	aggregateStore := storemocks.NewMockProductAggregateStore(ctrl)
	productStore := storemocks.NewMockProductStore(ctrl)
	updater := aggregators.NewAggregateUpdater(aggregateStore, productStore)

	ctx := context.Background()
	aggregateStore.EXPECT().Get(ctx, "17").Return(&models.ProductAggregate{
		ProductID:      "17",
		Name:           "Widget",
		Price:          20.0,
		TotalViews:     10,
		TotalPurchases: 2,
		TotalRevenue:   40.0,
	}, nil)

	var written *models.ProductAggregate
	aggregateStore.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a *models.ProductAggregate) error {
			written = a
			return nil
		})

	svcErr := updater.RefreshProduct(ctx, &models.Product{ID: 17, Name: "Widget v2", Price: 25.0, Category: "gadgets"})
	require.Nil(t, svcErr)
	assert.Equal(t, "Widget v2", written.Name)
	assert.Equal(t, 25.0, written.Price)
	assert.Equal(t, int64(10), written.TotalViews)
	assert.Equal(t, int64(2), written.TotalPurchases)
	assert.Equal(t, 40.0, written.TotalRevenue)
	assert.InDelta(t, 0.2, written.ConversionRate, 1e-9)
}

func TestRefreshAll_CountsSuccessfulWrites(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	aggregateStore := storemocks.NewMockProductAggregateStore(ctrl)
	productStore := storemocks.NewMockProductStore(ctrl)
	updater := aggregators.NewAggregateUpdater(aggregateStore, productStore)

	ctx := context.Background()
	productStore.EXPECT().GetAll(ctx).Return([]*models.Product{
		{ID: 1, Name: "A"},
		{ID: 2, Name: "B"},
	}, nil)

	aggregateStore.EXPECT().Get(ctx, "1").Return(nil, stores.ErrAggregateNotFound)
	aggregateStore.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
	aggregateStore.EXPECT().Get(ctx, "2").Return(nil, stores.ErrAggregateNotFound)
	aggregateStore.EXPECT().Upsert(ctx, gomock.Any()).Return(errors.New("write rejected"))

	written, svcErr := updater.RefreshAll(ctx)
	require.Nil(t, svcErr)
	assert.Equal(t, 1, written)
}
