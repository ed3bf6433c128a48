package processors_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"ecom-analytics/internal/aggregators"
	aggregatormocks "ecom-analytics/internal/aggregators/mocks"
	"ecom-analytics/internal/models"
	"ecom-analytics/internal/processors"
	"ecom-analytics/internal/shared/svcerrors"
	"ecom-analytics/internal/stores"
	storemocks "ecom-analytics/internal/stores/mocks"
)

type processorFixture struct {
	eventStore  *storemocks.MockEventStore
	searchStore *storemocks.MockUserEventSearchStore
	counters    *aggregators.RealtimeCounterSet
	updater     *aggregatormocks.MockAggregateUpdater
	processor   processors.EventProcessor
}

func newProcessorFixture(t *testing.T) *processorFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &processorFixture{
		eventStore:  storemocks.NewMockEventStore(ctrl),
		searchStore: storemocks.NewMockUserEventSearchStore(ctrl),
		counters:    aggregators.NewRealtimeCounterSet(),
		updater:     aggregatormocks.NewMockAggregateUpdater(ctrl),
	}
	f.processor = processors.NewEventProcessor(f.eventStore, f.searchStore, f.counters, f.updater)
	return f
}

func eventPayload(t *testing.T, event *models.UserEvent) []byte {
	t.Helper()
	payload, err := json.Marshal(event)
	require.NoError(t, err)
	return payload
}

func TestProcess_HappyPath(t *testing.T) {
	t.Parallel()

	f := newProcessorFixture(t)
	ctx := context.Background()
	event := &models.UserEvent{ID: "e1", SessionID: "s1", EventType: models.EventView, ProductID: "17"}

	f.eventStore.EXPECT().Insert(ctx, gomock.Any()).Return(nil)
	f.searchStore.EXPECT().Index(ctx, gomock.Any()).Return(nil)
	f.updater.EXPECT().ApplyEvent(ctx, gomock.Any()).Return(nil)

	err := f.processor.Process(ctx, eventPayload(t, event))
	require.NoError(t, err)
	assert.Equal(t, int64(1), f.counters.EventTypeCounts()["VIEW"])
}

func TestProcess_MalformedPayload_NotRetryable(t *testing.T) {
	t.Parallel()

	f := newProcessorFixture(t)

	err := f.processor.Process(context.Background(), []byte(`{not json`))
	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "PRC_1000", svcErr.Code)
	assert.Equal(t, "invalid_argument", svcErr.Category)
}

func TestProcess_UnknownEventType_NotRetryable(t *testing.T) {
	t.Parallel()

	f := newProcessorFixture(t)

	err := f.processor.Process(context.Background(), []byte(`{"id":"e1","eventType":"SHIPPED"}`))
	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "PRC_1000", svcErr.Code)
}

func TestProcess_DurableStoreFailure_IsReturned(t *testing.T) {
	t.Parallel()

	f := newProcessorFixture(t)
	ctx := context.Background()
	event := &models.UserEvent{ID: "e1", SessionID: "s1", EventType: models.EventView, ProductID: "17"}

	f.eventStore.EXPECT().Insert(ctx, gomock.Any()).Return(errors.New("mongo down"))
	f.searchStore.EXPECT().Index(ctx, gomock.Any()).Return(nil)
	f.updater.EXPECT().ApplyEvent(ctx, gomock.Any()).Return(nil)

	err := f.processor.Process(ctx, eventPayload(t, event))
	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "PRC_9000", svcErr.Code)
}

func TestProcess_DurableStoreFailure_SearchStillIndexed(t *testing.T) {
	t.Parallel()

	f := newProcessorFixture(t)
	ctx := context.Background()
	event := &models.UserEvent{ID: "e1", SessionID: "s1", EventType: models.EventView, ProductID: "17"}

	f.eventStore.EXPECT().Insert(ctx, gomock.Any()).Return(errors.New("mongo down"))
	indexed := false
	f.searchStore.EXPECT().Index(ctx, gomock.Any()).
		DoAndReturn(func(context.Context, *models.UserEvent) error {
			indexed = true
			return nil
		})
	f.updater.EXPECT().ApplyEvent(ctx, gomock.Any()).Return(nil)

	err := f.processor.Process(ctx, eventPayload(t, event))
	require.Error(t, err)
	assert.True(t, indexed, "search store write must not depend on the durable store")
	assert.Equal(t, int64(1), f.counters.EventTypeCounts()["VIEW"])
}

func TestProcess_BothStoresFailing_ReturnsDurableError(t *testing.T) {
	t.Parallel()

	f := newProcessorFixture(t)
	ctx := context.Background()
	event := &models.UserEvent{ID: "e1", SessionID: "s1", EventType: models.EventPurchase, ProductID: "17"}

	f.eventStore.EXPECT().Insert(ctx, gomock.Any()).Return(errors.New("mongo down"))
	f.searchStore.EXPECT().Index(ctx, gomock.Any()).Return(errors.New("es down"))
	f.updater.EXPECT().ApplyEvent(ctx, gomock.Any()).Return(nil)

	err := f.processor.Process(ctx, eventPayload(t, event))
	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "PRC_9000", svcErr.Code)
}

func TestProcess_SearchStoreFailure_IsSwallowed(t *testing.T) {
	t.Parallel()

	f := newProcessorFixture(t)
	ctx := context.Background()
	event := &models.UserEvent{ID: "e1", SessionID: "s1", EventType: models.EventView, ProductID: "17"}

	f.eventStore.EXPECT().Insert(ctx, gomock.Any()).Return(nil)
	f.searchStore.EXPECT().Index(ctx, gomock.Any()).Return(errors.New("es down"))
	f.updater.EXPECT().ApplyEvent(ctx, gomock.Any()).Return(nil)

	err := f.processor.Process(ctx, eventPayload(t, event))
	require.NoError(t, err)
	assert.Equal(t, int64(1), f.counters.EventTypeCounts()["VIEW"])
}

func TestProcess_DuplicateEvent_TreatedAsSuccess(t *testing.T) {
	t.Parallel()

	f := newProcessorFixture(t)
	ctx := context.Background()
	event := &models.UserEvent{ID: "e1", SessionID: "s1", EventType: models.EventPurchase, ProductID: "17"}

	f.eventStore.EXPECT().Insert(ctx, gomock.Any()).Return(stores.ErrEventAlreadyStored)
	f.searchStore.EXPECT().Index(ctx, gomock.Any()).Return(nil)
	f.updater.EXPECT().ApplyEvent(ctx, gomock.Any()).Return(nil)

	err := f.processor.Process(ctx, eventPayload(t, event))
	require.NoError(t, err)
}

func TestProcess_UpdaterFailure_IsSwallowed(t *testing.T) {
	t.Parallel()

	f := newProcessorFixture(t)
	ctx := context.Background()
	event := &models.UserEvent{ID: "e1", SessionID: "s1", EventType: models.EventView, ProductID: "17"}

	f.eventStore.EXPECT().Insert(ctx, gomock.Any()).Return(nil)
	f.searchStore.EXPECT().Index(ctx, gomock.Any()).Return(nil)
	f.updater.EXPECT().ApplyEvent(ctx, gomock.Any()).
		Return(svcerrors.NewInternalErrorUndefined(errors.New("aggregate write failed")))

	err := f.processor.Process(ctx, eventPayload(t, event))
	require.NoError(t, err)
}
