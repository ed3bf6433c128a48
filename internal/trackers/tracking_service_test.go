package trackers_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"ecom-analytics/internal/models"
	"ecom-analytics/internal/shared/svcerrors"
	streammocks "ecom-analytics/internal/streams/mocks"
	"ecom-analytics/internal/trackers"
)

func TestTrack_BuildsAndPublishesEvent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	producer := streammocks.NewMockUserEventProducer(ctrl)
	service := trackers.NewTrackingService(producer)

	var published *models.UserEvent
	producer.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, event *models.UserEvent) error {
			published = event
			return nil
		})

	before := time.Now().UTC()
	event, err := service.Track(context.Background(), &trackers.TrackRequest{
		UserID:    " user-42 ",
		SessionID: "sess-1",
		EventType: "view",
		ProductID: "17",
		Category:  "electronics",
		IPAddress: "203.0.113.7",
		UserAgent: "Mozilla/5.0",
	})
	require.NoError(t, err)
	require.NotNil(t, published)
	assert.Same(t, event, published)

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "user-42", event.UserID)
	assert.Equal(t, "sess-1", event.SessionID)
	assert.Equal(t, models.EventView, event.EventType)
	assert.Equal(t, "17", event.ProductID)
	assert.Equal(t, "203.0.113.7", event.IPAddress)
	assert.False(t, event.Timestamp.Before(before))
	assert.Equal(t, time.UTC, event.Timestamp.Location())
}

func TestTrack_GeneratesSessionWhenMissing(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	producer := streammocks.NewMockUserEventProducer(ctrl)
	producer.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
	service := trackers.NewTrackingService(producer)

	event, err := service.Track(context.Background(), &trackers.TrackRequest{
		EventType: "VIEW",
		ProductID: "17",
	})
	require.NoError(t, err)

	_, parseErr := uuid.Parse(event.SessionID)
	assert.NoError(t, parseErr, "generated session id should be a uuid")
}

func TestTrack_RejectsUnknownEventType(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	producer := streammocks.NewMockUserEventProducer(ctrl)
	service := trackers.NewTrackingService(producer)

	_, err := service.Track(context.Background(), &trackers.TrackRequest{
		EventType: "SHIPPED",
		ProductID: "17",
	})
	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "TRK_1000", svcErr.Code)
	assert.Equal(t, "invalid_argument", svcErr.Category)
}

func TestTrack_RequiresProductIDForProductEvents(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	producer := streammocks.NewMockUserEventProducer(ctrl)
	service := trackers.NewTrackingService(producer)

	_, err := service.Track(context.Background(), &trackers.TrackRequest{EventType: "PURCHASE"})
	require.Error(t, err)
	svcErr, _ := svcerrors.AsServiceError(err)
	assert.Equal(t, "TRK_1000", svcErr.Code)
}

func TestTrack_SearchEvent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	producer := streammocks.NewMockUserEventProducer(ctrl)
	service := trackers.NewTrackingService(producer)

	// search without a query is rejected
	_, err := service.Track(context.Background(), &trackers.TrackRequest{EventType: "SEARCH"})
	require.Error(t, err)

	// with a query it needs no product id; the query rides in metadata
	producer.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
	event, err := service.Track(context.Background(), &trackers.TrackRequest{
		EventType:   "SEARCH",
		SearchQuery: "wireless headphones",
	})
	require.NoError(t, err)
	assert.Equal(t, "wireless headphones", event.Metadata["query"])
}

func TestTrack_SerializationFailureReturned(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	producer := streammocks.NewMockUserEventProducer(ctrl)
	producer.EXPECT().Publish(gomock.Any(), gomock.Any()).
		Return(errors.New("json: unsupported type: chan int"))
	service := trackers.NewTrackingService(producer)

	_, err := service.Track(context.Background(), &trackers.TrackRequest{
		EventType: "VIEW",
		ProductID: "17",
		Metadata:  map[string]any{"bad": "value"},
	})
	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "TRK_1001", svcErr.Code)
	assert.Equal(t, "invalid_argument", svcErr.Category)
}

func TestTrack_DoesNotMutateCallerMetadata(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	producer := streammocks.NewMockUserEventProducer(ctrl)
	producer.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
	service := trackers.NewTrackingService(producer)

	callerMetadata := map[string]any{"source": "homepage"}
	event, err := service.Track(context.Background(), &trackers.TrackRequest{
		EventType:   "SEARCH",
		SearchQuery: "usb cable",
		Metadata:    callerMetadata,
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"source": "homepage"}, callerMetadata)
	assert.Equal(t, "usb cable", event.Metadata["query"])
	assert.Equal(t, "homepage", event.Metadata["source"])
}
