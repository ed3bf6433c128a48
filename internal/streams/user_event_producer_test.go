package streams_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"ecom-analytics/internal/models"
	"ecom-analytics/internal/streams"
	streammocks "ecom-analytics/internal/streams/mocks"
)

func TestPublishSync_WritesKeyedMessage(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := streammocks.NewMockMessageWriter(ctrl)
	producer := streams.NewUserEventProducer(writer)

	event := &models.UserEvent{ID: "e1", UserID: "user-42", SessionID: "s1", EventType: models.EventView, ProductID: "17"}

	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			assert.Equal(t, []byte("user-42"), msgs[0].Key)
			assert.Contains(t, string(msgs[0].Value), `"id":"e1"`)
			return nil
		})

	require.NoError(t, producer.PublishSync(context.Background(), event))
}

func TestPublishSync_AnonymousSessionKey(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := streammocks.NewMockMessageWriter(ctrl)
	producer := streams.NewUserEventProducer(writer)

	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msgs ...kafka.Message) error {
			assert.Equal(t, []byte("anon:s1"), msgs[0].Key)
			return nil
		})

	event := &models.UserEvent{ID: "e1", SessionID: "s1", EventType: models.EventView, ProductID: "17"}
	require.NoError(t, producer.PublishSync(context.Background(), event))
}

func TestPublishSync_WriteFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := streammocks.NewMockMessageWriter(ctrl)
	producer := streams.NewUserEventProducer(writer)

	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker unreachable"))

	err := producer.PublishSync(context.Background(), &models.UserEvent{ID: "e1", SessionID: "s1", EventType: models.EventView})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "e1")
}

func TestPublish_AsyncDoesNotBlockAndSurvivesFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := streammocks.NewMockMessageWriter(ctrl)
	producer := streams.NewUserEventProducer(writer)

	var wg sync.WaitGroup
	wg.Add(1)
	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, ...kafka.Message) error {
			defer wg.Done()
			return errors.New("broker unreachable")
		})

	// write failures are logged, never surfaced to the tracking path
	err := producer.Publish(context.Background(), &models.UserEvent{ID: "e1", SessionID: "s1", EventType: models.EventView})
	require.NoError(t, err)
	wg.Wait()
}

func TestPublish_SerializationFailureReturned(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := streammocks.NewMockMessageWriter(ctrl)
	producer := streams.NewUserEventProducer(writer)

	// an unencodable metadata value fails on the caller's goroutine; nothing
	// reaches the writer
	event := &models.UserEvent{
		ID:        "e1",
		SessionID: "s1",
		EventType: models.EventView,
		Metadata:  map[string]any{"ch": make(chan int)},
	}
	err := producer.Publish(context.Background(), event)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "e1")
}

func TestClose_ClosesWriter(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := streammocks.NewMockMessageWriter(ctrl)
	writer.EXPECT().Close().Return(nil)

	require.NoError(t, streams.NewUserEventProducer(writer).Close())
}
