package streams_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
	"go.uber.org/mock/gomock"

	processormocks "ecom-analytics/internal/processors/mocks"
	"ecom-analytics/internal/shared/svcerrors"
	"ecom-analytics/internal/streams"
	streammocks "ecom-analytics/internal/streams/mocks"
)

func consumerConfig() streams.ConsumerConfig {
	return streams.ConsumerConfig{
		Workers:     1,
		BatchSize:   2,
		MaxRetries:  1,
		RetryDelay:  time.Millisecond,
		PollTimeout: 10 * time.Millisecond,
	}
}

// blockUntilStopped parks FetchMessage until the worker context is cancelled,
// ending the run loop.
func blockUntilStopped(fetcher *streammocks.MockMessageFetcher) {
	fetcher.EXPECT().FetchMessage(gomock.Any()).DoAndReturn(
		func(ctx context.Context) (kafka.Message, error) {
			<-ctx.Done()
			return kafka.Message{}, ctx.Err()
		}).AnyTimes()
}

func TestConsumer_BatchIsAttemptedInFullThenCommitted(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := streammocks.NewMockMessageFetcher(ctrl)
	processor := processormocks.NewMockEventProcessor(ctrl)

	msg1 := kafka.Message{Partition: 0, Offset: 1, Value: []byte(`{"id":"e1"}`)}
	msg2 := kafka.Message{Partition: 0, Offset: 2, Value: []byte(`{not json`)}

	fetcher.EXPECT().FetchMessage(gomock.Any()).Return(msg1, nil)
	fetcher.EXPECT().FetchMessage(gomock.Any()).Return(msg2, nil)

	processor.EXPECT().Process(gomock.Any(), msg1.Value).Return(nil)
	// the malformed message fails without retry, and must not block the batch
	processor.EXPECT().Process(gomock.Any(), msg2.Value).
		Return(svcerrors.NewInvalidArgumentError("PRC_1000", "invalid json", nil))

	committed := make(chan struct{})
	fetcher.EXPECT().CommitMessages(gomock.Any(), msg1, msg2).DoAndReturn(
		func(context.Context, ...kafka.Message) error {
			close(committed)
			return nil
		})
	blockUntilStopped(fetcher)
	fetcher.EXPECT().Close().Return(nil)

	consumer := streams.NewUserEventConsumer(
		func() streams.MessageFetcher { return fetcher }, processor, consumerConfig(), zerolog.Nop())

	consumer.Start(context.Background())
	<-committed
	consumer.Stop()
}

func TestConsumer_TransientFailureIsRetriedThenDropped(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := streammocks.NewMockMessageFetcher(ctrl)
	processor := processormocks.NewMockEventProcessor(ctrl)

	msg := kafka.Message{Partition: 0, Offset: 5, Value: []byte(`{"id":"e1"}`)}

	fetcher.EXPECT().FetchMessage(gomock.Any()).Return(msg, nil)
	// second poll times out so the batch closes at one message
	fetcher.EXPECT().FetchMessage(gomock.Any()).DoAndReturn(
		func(ctx context.Context) (kafka.Message, error) {
			<-ctx.Done()
			return kafka.Message{}, ctx.Err()
		})

	// MaxRetries=1: the initial attempt plus one retry, then the message is dropped
	transient := svcerrors.NewInternalErrorUndefined(nil)
	processor.EXPECT().Process(gomock.Any(), msg.Value).Return(transient).Times(2)

	committed := make(chan struct{})
	fetcher.EXPECT().CommitMessages(gomock.Any(), msg).DoAndReturn(
		func(context.Context, ...kafka.Message) error {
			close(committed)
			return nil
		})
	blockUntilStopped(fetcher)
	fetcher.EXPECT().Close().Return(nil)

	consumer := streams.NewUserEventConsumer(
		func() streams.MessageFetcher { return fetcher }, processor, consumerConfig(), zerolog.Nop())

	consumer.Start(context.Background())
	<-committed
	consumer.Stop()
}

func TestConsumer_StopIsIdempotent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := streammocks.NewMockMessageFetcher(ctrl)
	processor := processormocks.NewMockEventProcessor(ctrl)

	blockUntilStopped(fetcher)
	fetcher.EXPECT().Close().Return(nil)

	consumer := streams.NewUserEventConsumer(
		func() streams.MessageFetcher { return fetcher }, processor, consumerConfig(), zerolog.Nop())

	consumer.Start(context.Background())
	consumer.Stop()
	consumer.Stop()
}
