package streams

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"strconv"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"ecom-analytics/internal/processors"
	"ecom-analytics/internal/shared/loggers"
	"ecom-analytics/internal/shared/metrics"
	"ecom-analytics/internal/shared/svcerrors"
	"ecom-analytics/internal/shared/ulid"
)

// ConsumerConfig tunes the worker pool reading the event stream.
type ConsumerConfig struct {
	Workers     int
	BatchSize   int
	MaxRetries  int
	RetryDelay  time.Duration
	PollTimeout time.Duration
}

//go:generate mockgen -source=./user_event_consumer.go -destination=./mocks/user_event_consumer_mock.go -package=mocks

// UserEventConsumer runs a pool of workers, each with its own group reader,
// that fetch events in batches and hand them to the processor.
//
// Delivery is at-least-once: offsets are committed only after every message
// in the batch has been attempted, so a crash mid-batch redelivers the whole
// batch. Per-message failures never poison the batch; a transient store
// failure is retried a bounded number of times, then the message is dropped
// with a log so the partition keeps moving.
type UserEventConsumer interface {
	Start(ctx context.Context)
	Stop()
}

type userEventConsumer struct {
	newFetcher func() MessageFetcher
	processor  processors.EventProcessor
	cfg        ConsumerConfig

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewUserEventConsumer(newFetcher func() MessageFetcher, processor processors.EventProcessor, cfg ConsumerConfig, logger loggers.Logger) UserEventConsumer {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 1
	}
	return &userEventConsumer{
		newFetcher: newFetcher,
		processor:  processor,
		cfg:        cfg,
		stopCh:     make(chan struct{}),
		logger:     logger,
	}
}

// Start spawns the worker goroutines. Each worker owns one reader; the
// consumer group assigns partitions across them.
func (c *userEventConsumer) Start(ctx context.Context) {
	for workerID := 0; workerID < c.cfg.Workers; workerID++ {
		workerID := workerID
		c.wg.Add(1)
		go func() {
			defer c.wg.Done()

			c.runWorker(ctx, workerID)
		}()
	}
}

// Stop signals the workers and waits for them to drain (best called during
// app shutdown).
func (c *userEventConsumer) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
	c.wg.Wait()
}

func (c *userEventConsumer) runWorker(ctx context.Context, workerID int) {
	fetcher := c.newFetcher()
	defer func() {
		if err := fetcher.Close(); err != nil {
			c.logger.Error().Err(err).
				Int(loggers.FieldWorkerId, workerID).
				Msg("failed to close stream reader")
		}
	}()

	workerCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-c.stopCh:
			cancel()
		case <-workerCtx.Done():
		}
	}()

	for {
		select {
		case <-workerCtx.Done():
			return
		default:
		}

		batch, err := c.fetchBatch(workerCtx, fetcher)
		if err != nil {
			if workerCtx.Err() != nil {
				return
			}
			c.logger.Error().Err(err).
				Int(loggers.FieldWorkerId, workerID).
				Msg("failed to fetch from stream")
			continue
		}
		if len(batch) == 0 {
			continue
		}

		for i := range batch {
			c.handleMessage(workerCtx, workerID, &batch[i])
		}

		if err := fetcher.CommitMessages(workerCtx, batch...); err != nil && workerCtx.Err() == nil {
			c.logger.Error().Err(err).
				Int(loggers.FieldWorkerId, workerID).
				Msg("failed to commit offsets")
		}
	}
}

// fetchBatch blocks for the first message, then keeps collecting until the
// batch is full or the poll timeout passes with nothing new.
func (c *userEventConsumer) fetchBatch(ctx context.Context, fetcher MessageFetcher) ([]kafka.Message, error) {
	first, err := fetcher.FetchMessage(ctx)
	if err != nil {
		return nil, err
	}

	batch := make([]kafka.Message, 0, c.cfg.BatchSize)
	batch = append(batch, first)

	for len(batch) < c.cfg.BatchSize {
		pollCtx, cancel := context.WithTimeout(ctx, c.cfg.PollTimeout)
		msg, err := fetcher.FetchMessage(pollCtx)
		cancel()
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				break
			}
			return batch, nil
		}
		batch = append(batch, msg)
	}

	return batch, nil
}

func (c *userEventConsumer) handleMessage(ctx context.Context, workerID int, msg *kafka.Message) {
	// Panic recovery so one bad message cannot take the worker down.
	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("consumer panic recovered")

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}

			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricEventsConsumedTotal.WithLabelValues(svcErr.Code).Inc()
		}
	}()

	msgCtx := c.logger.With().
		Int(loggers.FieldWorkerId, workerID).
		Str(loggers.FieldTopic, msg.Topic).
		Str(loggers.FieldPartition, strconv.Itoa(msg.Partition)).
		Str(loggers.FieldOffset, strconv.FormatInt(msg.Offset, 10)).
		Str(loggers.FieldRequestID, ulid.NewULID()).
		Logger().WithContext(ctx)

	err := c.processWithRetry(msgCtx, msg.Value)
	if err == nil {
		metricEventsConsumedTotal.WithLabelValues(metrics.ValueNoError).Inc()
		return
	}

	var svcErr *svcerrors.ServiceError
	if errors.As(err, &svcErr) {
		metricEventsConsumedTotal.WithLabelValues(svcErr.Code).Inc()
	} else {
		metricEventsConsumedTotal.WithLabelValues(svcerrors.NewInternalErrorUndefined(err).Code).Inc()
	}
	loggers.Ctx(msgCtx).Error().Err(err).Msg("dropping event after processing failed")
}

// processWithRetry retries transient failures with a fixed delay. Anything
// non-retryable (malformed payload) fails immediately.
func (c *userEventConsumer) processWithRetry(ctx context.Context, payload []byte) error {
	var lastErr error
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.cfg.RetryDelay):
			}
			metricEventRetriesTotal.Inc()
		}

		lastErr = c.processor.Process(ctx, payload)
		if lastErr == nil {
			return nil
		}
		if !isRetryable(lastErr) {
			return lastErr
		}
	}
	return lastErr
}

func isRetryable(err error) bool {
	var svcErr *svcerrors.ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.HttpStatusCode >= 500
	}
	return true
}
