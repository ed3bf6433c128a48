package streams

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"ecom-analytics/internal/models"
	"ecom-analytics/internal/shared/loggers"
	"ecom-analytics/internal/shared/metrics"
)

const publishTimeout = 10 * time.Second

//go:generate mockgen -source=./user_event_producer.go -destination=./mocks/user_event_producer_mock.go -package=mocks

// UserEventProducer publishes behavioral events to the event stream.
//
// Publish is fire-and-forget for the network send: the tracking endpoint must
// answer in milliseconds, so the write happens on a detached goroutine and
// write failures are logged rather than surfaced. Serialization runs on the
// caller's goroutine and its failure is returned, never retried. PublishSync
// is for callers that need the broker acknowledgement before proceeding.
type UserEventProducer interface {
	Publish(ctx context.Context, event *models.UserEvent) error
	PublishSync(ctx context.Context, event *models.UserEvent) error
	Close() error
}

type userEventProducer struct {
	writer MessageWriter
}

func NewUserEventProducer(writer MessageWriter) UserEventProducer {
	return &userEventProducer{writer: writer}
}

func (p *userEventProducer) Publish(ctx context.Context, event *models.UserEvent) error {
	msg, err := p.buildMessage(event)
	if err != nil {
		metricEventsPublishedTotal.WithLabelValues(publishModeAsync, "marshal").Inc()
		return err
	}

	// Detach from the request context so an already-answered request does not
	// cancel the in-flight write; keep the logger attached for correlation.
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)

	go func() {
		defer cancel()

		if err := p.writer.WriteMessages(writeCtx, msg); err != nil {
			metricEventsPublishedTotal.WithLabelValues(publishModeAsync, "write").Inc()
			loggers.Ctx(writeCtx).Error().Err(err).
				Str(loggers.FieldEventId, event.ID).
				Str(loggers.FieldEventType, event.EventType.String()).
				Msg("failed to publish event")
			return
		}

		metricEventsPublishedTotal.WithLabelValues(publishModeAsync, metrics.ValueNoError).Inc()
		loggers.Ctx(writeCtx).Debug().
			Str(loggers.FieldEventId, event.ID).
			Str(loggers.FieldEventType, event.EventType.String()).
			Msg("event published")
	}()

	return nil
}

func (p *userEventProducer) PublishSync(ctx context.Context, event *models.UserEvent) error {
	msg, err := p.buildMessage(event)
	if err != nil {
		metricEventsPublishedTotal.WithLabelValues(publishModeSync, "marshal").Inc()
		return err
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		metricEventsPublishedTotal.WithLabelValues(publishModeSync, "write").Inc()
		return fmt.Errorf("publish event %s: %w", event.ID, err)
	}

	metricEventsPublishedTotal.WithLabelValues(publishModeSync, metrics.ValueNoError).Inc()
	return nil
}

func (p *userEventProducer) Close() error {
	return p.writer.Close()
}

func (p *userEventProducer) buildMessage(event *models.UserEvent) (kafka.Message, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("marshal event %s: %w", event.ID, err)
	}
	return kafka.Message{
		Key:   []byte(event.PartitionKey()),
		Value: payload,
	}, nil
}
