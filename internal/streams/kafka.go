package streams

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

// MessageWriter is the producer-side slice of kafka.Writer.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// MessageFetcher is the consumer-side slice of kafka.Reader. Offsets are
// committed explicitly after a batch has been handled, never on fetch.
type MessageFetcher interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NewKafkaWriter builds the writer for the behavioral event stream. The hash
// balancer keyed on the message key keeps each user's (or anonymous
// session's) events in one partition, so they are consumed in order.
func NewKafkaWriter(brokers []string, topic string, writeTimeout time.Duration) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
		WriteTimeout:           writeTimeout,
	}
}

// NewKafkaFetcherFactory returns a factory building one reader per consumer
// worker. All readers join the same consumer group, so the broker spreads
// partitions across them.
func NewKafkaFetcherFactory(brokers []string, topic string, groupID string) func() MessageFetcher {
	return func() MessageFetcher {
		return kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			GroupID:  groupID,
			Topic:    topic,
			MinBytes: 1,
			MaxBytes: 10e6,
		})
	}
}
