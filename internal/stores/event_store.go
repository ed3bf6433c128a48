package stores

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ecom-analytics/internal/models"
)

// ErrEventAlreadyStored is returned when an event with the same ID has
// already been persisted. With at-least-once delivery a redelivered message
// hits this on its second insert; callers treat it as success.
var ErrEventAlreadyStored = errors.New("event already stored")

//go:generate mockgen -source=event_store.go -destination=./mocks/event_store_mock.go -package=mocks
type EventStore interface {
	// Insert persists one behavior event. Inserting the same event ID twice
	// returns ErrEventAlreadyStored.
	Insert(ctx context.Context, event *models.UserEvent) error
	FindByUser(ctx context.Context, userID string, limit int) ([]*models.UserEvent, error)
	FindBySession(ctx context.Context, sessionID string, limit int) ([]*models.UserEvent, error)
	FindByProduct(ctx context.Context, productID string, limit int) ([]*models.UserEvent, error)
}

const eventCollection = "user_events"

type eventStore struct {
	collection *mongo.Collection
}

func NewEventStore(db *mongo.Database) EventStore {
	return &eventStore{collection: db.Collection(eventCollection)}
}

func (s *eventStore) Insert(ctx context.Context, event *models.UserEvent) error {
	_, err := s.collection.InsertOne(ctx, event)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %s", ErrEventAlreadyStored, event.ID)
		}
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

func (s *eventStore) FindByUser(ctx context.Context, userID string, limit int) ([]*models.UserEvent, error) {
	return s.find(ctx, bson.M{"userId": userID}, limit)
}

func (s *eventStore) FindBySession(ctx context.Context, sessionID string, limit int) ([]*models.UserEvent, error) {
	return s.find(ctx, bson.M{"sessionId": sessionID}, limit)
}

func (s *eventStore) FindByProduct(ctx context.Context, productID string, limit int) ([]*models.UserEvent, error) {
	return s.find(ctx, bson.M{"productId": productID}, limit)
}

func (s *eventStore) find(ctx context.Context, filter bson.M, limit int) ([]*models.UserEvent, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer cursor.Close(ctx)

	var result []*models.UserEvent
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}
	return result, nil
}
