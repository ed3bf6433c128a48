package trackers

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"ecom-analytics/internal/models"
	"ecom-analytics/internal/shared/loggers"
	"ecom-analytics/internal/shared/metrics"
	"ecom-analytics/internal/shared/ulid"
	"ecom-analytics/internal/streams"
)

const (
	maxUserAgentLen   = 1024
	maxSearchQueryLen = 512
)

// TrackRequest is the client-supplied part of an event. Identity of the
// request itself (id, timestamp) and transport facts (ip, user agent) are
// assigned server-side.
type TrackRequest struct {
	UserID      string
	SessionID   string
	EventType   string
	ProductID   string
	Category    string
	SearchQuery string
	Metadata    map[string]any

	IPAddress string
	UserAgent string
}

//go:generate mockgen -source=./tracking_service.go -destination=./mocks/tracking_service_mock.go -package=mocks

// TrackingService accepts behavioral events at the edge and hands them to the
// stream. Accepting an event means it was validated and enqueued, not that it
// has been processed; the pipeline behind the stream is asynchronous.
type TrackingService interface {
	Track(ctx context.Context, req *TrackRequest) (*models.UserEvent, error)
}

type trackingService struct {
	producer streams.UserEventProducer
}

func NewTrackingService(producer streams.UserEventProducer) TrackingService {
	return &trackingService{producer: producer}
}

func (s *trackingService) Track(ctx context.Context, req *TrackRequest) (*models.UserEvent, error) {
	event, err := s.buildEvent(req)
	if err != nil {
		metricEventsTrackedTotal.WithLabelValues("", codeValidationFailed).Inc()
		return nil, err
	}

	if err := s.producer.Publish(ctx, event); err != nil {
		metricEventsTrackedTotal.WithLabelValues(event.EventType.String(), codeUnserializableEvent).Inc()
		return nil, errUnserializableEvent(err)
	}

	metricEventsTrackedTotal.WithLabelValues(event.EventType.String(), metrics.ValueNoError).Inc()
	loggers.Ctx(ctx).Debug().
		Str(loggers.FieldEventId, event.ID).
		Str(loggers.FieldEventType, event.EventType.String()).
		Msg("event accepted")
	return event, nil
}

func (s *trackingService) buildEvent(req *TrackRequest) (*models.UserEvent, error) {
	eventType := models.EventType(strings.ToUpper(strings.TrimSpace(req.EventType)))
	if !eventType.Valid() {
		return nil, errValidationFailed("unknown event type: "+req.EventType, nil)
	}

	productID := strings.TrimSpace(req.ProductID)
	if productID == "" && eventType != models.EventSearch {
		return nil, errValidationFailed("productId is required", nil)
	}

	searchQuery := strings.TrimSpace(req.SearchQuery)
	if eventType == models.EventSearch && searchQuery == "" {
		return nil, errValidationFailed("searchQuery is required for SEARCH events", nil)
	}
	if len(searchQuery) > maxSearchQueryLen {
		return nil, errValidationFailed("searchQuery too long", nil)
	}

	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	userAgent := req.UserAgent
	if len(userAgent) > maxUserAgentLen {
		userAgent = userAgent[:maxUserAgentLen]
	}

	// copied so the caller's map is never mutated
	var metadata map[string]any
	if len(req.Metadata) > 0 || searchQuery != "" {
		metadata = make(map[string]any, len(req.Metadata)+1)
		for k, v := range req.Metadata {
			metadata[k] = v
		}
		if searchQuery != "" {
			metadata["query"] = searchQuery
		}
	}

	return &models.UserEvent{
		ID:        ulid.NewULID(),
		UserID:    strings.TrimSpace(req.UserID),
		SessionID: sessionID,
		EventType: eventType,
		ProductID: productID,
		Category:  strings.TrimSpace(req.Category),
		Timestamp: time.Now().UTC(),
		Metadata:  metadata,
		IPAddress: req.IPAddress,
		UserAgent: userAgent,
	}, nil
}
