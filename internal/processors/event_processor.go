package processors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"ecom-analytics/internal/aggregators"
	"ecom-analytics/internal/models"
	"ecom-analytics/internal/shared/loggers"
	"ecom-analytics/internal/shared/metrics"
	"ecom-analytics/internal/stores"
)

//go:generate mockgen -source=./event_processor.go -destination=./mocks/event_processor_mock.go -package=mocks

// EventProcessor handles a single consumed event payload end to end: decode,
// persist to the durable store, index into the search store, and fold into
// the realtime counters and the product aggregate.
//
// The durable write and the search index write are independent: either store
// being down never prevents the write to the other, and every side effect is
// attempted on every delivery. Only a durable store failure is returned to
// the caller; it is the one failure worth retrying. Search indexing and
// aggregate updates are best-effort and are logged instead, so one slow or
// down dependency cannot wedge the whole pipeline.
type EventProcessor interface {
	Process(ctx context.Context, payload []byte) error
}

type eventProcessor struct {
	eventStore  stores.EventStore
	searchStore stores.UserEventSearchStore
	counters    *aggregators.RealtimeCounterSet
	updater     aggregators.AggregateUpdater
}

func NewEventProcessor(
	eventStore stores.EventStore,
	searchStore stores.UserEventSearchStore,
	counters *aggregators.RealtimeCounterSet,
	updater aggregators.AggregateUpdater,
) EventProcessor {
	return &eventProcessor{
		eventStore:  eventStore,
		searchStore: searchStore,
		counters:    counters,
		updater:     updater,
	}
}

func (p *eventProcessor) Process(ctx context.Context, payload []byte) error {
	event, err := p.decodeEvent(payload)
	if err != nil {
		metricEventsProcessedTotal.WithLabelValues("", codeInvalidEventPayload).Inc()
		return err
	}

	logger := loggers.Ctx(ctx)

	var storeErr error
	if err := p.eventStore.Insert(ctx, event); err != nil {
		if errors.Is(err, stores.ErrEventAlreadyStored) {
			// redelivery of an already-stored event, keep going so the
			// remaining side effects still run
			logger.Debug().
				Str(loggers.FieldEventId, event.ID).
				Msg("event already stored, continuing")
		} else {
			// returned after the remaining side effects were attempted;
			// the search write must not depend on the durable store
			storeErr = errInternalEventStoreFailed(err)
			logger.Error().Err(err).
				Str(loggers.FieldEventId, event.ID).
				Str(loggers.FieldEventType, event.EventType.String()).
				Msg("failed to persist event to durable store")
		}
	}

	// Indexing is keyed by event ID, so a redelivery after a durable
	// failure overwrites the same search document.
	if err := p.searchStore.Index(ctx, event); err != nil {
		metricSearchIndexFailuresTotal.Inc()
		logger.Error().Err(err).
			Str(loggers.FieldEventId, event.ID).
			Str(loggers.FieldEventType, event.EventType.String()).
			Msg("failed to index event into search store")
	}

	p.counters.Record(event)

	if svcErr := p.updater.ApplyEvent(ctx, event); svcErr != nil {
		logger.Error().Err(svcErr).
			Str(loggers.FieldEventId, event.ID).
			Str(loggers.FieldProductId, event.ProductID).
			Msg("failed to update product aggregate")
	}

	if storeErr != nil {
		metricEventsProcessedTotal.WithLabelValues(event.EventType.String(), codeInternalEventStoreFailed).Inc()
		return storeErr
	}

	metricEventsProcessedTotal.WithLabelValues(event.EventType.String(), metrics.ValueNoError).Inc()
	return nil
}

func (p *eventProcessor) decodeEvent(payload []byte) (*models.UserEvent, error) {
	var event models.UserEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, errInvalidEventPayload("invalid json", err)
	}
	if event.ID == "" {
		return nil, errInvalidEventPayload("missing event id", nil)
	}
	if !event.EventType.Valid() {
		return nil, errInvalidEventPayload(fmt.Sprintf("unknown event type: %q", event.EventType), nil)
	}
	return &event, nil
}
