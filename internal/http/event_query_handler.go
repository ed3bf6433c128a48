package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"ecom-analytics/internal/stores"
)

const defaultEventLimit = 50

// eventQueryHandler serves raw event history from the durable store.
type eventQueryHandler struct {
	eventStore stores.EventStore
}

func NewEventQueryHandler(eventStore stores.EventStore) *eventQueryHandler {
	return &eventQueryHandler{eventStore: eventStore}
}

func (h *eventQueryHandler) ByUser(w http.ResponseWriter, r *http.Request) error {
	events, err := h.eventStore.FindByUser(r.Context(), chi.URLParam(r, "userId"), queryInt(r, "limit", defaultEventLimit))
	if err != nil {
		return err
	}
	return respondJSON(w, http.StatusOK, events)
}

func (h *eventQueryHandler) BySession(w http.ResponseWriter, r *http.Request) error {
	events, err := h.eventStore.FindBySession(r.Context(), chi.URLParam(r, "sessionId"), queryInt(r, "limit", defaultEventLimit))
	if err != nil {
		return err
	}
	return respondJSON(w, http.StatusOK, events)
}

func (h *eventQueryHandler) ByProduct(w http.ResponseWriter, r *http.Request) error {
	events, err := h.eventStore.FindByProduct(r.Context(), chi.URLParam(r, "productId"), queryInt(r, "limit", defaultEventLimit))
	if err != nil {
		return err
	}
	return respondJSON(w, http.StatusOK, events)
}
