package http

import (
	"encoding/json"
	"net/http"

	"ecom-analytics/internal/trackers"
)

type trackEventRequest struct {
	UserID      string         `json:"userId"`
	SessionID   string         `json:"sessionId"`
	EventType   string         `json:"eventType"`
	ProductID   string         `json:"productId"`
	Category    string         `json:"category"`
	SearchQuery string         `json:"searchQuery"`
	Metadata    map[string]any `json:"metadata"`
}

type trackEventHandler struct {
	trackingService trackers.TrackingService
}

func NewTrackEventHandler(trackingService trackers.TrackingService) *trackEventHandler {
	return &trackEventHandler{trackingService: trackingService}
}

// Handle processes POST /events requests. Returns 202: the event is accepted
// into the stream, not yet processed.
func (h *trackEventHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	var body trackEventRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return errInvalidRequestBody(err)
	}

	event, err := h.trackingService.Track(r.Context(), &trackers.TrackRequest{
		UserID:      body.UserID,
		SessionID:   body.SessionID,
		EventType:   body.EventType,
		ProductID:   body.ProductID,
		Category:    body.Category,
		SearchQuery: body.SearchQuery,
		Metadata:    body.Metadata,
		IPAddress:   clientIP(r),
		UserAgent:   r.UserAgent(),
	})
	if err != nil {
		return err
	}

	return respondJSON(w, http.StatusAccepted, event)
}
