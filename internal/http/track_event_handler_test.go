package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	internalhttp "ecom-analytics/internal/http"
	"ecom-analytics/internal/models"
	"ecom-analytics/internal/trackers"
	trackermocks "ecom-analytics/internal/trackers/mocks"
)

func TestTrackEventHandler_Accepted(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	trackingService := trackermocks.NewMockTrackingService(ctrl)
	handler := internalhttp.NewTrackEventHandler(trackingService)

	accepted := &models.UserEvent{ID: "01ARZ3NDEKTSV4RRFFQ69G5FAV", SessionID: "s1", EventType: models.EventView, ProductID: "17"}
	trackingService.EXPECT().Track(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *trackers.TrackRequest) (*models.UserEvent, error) {
			assert.Equal(t, "VIEW", req.EventType)
			assert.Equal(t, "17", req.ProductID)
			assert.Equal(t, "203.0.113.7", req.IPAddress)
			assert.Equal(t, "test-agent", req.UserAgent)
			return accepted, nil
		})

	body := `{"eventType":"VIEW","productId":"17","sessionId":"s1"}`
	r := httptest.NewRequest("POST", "/events", strings.NewReader(body))
	r.Header.Set("X-Forwarded-For", "203.0.113.7")
	r.Header.Set("User-Agent", "test-agent")
	w := httptest.NewRecorder()

	require.NoError(t, handler.Handle(w, r))
	assert.Equal(t, http.StatusAccepted, w.Code)

	var response models.UserEvent
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, accepted.ID, response.ID)
}

func TestTrackEventHandler_InvalidBody(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	trackingService := trackermocks.NewMockTrackingService(ctrl)
	handler := internalhttp.NewTrackEventHandler(trackingService)

	r := httptest.NewRequest("POST", "/events", strings.NewReader(`{not json`))
	w := httptest.NewRecorder()

	err := handler.Handle(w, r)
	require.Error(t, err)
}
