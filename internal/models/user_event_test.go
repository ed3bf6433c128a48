package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ecom-analytics/internal/models"
)

func TestPartitionKey(t *testing.T) {
	t.Parallel()

	known := &models.UserEvent{UserID: "user-42", SessionID: "sess-1"}
	assert.Equal(t, "user-42", known.PartitionKey())

	anonymous := &models.UserEvent{SessionID: "sess-1"}
	assert.Equal(t, "anon:sess-1", anonymous.PartitionKey())
}

func TestUnitPrice(t *testing.T) {
	t.Parallel()

	priced := &models.UserEvent{Metadata: map[string]any{"price": 20.0}}
	price, ok := priced.UnitPrice()
	assert.True(t, ok)
	assert.Equal(t, 20.0, price)

	unpriced := &models.UserEvent{Metadata: map[string]any{"quantity": 1}}
	_, ok = unpriced.UnitPrice()
	assert.False(t, ok)

	noMetadata := &models.UserEvent{}
	_, ok = noMetadata.UnitPrice()
	assert.False(t, ok)
}

func TestEventTypeValid(t *testing.T) {
	t.Parallel()

	for _, eventType := range models.EventTypes() {
		assert.True(t, eventType.Valid(), eventType)
	}
	assert.False(t, models.EventType("SHIPPED").Valid())
	assert.False(t, models.EventType("view").Valid())
}
