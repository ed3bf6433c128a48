package models

import "time"

// UserEvent is an immutable behavior fact published to the user-events topic
// and written independently to the durable store and the search store. The two
// copies converge eventually; they are never kept transactionally identical.
//
// Example JSON payload on the topic:
//
//	{
//	  "id": "01ARZ3NDEKTSV4RRFFQ69G5FAV",
//	  "userId": "user-42",
//	  "sessionId": "0b81b39a-4b94-4b0b-8a3f-1f2e3d4c5b6a",
//	  "eventType": "PURCHASE",
//	  "productId": "17",
//	  "category": "electronics",
//	  "timestamp": "2026-08-30T18:03:45Z",
//	  "metadata": {"price": 20.0, "quantity": 1},
//	  "ipAddress": "203.0.113.7",
//	  "userAgent": "Mozilla/5.0 ..."
//	}
type UserEvent struct {
	ID        string         `json:"id" bson:"_id"`
	UserID    string         `json:"userId,omitempty" bson:"userId,omitempty"`
	SessionID string         `json:"sessionId" bson:"sessionId"`
	EventType EventType      `json:"eventType" bson:"eventType"`
	ProductID string         `json:"productId" bson:"productId"`
	Category  string         `json:"category,omitempty" bson:"category,omitempty"`
	Timestamp time.Time      `json:"timestamp" bson:"timestamp"`
	Metadata  map[string]any `json:"metadata,omitempty" bson:"metadata,omitempty"`
	IPAddress string         `json:"ipAddress,omitempty" bson:"ipAddress,omitempty"`
	UserAgent string         `json:"userAgent,omitempty" bson:"userAgent,omitempty"`
}

// PartitionKey routes all events of one user to the same partition so they
// stay strictly ordered. Anonymous events fall back to a stable surrogate
// derived from the session.
func (e *UserEvent) PartitionKey() string {
	if e.UserID != "" {
		return e.UserID
	}
	return "anon:" + e.SessionID
}

// UnitPrice returns the price carried in the event metadata, if any.
// Purchase events published by the checkout path carry the paid unit price;
// when absent the aggregate's denormalized price is used instead.
func (e *UserEvent) UnitPrice() (float64, bool) {
	if e.Metadata == nil {
		return 0, false
	}
	switch v := e.Metadata["price"].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}
