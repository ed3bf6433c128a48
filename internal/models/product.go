package models

import (
	"strconv"
	"time"
)

// Product is the canonical catalog entity, owned by the relational store.
// Every committed mutation is broadcast to the cache layer and the
// aggregate updater as a change notification.
type Product struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Price         float64   `json:"price"`
	Category      string    `json:"category"`
	StockQuantity int       `json:"stockQuantity"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ParseProductID converts the string product id carried on events back to
// the canonical numeric id.
func ParseProductID(id string) (int64, bool) {
	parsed, err := strconv.ParseInt(id, 10, 64)
	return parsed, err == nil
}
