package models

// EventType is the closed set of user-behavior event kinds flowing through
// the pipeline. Behavior that differs per kind (counter selection, aggregate
// field to increment) switches on this type exhaustively.
type EventType string

const (
	EventView           EventType = "VIEW"
	EventClick          EventType = "CLICK"
	EventAddToCart      EventType = "ADD_TO_CART"
	EventRemoveFromCart EventType = "REMOVE_FROM_CART"
	EventPurchase       EventType = "PURCHASE"
	EventSearch         EventType = "SEARCH"
)

// EventTypes lists every valid event type in a stable order.
func EventTypes() []EventType {
	return []EventType{
		EventView,
		EventClick,
		EventAddToCart,
		EventRemoveFromCart,
		EventPurchase,
		EventSearch,
	}
}

func (t EventType) Valid() bool {
	switch t {
	case EventView, EventClick, EventAddToCart, EventRemoveFromCart, EventPurchase, EventSearch:
		return true
	}
	return false
}

func (t EventType) String() string {
	return string(t)
}
