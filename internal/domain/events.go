package domain

import "time"

// Event types published to the order_updates fanout exchange.
const (
	EventTypeCreated   = "order.created"
	EventTypeConfirmed = "order.confirmed"
	EventTypeRejected  = "order.rejected"
	EventTypeDispatch  = "order.dispatched"
	EventTypeDelivered = "order.delivered"
)

// OrderEvent is the wire message relayed on every order mutation.
type OrderEvent struct {
	OrderID    string      `json:"order_id"`
	EventType  string      `json:"event_type"`
	Status     OrderStatus `json:"status"`
	Customer   string      `json:"customer_name"`
	DriverName string      `json:"driver_name,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// EventTypeFor maps a lifecycle position to its wire event type.
func EventTypeFor(s OrderStatus) string {
	switch s {
	case StatusConfirmed:
		return EventTypeConfirmed
	case StatusCancelled:
		return EventTypeRejected
	case StatusInTransit:
		return EventTypeDispatch
	case StatusDelivered:
		return EventTypeDelivered
	default:
		return EventTypeCreated
	}
}
