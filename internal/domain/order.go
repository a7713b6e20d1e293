package domain

import (
	"errors"
	"fmt"
	"time"
)

// OrderStatus is the lifecycle position of a fuel-delivery order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusInTransit OrderStatus = "in-transit"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// Terminal reports whether no further transition is defined out of s.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Event is a station-operator action that moves an order along its lifecycle.
type Event string

const (
	EventConfirm  Event = "confirm"
	EventReject   Event = "reject"
	EventDispatch Event = "dispatch"
	EventComplete Event = "complete"
)

// Order is one fuel-delivery request. All fields except Status,
// EstimatedDelivery and Driver are fixed at creation.
type Order struct {
	ID                string      `json:"id"`
	Status            OrderStatus `json:"status"`
	Customer          string      `json:"customer"`
	FuelType          string      `json:"fuelType"`
	Quantity          int         `json:"quantity"`
	Brand             string      `json:"brand"`
	Price             float64     `json:"price"`
	DeliveryAddress   string      `json:"deliveryAddress"`
	PaymentMethod     string      `json:"paymentMethod"`
	Timestamp         time.Time   `json:"timestamp"`
	EstimatedDelivery *time.Time  `json:"estimatedDelivery,omitempty"`
	Driver            *Driver     `json:"driver,omitempty"`
}

var ErrOrderNotFound = errors.New("order not found")

// InvalidTransitionError reports a lifecycle event applied to an order
// that is not in the event's required source state.
type InvalidTransitionError struct {
	OrderID string
	From    OrderStatus
	Event   Event
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("order %s: invalid transition from %q on event %q", e.OrderID, e.From, e.Event)
}

// DeliveryOffset is added to the confirmation time to produce the ETA.
const DeliveryOffset = 45 * time.Minute
