package view

import (
	"fmt"
	"sync"

	"fuelmate/internal/domain"
)

// Notice is one user-facing message raised by a detected status change.
type Notice struct {
	OrderID string             `json:"orderId"`
	Status  domain.OrderStatus `json:"status"`
	Title   string             `json:"title"`
	Message string             `json:"message"`
}

// Feed diffs consecutive order snapshots and raises one notice per
// transition into confirmed, in-transit or delivered. Detection is by
// comparing last-seen statuses, not persisted edge flags.
type Feed struct {
	mu      sync.Mutex
	last    map[string]domain.OrderStatus
	pending []Notice
}

func NewFeed() *Feed {
	return &Feed{last: make(map[string]domain.OrderStatus)}
}

// Refresh absorbs the current order set, appending notices for every
// status newly reached since the previous refresh.
func (f *Feed) Refresh(orders []domain.Order) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, o := range orders {
		prev, seen := f.last[o.ID]
		f.last[o.ID] = o.Status
		if seen && prev == o.Status {
			continue
		}
		if n, ok := noticeFor(o); ok {
			f.pending = append(f.pending, n)
		}
	}
}

// Drain returns and clears the pending notices.
func (f *Feed) Drain() []Notice {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.pending
	f.pending = nil
	if out == nil {
		out = []Notice{}
	}
	return out
}

func noticeFor(o domain.Order) (Notice, bool) {
	switch o.Status {
	case domain.StatusConfirmed:
		return Notice{
			OrderID: o.ID,
			Status:  o.Status,
			Title:   "Order Confirmed!",
			Message: fmt.Sprintf("Your order #%s has been confirmed and will be delivered soon.", o.ID),
		}, true
	case domain.StatusInTransit:
		agent := "our delivery agent"
		if o.Driver != nil {
			agent = o.Driver.Name
		}
		return Notice{
			OrderID: o.ID,
			Status:  o.Status,
			Title:   "Delivery Started!",
			Message: fmt.Sprintf("Your order #%s is on the way with %s.", o.ID, agent),
		}, true
	case domain.StatusDelivered:
		return Notice{
			OrderID: o.ID,
			Status:  o.Status,
			Title:   "Order Delivered!",
			Message: fmt.Sprintf("Your order #%s has been delivered successfully.", o.ID),
		}, true
	default:
		return Notice{}, false
	}
}
