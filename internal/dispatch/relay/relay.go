// Package relay mirrors in-process order events onto the order_updates
// fanout exchange so out-of-process consumers see the same stream the
// dashboards do.
package relay

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"fuelmate/internal/common/logger"
	"fuelmate/internal/domain"
)

// Source is the slice of the order store the relay reads.
type Source interface {
	List() []domain.Order
}

// Publisher sends one encoded event to the updates fanout.
type Publisher interface {
	PublishUpdate(ctx context.Context, body []byte) error
}

type Relay struct {
	src   Source
	pub   Publisher
	lg    *logger.Logger
	clock func() time.Time

	mu   sync.Mutex
	last map[string]domain.OrderStatus
}

func New(src Source, pub Publisher, lg *logger.Logger) *Relay {
	return &Relay{
		src:   src,
		pub:   pub,
		lg:    lg,
		clock: func() time.Time { return time.Now().UTC() },
		last:  make(map[string]domain.OrderStatus),
	}
}

// Flush publishes one OrderEvent per order created or transitioned since
// the previous flush. Publish failures are logged and never block the
// in-process fan-out.
func (r *Relay) Flush() {
	r.mu.Lock()
	var events []domain.OrderEvent
	for _, o := range r.src.List() {
		prev, seen := r.last[o.ID]
		if seen && prev == o.Status {
			continue
		}
		r.last[o.ID] = o.Status
		ev := domain.OrderEvent{
			OrderID:    o.ID,
			EventType:  domain.EventTypeFor(o.Status),
			Status:     o.Status,
			Customer:   o.Customer,
			OccurredAt: r.clock(),
		}
		if o.Driver != nil {
			ev.DriverName = o.Driver.Name
		}
		events = append(events, ev)
	}
	r.mu.Unlock()

	for _, ev := range events {
		body, err := json.Marshal(ev)
		if err != nil {
			r.lg.Error("event_marshal_failed", err, map[string]any{"order_id": ev.OrderID})
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = r.pub.PublishUpdate(ctx, body)
		cancel()
		if err != nil {
			// Non-fatal: the in-process fan-out already ran; the broker
			// leg just drops this event.
			r.lg.Warn("event_publish_failed", map[string]any{"order_id": ev.OrderID, "event": ev.EventType, "error": err.Error()})
			continue
		}
		r.lg.Debug("event_published", map[string]any{"order_id": ev.OrderID, "event": ev.EventType})
	}
}
