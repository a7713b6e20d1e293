package relay

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"fuelmate/internal/common/logger"
	"fuelmate/internal/domain"
)

type fakeSource struct {
	orders []domain.Order
}

func (s *fakeSource) List() []domain.Order { return s.orders }

func (s *fakeSource) setStatus(id string, st domain.OrderStatus) {
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = st
		}
	}
}

type fakePublisher struct {
	events   []domain.OrderEvent
	failNext int
}

func (p *fakePublisher) PublishUpdate(_ context.Context, body []byte) error {
	if p.failNext > 0 {
		p.failNext--
		return errors.New("broker unavailable")
	}
	var ev domain.OrderEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return err
	}
	p.events = append(p.events, ev)
	return nil
}

func newRelay(src Source, pub Publisher) *Relay {
	r := New(src, pub, logger.New("relay-test"))
	r.clock = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }
	return r
}

func TestFlushEmitsOncePerTransition(t *testing.T) {
	src := &fakeSource{orders: []domain.Order{
		{ID: "ORD-1001", Status: domain.StatusPending, Customer: "Current User"},
		{ID: "ORD-1002", Status: domain.StatusPending, Customer: "Current User"},
	}}
	pub := &fakePublisher{}
	r := newRelay(src, pub)

	r.Flush()
	if len(pub.events) != 2 {
		t.Fatalf("first flush published %d events, want 2", len(pub.events))
	}
	for _, ev := range pub.events {
		if ev.EventType != domain.EventTypeCreated {
			t.Fatalf("event_type = %q, want %q", ev.EventType, domain.EventTypeCreated)
		}
		if ev.Customer != "Current User" {
			t.Fatalf("customer = %q", ev.Customer)
		}
	}

	// Nothing changed: nothing to relay.
	r.Flush()
	if len(pub.events) != 2 {
		t.Fatalf("idle flush published %d extra events", len(pub.events)-2)
	}

	src.setStatus("ORD-1001", domain.StatusConfirmed)
	r.Flush()
	if len(pub.events) != 3 {
		t.Fatalf("flush after confirm published %d events, want 3", len(pub.events))
	}
	last := pub.events[2]
	if last.OrderID != "ORD-1001" || last.EventType != domain.EventTypeConfirmed {
		t.Fatalf("event = %+v", last)
	}
}

func TestFlushEventMapping(t *testing.T) {
	src := &fakeSource{orders: []domain.Order{{ID: "ORD-1001", Status: domain.StatusPending, Customer: "c"}}}
	pub := &fakePublisher{}
	r := newRelay(src, pub)
	r.Flush()

	steps := []struct {
		status domain.OrderStatus
		want   string
	}{
		{domain.StatusConfirmed, domain.EventTypeConfirmed},
		{domain.StatusInTransit, domain.EventTypeDispatch},
		{domain.StatusDelivered, domain.EventTypeDelivered},
	}
	for _, step := range steps {
		src.setStatus("ORD-1001", step.status)
		r.Flush()
		last := pub.events[len(pub.events)-1]
		if last.EventType != step.want {
			t.Fatalf("status %q mapped to %q, want %q", step.status, last.EventType, step.want)
		}
	}

	src2 := &fakeSource{orders: []domain.Order{{ID: "ORD-1002", Status: domain.StatusCancelled, Customer: "c"}}}
	pub2 := &fakePublisher{}
	newRelay(src2, pub2).Flush()
	if len(pub2.events) != 1 || pub2.events[0].EventType != domain.EventTypeRejected {
		t.Fatalf("cancelled order relayed as %+v", pub2.events)
	}
}

func TestFlushAttachesDriverName(t *testing.T) {
	driver := domain.Driver{Name: "Amit Verma"}
	src := &fakeSource{orders: []domain.Order{
		{ID: "ORD-1001", Status: domain.StatusInTransit, Customer: "c", Driver: &driver},
	}}
	pub := &fakePublisher{}
	newRelay(src, pub).Flush()
	if len(pub.events) != 1 {
		t.Fatalf("published %d events, want 1", len(pub.events))
	}
	if pub.events[0].DriverName != "Amit Verma" {
		t.Fatalf("driver_name = %q", pub.events[0].DriverName)
	}
}

func TestFlushContinuesPastPublishFailure(t *testing.T) {
	src := &fakeSource{orders: []domain.Order{
		{ID: "ORD-1001", Status: domain.StatusPending, Customer: "c"},
		{ID: "ORD-1002", Status: domain.StatusPending, Customer: "c"},
	}}
	pub := &fakePublisher{failNext: 1}
	r := newRelay(src, pub)

	r.Flush()
	if len(pub.events) != 1 {
		t.Fatalf("published %d events, want 1 (one failed, one delivered)", len(pub.events))
	}
	if pub.events[0].OrderID != "ORD-1002" {
		t.Fatalf("delivered event = %+v", pub.events[0])
	}

	// The failed event is dropped, not retried on the next flush.
	r.Flush()
	if len(pub.events) != 1 {
		t.Fatalf("retry flush published %d extra events", len(pub.events)-1)
	}
}
