package view

import (
	"testing"
	"time"

	"fuelmate/internal/domain"
)

var now = time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)

func order(id string, status domain.OrderStatus, age time.Duration) domain.Order {
	return domain.Order{ID: id, Status: status, Quantity: 5, Timestamp: now.Add(-age)}
}

func TestWindowFiltersOldOrders(t *testing.T) {
	orders := []domain.Order{
		order("ORD-1001", domain.StatusPending, time.Hour),
		order("ORD-1002", domain.StatusPending, 25*time.Hour),
		order("ORD-1003", domain.StatusDelivered, 23*time.Hour),
	}
	got := Window(orders, now, DefaultWindow)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	for _, o := range got {
		if o.ID == "ORD-1002" {
			t.Fatal("order older than 24h not filtered")
		}
	}
}

func TestCustomerBuckets(t *testing.T) {
	orders := []domain.Order{
		order("ORD-1001", domain.StatusPending, time.Hour),
		order("ORD-1002", domain.StatusConfirmed, time.Hour),
		order("ORD-1003", domain.StatusInTransit, time.Hour),
		order("ORD-1004", domain.StatusDelivered, time.Hour),
		order("ORD-1005", domain.StatusCancelled, time.Hour),
		order("ORD-1006", domain.StatusDelivered, 30*time.Hour),
	}
	active, past := CustomerBuckets(orders, now, DefaultWindow)
	if len(active) != 3 {
		t.Fatalf("len(active) = %d, want 3", len(active))
	}
	if len(past) != 1 || past[0].ID != "ORD-1004" {
		t.Fatalf("past = %v, want just ORD-1004", past)
	}
}

func TestStationPartitions(t *testing.T) {
	orders := []domain.Order{
		order("ORD-1001", domain.StatusPending, time.Hour),
		order("ORD-1002", domain.StatusConfirmed, time.Hour),
		order("ORD-1003", domain.StatusInTransit, time.Hour),
		order("ORD-1004", domain.StatusDelivered, time.Hour),
		order("ORD-1005", domain.StatusCancelled, time.Hour),
	}
	p := StationPartitions(orders, now, DefaultWindow)
	if len(p.Pending) != 1 || len(p.Active) != 2 || len(p.Delivered) != 1 {
		t.Fatalf("partitions = pending:%d active:%d delivered:%d", len(p.Pending), len(p.Active), len(p.Delivered))
	}
	if len(p.All) != 5 {
		t.Fatalf("len(all) = %d, want 5 (cancelled stays visible)", len(p.All))
	}
}

func TestStationSummary(t *testing.T) {
	orders := []domain.Order{
		order("ORD-1001", domain.StatusPending, time.Hour),
		order("ORD-1002", domain.StatusConfirmed, time.Hour),
		order("ORD-1003", domain.StatusInTransit, time.Hour),
		order("ORD-1004", domain.StatusDelivered, time.Hour),
	}
	s := StationSummary(orders, now, DefaultWindow)
	if s.PendingOrders != 1 || s.ActiveDeliveries != 2 {
		t.Fatalf("summary = %+v", s)
	}
	if s.TotalLiters != 20 {
		t.Fatalf("totalLiters = %d, want 20", s.TotalLiters)
	}
}

func TestFeedRaisesEachTransitionOnce(t *testing.T) {
	f := NewFeed()

	pending := []domain.Order{order("ORD-1001", domain.StatusPending, 0)}
	f.Refresh(pending)
	if n := f.Drain(); len(n) != 0 {
		t.Fatalf("creation raised notices: %v", n)
	}

	confirmed := []domain.Order{order("ORD-1001", domain.StatusConfirmed, 0)}
	f.Refresh(confirmed)
	f.Refresh(confirmed) // second refresh of the same state
	n := f.Drain()
	if len(n) != 1 {
		t.Fatalf("len(notices) = %d, want exactly 1", len(n))
	}
	if n[0].Status != domain.StatusConfirmed || n[0].Title != "Order Confirmed!" {
		t.Fatalf("notice = %+v", n[0])
	}

	o := order("ORD-1001", domain.StatusInTransit, 0)
	o.Driver = &domain.Driver{Name: "Amit Verma"}
	f.Refresh([]domain.Order{o})
	n = f.Drain()
	if len(n) != 1 || n[0].Message != "Your order #ORD-1001 is on the way with Amit Verma." {
		t.Fatalf("in-transit notice = %v", n)
	}

	f.Refresh([]domain.Order{order("ORD-1001", domain.StatusDelivered, 0)})
	n = f.Drain()
	if len(n) != 1 || n[0].Title != "Order Delivered!" {
		t.Fatalf("delivered notice = %v", n)
	}
}

func TestFeedDrainClears(t *testing.T) {
	f := NewFeed()
	f.Refresh([]domain.Order{order("ORD-1001", domain.StatusConfirmed, 0)})
	if n := f.Drain(); len(n) != 1 {
		t.Fatalf("first drain = %v", n)
	}
	if n := f.Drain(); len(n) != 0 {
		t.Fatalf("second drain not empty: %v", n)
	}
}

func TestFeedRejectedOrderRaisesNoNotice(t *testing.T) {
	f := NewFeed()
	f.Refresh([]domain.Order{order("ORD-1001", domain.StatusPending, 0)})
	f.Refresh([]domain.Order{order("ORD-1001", domain.StatusCancelled, 0)})
	if n := f.Drain(); len(n) != 0 {
		t.Fatalf("cancellation raised notices: %v", n)
	}
}
