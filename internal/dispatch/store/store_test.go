package store

import (
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"testing"
	"time"

	"fuelmate/internal/domain"
)

type countPub struct{ n int }

func (p *countPub) Publish() { p.n++ }

func testDraft() Draft {
	return Draft{
		Customer:        "Current User",
		FuelType:        "petrol",
		Quantity:        5,
		Brand:           "Indian Oil",
		Price:           477.05,
		DeliveryAddress: "Citylight, Surat",
		PaymentMethod:   "upi",
	}
}

func TestCreateOrderAssignsFreshPendingOrder(t *testing.T) {
	pub := &countPub{}
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s := New(pub, WithClock(func() time.Time { return fixed }), WithRand(rand.New(rand.NewSource(1))))

	idFormat := regexp.MustCompile(`^ORD-\d{4}$`)
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		id, err := s.CreateOrder(testDraft())
		if err != nil {
			t.Fatalf("CreateOrder: %v", err)
		}
		if !idFormat.MatchString(id) {
			t.Fatalf("id %q does not match ORD-####", id)
		}
		if seen[id] {
			t.Fatalf("id %q reused", id)
		}
		seen[id] = true

		o, ok := s.Get(id)
		if !ok {
			t.Fatalf("created order %q not found", id)
		}
		if o.Status != domain.StatusPending {
			t.Fatalf("status = %q, want pending", o.Status)
		}
		if !o.Timestamp.Equal(fixed) {
			t.Fatalf("timestamp = %v, want %v", o.Timestamp, fixed)
		}
		if o.EstimatedDelivery != nil {
			t.Fatalf("estimatedDelivery set at creation")
		}
	}
	if pub.n != 200 {
		t.Fatalf("publish count = %d, want 200", pub.n)
	}
}

func TestListPreservesInsertionOrder(t *testing.T) {
	s := New(&countPub{}, WithRand(rand.New(rand.NewSource(7))))
	var ids []string
	for i := 0; i < 5; i++ {
		id, err := s.CreateOrder(testDraft())
		if err != nil {
			t.Fatalf("CreateOrder: %v", err)
		}
		ids = append(ids, id)
	}
	list := s.List()
	if len(list) != len(ids) {
		t.Fatalf("len(List) = %d, want %d", len(list), len(ids))
	}
	for i, o := range list {
		if o.ID != ids[i] {
			t.Fatalf("List[%d].ID = %q, want %q", i, o.ID, ids[i])
		}
	}
}

func TestGetUnknownID(t *testing.T) {
	s := New(&countPub{})
	if _, ok := s.Get("ORD-0000"); ok {
		t.Fatal("expected not found")
	}
}

func TestReplaceUnknownID(t *testing.T) {
	pub := &countPub{}
	s := New(pub)
	err := s.Replace(domain.Order{ID: "ORD-0000"}, domain.StatusPending)
	if err != domain.ErrOrderNotFound {
		t.Fatalf("err = %v, want ErrOrderNotFound", err)
	}
	if pub.n != 0 {
		t.Fatalf("failed replace must not publish, got %d", pub.n)
	}
}

func TestReplaceRejectsStaleStatus(t *testing.T) {
	pub := &countPub{}
	s := New(pub)
	id, _ := s.CreateOrder(testDraft())

	o, _ := s.Get(id)
	o.Status = domain.StatusCancelled
	if err := s.Replace(o, domain.StatusPending); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	pub.n = 0

	// A writer that still believes the order is pending must lose.
	stale, _ := s.Get(id)
	stale.Status = domain.StatusConfirmed
	err := s.Replace(stale, domain.StatusPending)
	if !errors.Is(err, ErrStatusConflict) {
		t.Fatalf("err = %v, want ErrStatusConflict", err)
	}
	if pub.n != 0 {
		t.Fatalf("conflicted replace must not publish, got %d", pub.n)
	}
	got, _ := s.Get(id)
	if got.Status != domain.StatusCancelled {
		t.Fatalf("status = %q, want cancelled", got.Status)
	}
}

func TestReplacePublishesOnce(t *testing.T) {
	pub := &countPub{}
	s := New(pub)
	id, _ := s.CreateOrder(testDraft())
	pub.n = 0

	o, _ := s.Get(id)
	o.Status = domain.StatusConfirmed
	if err := s.Replace(o, domain.StatusPending); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if pub.n != 1 {
		t.Fatalf("publish count = %d, want 1", pub.n)
	}
	got, _ := s.Get(id)
	if got.Status != domain.StatusConfirmed {
		t.Fatalf("status = %q, want confirmed", got.Status)
	}
}

func TestHistoryKeepsTenMostRecent(t *testing.T) {
	s := New(&countPub{})
	for i := 1; i <= 13; i++ {
		s.AppendHistory(domain.Order{ID: fmt.Sprintf("ORD-%04d", i), Status: domain.StatusDelivered})
	}
	h := s.History()
	if len(h) != 10 {
		t.Fatalf("len(history) = %d, want 10", len(h))
	}
	if h[0].ID != "ORD-0004" || h[9].ID != "ORD-0013" {
		t.Fatalf("history window = [%s .. %s], want [ORD-0004 .. ORD-0013]", h[0].ID, h[9].ID)
	}
}

func TestHistoryLimitOption(t *testing.T) {
	s := New(&countPub{}, WithHistoryLimit(2))
	for i := 1; i <= 3; i++ {
		s.AppendHistory(domain.Order{ID: fmt.Sprintf("ORD-%04d", i)})
	}
	h := s.History()
	if len(h) != 2 || h[0].ID != "ORD-0002" {
		t.Fatalf("unexpected history %v", h)
	}
}
