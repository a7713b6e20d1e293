// Package store holds the authoritative in-memory order set and the
// bounded delivered-order history. Orders are never deleted from the live
// set; dashboards window them at read time.
package store

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"fuelmate/internal/domain"
)

// ErrStatusConflict reports a Replace whose expected source status no
// longer matches the stored order: a competing transition landed first.
var ErrStatusConflict = errors.New("order status changed concurrently")

// Publisher is notified exactly once after every applied mutation.
type Publisher interface {
	Publish()
}

// Draft carries the immutable creation fields of an order.
type Draft struct {
	Customer        string
	FuelType        string
	Quantity        int
	Brand           string
	Price           float64
	DeliveryAddress string
	PaymentMethod   string
}

type Store struct {
	pub   Publisher
	clock func() time.Time
	rng   *rand.Rand

	mu           sync.Mutex
	orders       map[string]domain.Order
	order        []string // insertion order of ids
	history      []domain.Order
	historyLimit int
}

// Option configures a Store.
type Option func(*Store)

// WithClock injects a deterministic clock for tests.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) { s.clock = clock }
}

// WithRand injects a seeded source for id generation.
func WithRand(rng *rand.Rand) Option {
	return func(s *Store) { s.rng = rng }
}

// WithHistoryLimit overrides the delivered-history bound.
func WithHistoryLimit(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.historyLimit = n
		}
	}
}

func New(pub Publisher, opts ...Option) *Store {
	s := &Store{
		pub:          pub,
		clock:        func() time.Time { return time.Now().UTC() },
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		orders:       make(map[string]domain.Order),
		historyLimit: 10,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// CreateOrder assigns a fresh ORD-#### id, stamps the creation time and
// pending status, and appends the order to the live set.
func (s *Store) CreateOrder(d Draft) (string, error) {
	s.mu.Lock()
	id, err := s.newID()
	if err != nil {
		s.mu.Unlock()
		return "", err
	}
	o := domain.Order{
		ID:              id,
		Status:          domain.StatusPending,
		Customer:        d.Customer,
		FuelType:        d.FuelType,
		Quantity:        d.Quantity,
		Brand:           d.Brand,
		Price:           d.Price,
		DeliveryAddress: d.DeliveryAddress,
		PaymentMethod:   d.PaymentMethod,
		Timestamp:       s.clock(),
	}
	s.orders[id] = o
	s.order = append(s.order, id)
	s.mu.Unlock()

	s.pub.Publish()
	return id, nil
}

// Get returns the order, if present. No side effects.
func (s *Store) Get(id string) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	return o, ok
}

// List returns the live set in insertion order.
func (s *Store) List() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Order, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.orders[id])
	}
	return out
}

// Replace swaps the stored order for an updated copy, but only while the
// stored status still equals from. The compare is done under the same
// lock as the write, so two racing transitions out of one status cannot
// both land. The lifecycle engine is the only caller; handlers never
// write status directly.
func (s *Store) Replace(o domain.Order, from domain.OrderStatus) error {
	s.mu.Lock()
	cur, ok := s.orders[o.ID]
	if !ok {
		s.mu.Unlock()
		return domain.ErrOrderNotFound
	}
	if cur.Status != from {
		s.mu.Unlock()
		return ErrStatusConflict
	}
	s.orders[o.ID] = o
	s.mu.Unlock()

	s.pub.Publish()
	return nil
}

// History returns the bounded delivered-order history, oldest first.
func (s *Store) History() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Order, len(s.history))
	copy(out, s.history)
	return out
}

// AppendHistory records a delivered order, evicting the oldest entry
// once the bound is exceeded.
func (s *Store) AppendHistory(o domain.Order) {
	s.mu.Lock()
	s.history = append(s.history, o)
	if len(s.history) > s.historyLimit {
		s.history = s.history[1:]
	}
	s.mu.Unlock()

	s.pub.Publish()
}

// newID draws ORD-#### ids until an unused one comes up. Caller holds mu.
func (s *Store) newID() (string, error) {
	for attempt := 0; attempt < 10000; attempt++ {
		id := fmt.Sprintf("ORD-%04d", 1000+s.rng.Intn(9000))
		if _, taken := s.orders[id]; !taken {
			return id, nil
		}
	}
	return "", fmt.Errorf("order id space exhausted")
}
