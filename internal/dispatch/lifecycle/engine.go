// Package lifecycle owns the order status state machine. Every status
// change flows through the Engine; the transition table below is the
// single authority on which moves are legal.
package lifecycle

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"fuelmate/internal/dispatch/store"
	"fuelmate/internal/domain"
)

// ErrDriverRequired rejects a confirm when the station policy demands a
// pre-selected driver and none was chosen for the order.
var ErrDriverRequired = errors.New("a driver must be selected before confirming")

var transitions = map[domain.Event]struct{ from, to domain.OrderStatus }{
	domain.EventConfirm:  {domain.StatusPending, domain.StatusConfirmed},
	domain.EventReject:   {domain.StatusPending, domain.StatusCancelled},
	domain.EventDispatch: {domain.StatusConfirmed, domain.StatusInTransit},
	domain.EventComplete: {domain.StatusInTransit, domain.StatusDelivered},
}

type Engine struct {
	store  *store.Store
	roster []domain.Driver
	clock  func() time.Time
	rng    *rand.Rand

	// requireDriver gates confirm on driver pre-selection, matching the
	// observed station flow even though the driver is only attached at
	// dispatch. Configurable because the two steps are independent.
	requireDriver bool

	mu        sync.Mutex
	preselect map[string]domain.Driver
}

type Option func(*Engine)

func WithClock(clock func() time.Time) Option {
	return func(e *Engine) { e.clock = clock }
}

func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

func WithRoster(roster []domain.Driver) Option {
	return func(e *Engine) { e.roster = roster }
}

func RequireDriverOnConfirm(required bool) Option {
	return func(e *Engine) { e.requireDriver = required }
}

func New(st *store.Store, opts ...Option) *Engine {
	e := &Engine{
		store:         st,
		roster:        domain.DefaultRoster(),
		clock:         func() time.Time { return time.Now().UTC() },
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
		requireDriver: true,
		preselect:     make(map[string]domain.Driver),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Roster returns the fixed driver roster.
func (e *Engine) Roster() []domain.Driver {
	out := make([]domain.Driver, len(e.roster))
	copy(out, e.roster)
	return out
}

// SelectDriver pre-selects a roster driver for an order ahead of
// confirmation and dispatch. Delivered and cancelled orders no longer
// take a driver.
func (e *Engine) SelectDriver(orderID, driverName string) (domain.Driver, error) {
	o, ok := e.store.Get(orderID)
	if !ok {
		return domain.Driver{}, domain.ErrOrderNotFound
	}
	if o.Status.Terminal() {
		return domain.Driver{}, fmt.Errorf("order %s is already %s", orderID, o.Status)
	}
	for _, d := range e.roster {
		if d.Name == driverName {
			e.mu.Lock()
			e.preselect[orderID] = d
			e.mu.Unlock()
			return d, nil
		}
	}
	return domain.Driver{}, fmt.Errorf("driver %q is not on the roster", driverName)
}

// Confirm moves a pending order to confirmed and stamps the ETA.
func (e *Engine) Confirm(orderID string) (domain.Order, error) {
	if e.requireDriver {
		e.mu.Lock()
		_, chosen := e.preselect[orderID]
		e.mu.Unlock()
		if !chosen {
			if _, ok := e.store.Get(orderID); !ok {
				return domain.Order{}, domain.ErrOrderNotFound
			}
			return domain.Order{}, ErrDriverRequired
		}
	}
	return e.apply(orderID, domain.EventConfirm, func(o *domain.Order) {
		eta := e.clock().Add(domain.DeliveryOffset)
		o.EstimatedDelivery = &eta
	})
}

// Reject cancels a pending order.
func (e *Engine) Reject(orderID string) (domain.Order, error) {
	o, err := e.apply(orderID, domain.EventReject, nil)
	if err == nil {
		e.mu.Lock()
		delete(e.preselect, orderID)
		e.mu.Unlock()
	}
	return o, err
}

// Dispatch moves a confirmed order to in-transit, attaching the
// pre-selected driver or a uniform pick from the roster.
func (e *Engine) Dispatch(orderID string) (domain.Order, error) {
	e.mu.Lock()
	driver, chosen := e.preselect[orderID]
	e.mu.Unlock()
	if !chosen {
		driver = e.roster[e.rng.Intn(len(e.roster))]
	}

	o, err := e.apply(orderID, domain.EventDispatch, func(o *domain.Order) {
		d := driver
		o.Driver = &d
	})
	if err == nil {
		e.mu.Lock()
		delete(e.preselect, orderID)
		e.mu.Unlock()
	}
	return o, err
}

// Complete marks an in-transit order delivered and snapshots it into the
// bounded history.
func (e *Engine) Complete(orderID string) (domain.Order, error) {
	o, err := e.apply(orderID, domain.EventComplete, nil)
	if err != nil {
		return domain.Order{}, err
	}
	e.store.AppendHistory(o)
	return o, nil
}

func (e *Engine) apply(orderID string, ev domain.Event, sideEffect func(*domain.Order)) (domain.Order, error) {
	t := transitions[ev]
	for {
		o, ok := e.store.Get(orderID)
		if !ok {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		if o.Status != t.from {
			return domain.Order{}, &domain.InvalidTransitionError{OrderID: orderID, From: o.Status, Event: ev}
		}
		o.Status = t.to
		if sideEffect != nil {
			sideEffect(&o)
		}
		err := e.store.Replace(o, t.from)
		if errors.Is(err, store.ErrStatusConflict) {
			// A racing transition won; re-read so the error names the
			// status that actually stuck.
			continue
		}
		if err != nil {
			return domain.Order{}, err
		}
		return o, nil
	}
}
