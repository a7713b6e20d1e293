// Package view projects the live order set into the role-specific shapes
// the dashboards render. Projections are read-side only: windowing never
// removes anything from the store.
package view

import (
	"time"

	"fuelmate/internal/domain"
)

// DefaultWindow bounds how far back the live views look.
const DefaultWindow = 24 * time.Hour

// Window filters to orders created within d of now.
func Window(orders []domain.Order, now time.Time, d time.Duration) []domain.Order {
	out := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if now.Sub(o.Timestamp) < d {
			out = append(out, o)
		}
	}
	return out
}

// CustomerBuckets splits the windowed set into the customer dashboard's
// active (pending, confirmed, in-transit) and past (delivered) buckets.
func CustomerBuckets(orders []domain.Order, now time.Time, window time.Duration) (active, past []domain.Order) {
	active = []domain.Order{}
	past = []domain.Order{}
	for _, o := range Window(orders, now, window) {
		switch o.Status {
		case domain.StatusPending, domain.StatusConfirmed, domain.StatusInTransit:
			active = append(active, o)
		case domain.StatusDelivered:
			past = append(past, o)
		}
	}
	return active, past
}

// Partitions is the station operator's queue view.
type Partitions struct {
	Pending   []domain.Order `json:"pending"`
	Active    []domain.Order `json:"active"`
	Delivered []domain.Order `json:"delivered"`
	All       []domain.Order `json:"all"`
}

// StationPartitions builds the operator queue over the windowed set.
func StationPartitions(orders []domain.Order, now time.Time, window time.Duration) Partitions {
	p := Partitions{
		Pending:   []domain.Order{},
		Active:    []domain.Order{},
		Delivered: []domain.Order{},
		All:       []domain.Order{},
	}
	for _, o := range Window(orders, now, window) {
		p.All = append(p.All, o)
		switch o.Status {
		case domain.StatusPending:
			p.Pending = append(p.Pending, o)
		case domain.StatusConfirmed, domain.StatusInTransit:
			p.Active = append(p.Active, o)
		case domain.StatusDelivered:
			p.Delivered = append(p.Delivered, o)
		}
	}
	return p
}

// Summary carries the station dashboard's headline counters.
type Summary struct {
	PendingOrders    int `json:"pendingOrders"`
	ActiveDeliveries int `json:"activeDeliveries"`
	TotalLiters      int `json:"totalLiters"`
}

// StationSummary totals the windowed set.
func StationSummary(orders []domain.Order, now time.Time, window time.Duration) Summary {
	var s Summary
	for _, o := range Window(orders, now, window) {
		s.TotalLiters += o.Quantity
		switch o.Status {
		case domain.StatusPending:
			s.PendingOrders++
		case domain.StatusConfirmed, domain.StatusInTransit:
			s.ActiveDeliveries++
		}
	}
	return s
}
