package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"fuelmate/internal/common/logger"
	"fuelmate/internal/dispatch/store"
	"fuelmate/internal/dispatch/view"
	"fuelmate/internal/domain"
)

// CustomerHandler serves the ordering and tracking surface.
type CustomerHandler struct {
	Store  *store.Store
	Feed   *view.Feed
	Window time.Duration
	Clock  func() time.Time
	Log    *logger.Logger
}

// CreateOrder places a new fuel order. Validation happens here, upstream
// of the store, mirroring the form rules.
func (h *CustomerHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}
	if req.Customer == "" {
		req.Customer = "Current User"
	}
	if err := req.Validate(); err != nil {
		writeProblem(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	unit, err := domain.UnitPrice(req.Brand, req.FuelType)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	id, err := h.Store.CreateOrder(store.Draft{
		Customer:        req.Customer,
		FuelType:        req.FuelType,
		Quantity:        req.Quantity,
		Brand:           req.Brand,
		Price:           unit * float64(req.Quantity),
		DeliveryAddress: req.DeliveryAddress,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		h.Log.Error("order_create_failed", err, nil)
		writeProblem(w, http.StatusInternalServerError, "store_error", "failed to create order")
		return
	}

	o, _ := h.Store.Get(id)
	h.Log.Info("order_created", map[string]any{"order_id": id, "customer": o.Customer, "price": o.Price})
	writeJSON(w, http.StatusCreated, domain.CreateOrderResponse{ID: o.ID, Status: o.Status, Price: o.Price})
}

// ListOrders returns the customer's active/past buckets over the 24h window.
func (h *CustomerHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	active, past := view.CustomerBuckets(h.Store.List(), h.Clock(), h.Window)
	writeJSON(w, http.StatusOK, map[string]any{"active": active, "past": past})
}

// TrackOrder returns a single order by id; unknown ids are an empty-state
// 404, not a failure.
func (h *CustomerHandler) TrackOrder(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	o, ok := h.Store.Get(id)
	if !ok {
		writeProblem(w, http.StatusNotFound, "not_found", "order not found")
		return
	}
	writeJSON(w, http.StatusOK, o)
}

// Brands returns the per-litre price table backing the order form.
func (h *CustomerHandler) Brands(w http.ResponseWriter, r *http.Request) {
	type entry struct {
		Brand  string  `json:"brand"`
		Petrol float64 `json:"petrol"`
		Diesel float64 `json:"diesel"`
	}
	brands := domain.Brands()
	out := make([]entry, 0, len(brands))
	for _, b := range brands {
		petrol, _ := domain.UnitPrice(b, domain.FuelPetrol)
		diesel, _ := domain.UnitPrice(b, domain.FuelDiesel)
		out = append(out, entry{Brand: b, Petrol: petrol, Diesel: diesel})
	}
	writeJSON(w, http.StatusOK, map[string]any{"brands": out})
}

// Notices drains the pending status-change notifications.
func (h *CustomerHandler) Notices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"notices": h.Feed.Drain()})
}

// errProblem maps domain errors onto problem responses shared by both
// dashboard surfaces.
func errProblem(w http.ResponseWriter, err error) {
	var inv *domain.InvalidTransitionError
	switch {
	case errors.Is(err, domain.ErrOrderNotFound):
		writeProblem(w, http.StatusNotFound, "not_found", "order not found")
	case errors.As(err, &inv):
		writeProblem(w, http.StatusConflict, "invalid_transition", inv.Error())
	default:
		writeProblem(w, http.StatusBadRequest, "rejected", err.Error())
	}
}
