package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"fuelmate/internal/common/logger"
	"fuelmate/internal/dispatch/lifecycle"
	"fuelmate/internal/dispatch/store"
	"fuelmate/internal/dispatch/view"
	"fuelmate/internal/domain"
)

// StationHandler serves the operator queue and the lifecycle actions.
type StationHandler struct {
	Store  *store.Store
	Engine *lifecycle.Engine
	Window time.Duration
	Clock  func() time.Time
	Log    *logger.Logger
}

// Orders returns the operator queue; ?tab=pending|active|all narrows it.
func (h *StationHandler) Orders(w http.ResponseWriter, r *http.Request) {
	p := view.StationPartitions(h.Store.List(), h.Clock(), h.Window)
	switch r.URL.Query().Get("tab") {
	case "pending":
		writeJSON(w, http.StatusOK, map[string]any{"orders": p.Pending})
	case "active":
		writeJSON(w, http.StatusOK, map[string]any{"orders": p.Active})
	case "all":
		writeJSON(w, http.StatusOK, map[string]any{"orders": p.All})
	default:
		writeJSON(w, http.StatusOK, p)
	}
}

// Summary returns the headline counters.
func (h *StationHandler) Summary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, view.StationSummary(h.Store.List(), h.Clock(), h.Window))
}

// History returns the bounded delivered-order history, oldest first.
func (h *StationHandler) History(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"history": h.Store.History()})
}

// Drivers returns the roster.
func (h *StationHandler) Drivers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"drivers": h.Engine.Roster()})
}

// SelectDriver pre-selects a roster driver for an order.
func (h *StationHandler) SelectDriver(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		writeProblem(w, http.StatusBadRequest, "bad_json", "driver name is required")
		return
	}
	d, err := h.Engine.SelectDriver(id, req.Name)
	if err != nil {
		errProblem(w, err)
		return
	}
	h.Log.Info("driver_selected", map[string]any{"order_id": id, "driver": d.Name})
	writeJSON(w, http.StatusOK, map[string]any{"orderId": id, "driver": d})
}

func (h *StationHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "order_confirmed", h.Engine.Confirm)
}

func (h *StationHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "order_rejected", h.Engine.Reject)
}

func (h *StationHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "order_dispatched", h.Engine.Dispatch)
}

func (h *StationHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "order_delivered", h.Engine.Complete)
}

func (h *StationHandler) transition(w http.ResponseWriter, r *http.Request, action string, apply func(string) (domain.Order, error)) {
	id := r.PathValue("id")
	o, err := apply(id)
	if err != nil {
		errProblem(w, err)
		return
	}
	fields := map[string]any{"order_id": o.ID, "status": o.Status}
	if o.Driver != nil {
		fields["driver"] = o.Driver.Name
	}
	h.Log.Info(action, fields)
	writeJSON(w, http.StatusOK, o)
}
