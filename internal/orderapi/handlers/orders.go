package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"fuelmate/internal/common/logger"
	"fuelmate/internal/domain"
	"fuelmate/internal/orderapi/auth"
	"fuelmate/internal/orderapi/service"
)

type OrdersHandler struct {
	Service *service.OrdersService
	Log     *logger.Logger
}

func (h *OrdersHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.FromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "No token provided")
		return
	}
	var in service.CreateOrderInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	order, err := h.Service.Create(r.Context(), p.UserID, in)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			writeMessage(w, http.StatusBadRequest, verr.Error())
			return
		}
		h.Log.Error("order_insert_failed", err, map[string]any{"user_id": p.UserID})
		writeMessage(w, http.StatusInternalServerError, "Failed to create order")
		return
	}
	h.Log.Info("order_persisted", map[string]any{"user_id": p.UserID, "order_id": order.ID})
	writeJSON(w, http.StatusCreated, order)
}

func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.FromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "No token provided")
		return
	}
	orders, err := h.Service.List(r.Context(), p.UserID)
	if err != nil {
		h.Log.Error("order_list_failed", err, map[string]any{"user_id": p.UserID})
		writeMessage(w, http.StatusInternalServerError, "Failed to load orders")
		return
	}
	writeJSON(w, http.StatusOK, orders)
}
