package handler

import "net/http"

// NewRouter mounts the customer and station surfaces on one mux.
func NewRouter(customer *CustomerHandler, station *StationHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /orders", customer.CreateOrder)
	mux.HandleFunc("GET /orders", customer.ListOrders)
	mux.HandleFunc("GET /orders/{id}", customer.TrackOrder)
	mux.HandleFunc("GET /notices", customer.Notices)
	mux.HandleFunc("GET /brands", customer.Brands)

	mux.HandleFunc("GET /station/orders", station.Orders)
	mux.HandleFunc("GET /station/summary", station.Summary)
	mux.HandleFunc("GET /station/history", station.History)
	mux.HandleFunc("GET /station/drivers", station.Drivers)
	mux.HandleFunc("POST /station/orders/{id}/driver", station.SelectDriver)
	mux.HandleFunc("POST /station/orders/{id}/confirm", station.Confirm)
	mux.HandleFunc("POST /station/orders/{id}/reject", station.Reject)
	mux.HandleFunc("POST /station/orders/{id}/dispatch", station.Dispatch)
	mux.HandleFunc("POST /station/orders/{id}/complete", station.Complete)

	return mux
}
