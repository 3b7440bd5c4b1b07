package api

import (
	"net/http"
	"restock-cycle-analyser/internal/api/handlers"
	"restock-cycle-analyser/internal/store"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers share one immutable dataset store).
func NewRouter(st *store.Store) http.Handler {
	mux := http.NewServeMux()

	deliveryHandler := &handlers.DeliveryHandler{Store: st}
	filterHandler := &handlers.FilterHandler{Store: st}
	dashboardHandler := &handlers.DashboardHandler{Store: st}
	exportHandler := &handlers.ExportHandler{Store: st}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/filters", filterHandler.Options)
	mux.HandleFunc("/deliveries", deliveryHandler.List)
	mux.HandleFunc("/dashboard", dashboardHandler.Build)
	mux.HandleFunc("/export", exportHandler.Export)

	return loggingMiddleware(mux)
}
