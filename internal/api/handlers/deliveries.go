package handlers

import (
	"net/http"
	"restock-cycle-analyser/internal/api/dto"
	"restock-cycle-analyser/internal/store"
)

// DeliveryHandler exposes the raw record set.
type DeliveryHandler struct {
	Store *store.Store
}

func (h *DeliveryHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res := dto.ListDeliveriesResponse{
		Deliveries: dto.NewDeliveryResponses(h.Store.Records()),
	}

	writeJSON(w, r, http.StatusOK, res)
}
