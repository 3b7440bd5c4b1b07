package handlers

import (
	"net/http"
	"restock-cycle-analyser/internal/api/dto"
	"restock-cycle-analyser/internal/domain"
	"restock-cycle-analyser/internal/store"
)

// FilterHandler describes the filterable dimensions of the dataset.
type FilterHandler struct {
	Store *store.Store
}

func (h *FilterHandler) Options(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	minDate, maxDate := h.Store.DateBounds()
	res := dto.FilterOptionsResponse{
		Departments:  h.Store.Departments(),
		DelayReasons: h.Store.DelayReasons(),
		DateMin:      minDate.Format("2006-01-02"),
		DateMax:      maxDate.Format("2006-01-02"),
		StockoutModes: []string{
			domain.StockoutAll.String(),
			domain.StockoutOnly.String(),
			domain.StockoutNone.String(),
		},
	}

	writeJSON(w, r, http.StatusOK, res)
}
