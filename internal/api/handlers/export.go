package handlers

import (
	"errors"
	"log"
	"net/http"
	"restock-cycle-analyser/internal/adapters/export"
	"restock-cycle-analyser/internal/services"
	"restock-cycle-analyser/internal/store"
)

// ExportHandler renders the filtered analysis as an Excel workbook.
type ExportHandler struct {
	Store *store.Store
}

func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	req, ok := decodeDashboardRequest(w, r)
	if !ok {
		return
	}

	spec, err := filterSpecFromRequest(req)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	dash, err := services.BuildDashboard(r.Context(), h.Store.Records(), spec)
	if errors.Is(err, services.ErrEmptySubset) {
		writeError(w, r, http.StatusUnprocessableEntity, emptyResultNotice)
		return
	}
	if err != nil {
		log.Printf("export report failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="restock-report.xlsx"`)

	// The workbook streams straight to the client; a failure mid-write
	// can only be logged, the status line is already gone.
	if err := export.WriteReport(r.Context(), w, dash); err != nil {
		log.Printf("write report failed: %v", err)
	}
}
