package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"restock-cycle-analyser/internal/api/dto"
	"restock-cycle-analyser/internal/services"
	"restock-cycle-analyser/internal/store"
)

// User-visible notice for filter combinations that match nothing.
const emptyResultNotice = "No data available with the current filter settings. Please adjust your filters."

// DashboardHandler runs the full analysis pipeline for one filter spec.
type DashboardHandler struct {
	Store *store.Store
}

// Build recomputes metrics, all eight chart views, and the filtered
// row table. An empty result is a designed condition, not an error:
// the client gets a single notice and short-circuits its rendering.
func (h *DashboardHandler) Build(w http.ResponseWriter, r *http.Request) {
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
		writeJSON(w, r, http.StatusOK, dto.DashboardResponse{
			Empty:  true,
			Notice: emptyResultNotice,
		})
		return
	}
	if err != nil {
		log.Printf("build dashboard failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.DashboardResponse{
		Metrics:    &dash.Metrics,
		Charts:     dash.Charts,
		Deliveries: dto.NewDeliveryResponses(dash.Deliveries),
	}

	writeJSON(w, r, http.StatusOK, res)
}

// decodeDashboardRequest enforces a single, strictly-typed JSON body.
// Shared by the dashboard and export endpoints.
func decodeDashboardRequest(w http.ResponseWriter, r *http.Request) (dto.DashboardRequest, bool) {
	var req dto.DashboardRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return req, false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return req, false
	}

	return req, true
}
