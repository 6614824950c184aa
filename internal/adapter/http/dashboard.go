package httpadapter

import (
	"encoding/json"
	"net/http"

	"adpulse/internal/core/domain"
)

type filterRequest struct {
	Status string `json:"status"`
}

// handleDashboard returns the committed dashboard view projected through
// the current filter.
func (h *Handler) handleDashboard(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, h.dashboard.View())
}

// handleSetFilter changes the status filter and returns the re-projected
// view. Unknown statuses result in HTTP 400.
func (h *Handler) handleSetFilter(w http.ResponseWriter, r *http.Request) {
	var req filterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.dashboard.SetFilter(domain.StatusFilter(req.Status)); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, h.dashboard.View())
}

// handleRefresh asks for an immediate round. It answers 202 when a round
// was started and 409 when one is already in flight.
func (h *Handler) handleRefresh(w http.ResponseWriter, _ *http.Request) {
	if !h.dashboard.Refresh() {
		http.Error(w, "refresh already in progress", http.StatusConflict)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}
