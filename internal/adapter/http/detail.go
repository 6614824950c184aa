package httpadapter

import (
	"encoding/json"
	"fmt"
	"net/http"

	"adpulse/internal/core/port"
)

type selectionRequest struct {
	CampaignID string `json:"campaign_id"`
}

func (h *Handler) handleDetail(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, h.detail.View())
}

// handleSelect binds the detail view to a campaign from the committed
// listing. Campaigns the dashboard has not committed result in HTTP 404.
func (h *Handler) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req selectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.CampaignID == "" {
		http.Error(w, "missing campaign_id", http.StatusBadRequest)
		return
	}
	c, ok := h.dashboard.Campaign(req.CampaignID)
	if !ok {
		h.writeError(w, fmt.Errorf("%w: %q", port.ErrCampaignNotFound, req.CampaignID))
		return
	}
	h.detail.Select(&c)
	h.writeJSON(w, http.StatusOK, h.detail.View())
}

func (h *Handler) handleDeselect(w http.ResponseWriter, _ *http.Request) {
	h.detail.Select(nil)
	w.WriteHeader(http.StatusNoContent)
}
