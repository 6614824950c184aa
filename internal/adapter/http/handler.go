package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/juju/errors"

	"adpulse/internal/core/port"
)

// Handler is the inbound HTTP adapter through which rendering
// collaborators read the committed views and drive the filter and the
// selection. It never exposes raw upstream responses.
type Handler struct {
	dashboard port.DashboardController
	detail    port.DetailController
	logger    *slog.Logger
	router    chi.Router
}

// NewHandler creates a handler with all routes configured. feed serves the
// websocket view feed and metrics the prometheus exposition; either may be
// nil, in which case the route is not registered.
func NewHandler(
	dashboard port.DashboardController,
	detail port.DetailController,
	feed http.Handler,
	metrics http.Handler,
	logger *slog.Logger,
) *Handler {
	h := &Handler{
		dashboard: dashboard,
		detail:    detail,
		logger:    logger.With(slog.String("component", "http")),
	}
	r := chi.NewRouter()

	r.Get("/healthz", h.handleHealth)
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/dashboard", h.handleDashboard)
		r.Put("/dashboard/filter", h.handleSetFilter)
		r.Post("/dashboard/refresh", h.handleRefresh)
		r.Get("/detail", h.handleDetail)
		r.Put("/detail/selection", h.handleSelect)
		r.Delete("/detail/selection", h.handleDeselect)
		if feed != nil {
			r.Method(http.MethodGet, "/feed", feed)
		}
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps the error taxonomy onto status codes. Anything
// unexpected is logged and reported as 500 without details.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, port.ErrInvalidFilter):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, port.ErrCampaignNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		h.logger.Error("request error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
