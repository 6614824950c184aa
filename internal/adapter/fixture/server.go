package fixture

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/juju/clock"
	"github.com/juju/errors"

	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
)

type campaignsResponse struct {
	Campaigns []domain.Campaign `json:"campaigns"`
	Total     int               `json:"total"`
}

type insightsResponse[T any] struct {
	Insights T `json:"insights"`
}

// Server serves the campaign read API and the per-campaign insights
// stream from an InsightsRepository. It is the upstream the sync daemon
// talks to during local development.
type Server struct {
	repo     port.InsightsRepository
	clock    clock.Clock
	interval time.Duration
	logger   *slog.Logger
	router   chi.Router
}

// NewServer creates a server whose streams push a snapshot every interval.
func NewServer(repo port.InsightsRepository, clk clock.Clock, interval time.Duration, logger *slog.Logger) *Server {
	if clk == nil {
		clk = clock.WallClock
	}
	s := &Server{
		repo:     repo,
		clock:    clk,
		interval: interval,
		logger:   logger.With(slog.String("component", "fixture")),
	}
	r := chi.NewRouter()
	r.Get("/campaigns", s.handleCampaigns)
	r.Get("/campaigns/insights", s.handleAggregate)
	r.Get("/campaigns/{id}/insights", s.handleCampaignInsights)
	r.Get("/campaigns/{id}/insights/stream", s.handleStream)
	s.router = r
	return s
}

// Router returns the underlying http.Handler.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) handleCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := s.repo.ListCampaigns(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if campaigns == nil {
		campaigns = []domain.Campaign{}
	}
	s.writeJSON(w, campaignsResponse{Campaigns: campaigns, Total: len(campaigns)})
}

func (s *Server) handleAggregate(w http.ResponseWriter, r *http.Request) {
	agg, err := s.repo.GetAggregateInsights(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, insightsResponse[*domain.AggregateInsights]{Insights: agg})
}

func (s *Server) handleCampaignInsights(w http.ResponseWriter, r *http.Request) {
	ins, err := s.repo.GetCampaignInsights(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, insightsResponse[*domain.CampaignInsights]{Insights: ins})
}

// handleStream pushes the campaign's insights immediately and then every
// interval until the client goes away. Unknown campaigns result in HTTP
// 404 before the stream starts.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	ins, err := s.repo.GetCampaignInsights(ctx, id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	logger := s.logger.With(slog.String("campaign_id", id))
	logger.Debug("stream opened")
	defer logger.Debug("stream closed")

	for {
		if err = writeEvent(w, ins); err != nil {
			return
		}
		flusher.Flush()

		select {
		case <-ctx.Done():
			return
		case <-s.clock.After(s.interval):
		}

		ins, err = s.repo.GetCampaignInsights(ctx, id)
		if err != nil {
			if !errors.Is(err, port.ErrCampaignNotFound) && ctx.Err() == nil {
				logger.Warn("stream read failed", slog.Any("error", err))
			}
			return
		}
	}
}

func writeEvent(w http.ResponseWriter, ins *domain.CampaignInsights) error {
	payload, err := json.Marshal(ins)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "data: %s\n\n", payload)
	return err
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, port.ErrCampaignNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	s.logger.Error("request error", slog.Any("error", err))
	http.Error(w, "internal error", http.StatusInternalServerError)
}
