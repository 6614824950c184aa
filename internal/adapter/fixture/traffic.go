package fixture

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/juju/clock"

	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
)

// TrafficSimulator records random traffic for every active campaign at a
// fixed interval, so open streams have something to show.
type TrafficSimulator struct {
	repo     port.InsightsRepository
	clock    clock.Clock
	interval time.Duration
	rand     *rand.Rand
	logger   *slog.Logger
}

// NewTrafficSimulator returns a simulator drawing from a source seeded
// with seed.
func NewTrafficSimulator(repo port.InsightsRepository, clk clock.Clock, interval time.Duration, seed int64, logger *slog.Logger) *TrafficSimulator {
	if clk == nil {
		clk = clock.WallClock
	}
	return &TrafficSimulator{
		repo:     repo,
		clock:    clk,
		interval: interval,
		rand:     rand.New(rand.NewSource(seed)),
		logger:   logger.With(slog.String("component", "traffic")),
	}
}

// Run records traffic every interval until ctx is done.
func (s *TrafficSimulator) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.clock.After(s.interval):
		}
		if err := s.Tick(ctx); err != nil && ctx.Err() == nil {
			s.logger.Warn("recording traffic failed", slog.Any("error", err))
		}
	}
}

// Tick records one round of traffic for the active campaigns.
func (s *TrafficSimulator) Tick(ctx context.Context) error {
	campaigns, err := s.repo.ListCampaigns(ctx)
	if err != nil {
		return err
	}
	for _, c := range campaigns {
		if c.Status != domain.StatusActive {
			continue
		}
		if err = s.repo.RecordTraffic(ctx, c.ID, s.delta()); err != nil {
			return err
		}
	}
	return nil
}

func (s *TrafficSimulator) delta() port.TrafficDelta {
	impressions := int64(50 + s.rand.Intn(450))
	clicks := impressions * int64(1+s.rand.Intn(5)) / 100
	conversions := clicks * int64(s.rand.Intn(20)) / 100
	spend := float64(clicks) * (0.2 + s.rand.Float64())
	return port.TrafficDelta{
		Impressions: impressions,
		Clicks:      clicks,
		Conversions: conversions,
		Spend:       float64(int64(spend*100)) / 100,
	}
}
