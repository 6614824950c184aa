package port

import (
	"context"

	"adpulse/internal/core/domain"
)

// InsightsRepository is the persistence port of the development upstream.
// It backs the read API and stream endpoints served by cmd/insightsd.
type InsightsRepository interface {
	// ListCampaigns returns all campaigns ordered by creation time.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// GetAggregateInsights computes the rollup across all campaigns.
	GetAggregateInsights(ctx context.Context) (*domain.AggregateInsights, error)
	// GetCampaignInsights returns the metrics of one campaign or
	// ErrCampaignNotFound.
	GetCampaignInsights(ctx context.Context, campaignID string) (*domain.CampaignInsights, error)
	// RecordTraffic adds the given deltas to a campaign's counters.
	RecordTraffic(ctx context.Context, campaignID string, delta TrafficDelta) error
}

// TrafficDelta is an increment to a campaign's cumulative counters.
type TrafficDelta struct {
	Impressions int64
	Clicks      int64
	Conversions int64
	Spend       float64
}
