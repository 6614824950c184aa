package port

import (
	"context"

	"adpulse/internal/core/domain"
)

// InsightsReader is the outbound port to the upstream read API. Every
// method is a single request/response round trip with no retry or caching
// of its own. Failures are reported as ErrFetchFailed.
type InsightsReader interface {
	// ListCampaigns returns the full campaign listing.
	ListCampaigns(ctx context.Context) (*CampaignList, error)
	// GetAggregateInsights returns the rollup over all campaigns.
	GetAggregateInsights(ctx context.Context) (*domain.AggregateInsights, error)
	// GetCampaignInsights returns the current snapshot for one campaign.
	GetCampaignInsights(ctx context.Context, campaignID string) (*domain.CampaignInsights, error)
}

// CampaignList is the listing response. Total is what the server reports
// and is not required to equal len(Campaigns).
type CampaignList struct {
	Campaigns []domain.Campaign `json:"campaigns"`
	Total     int               `json:"total"`
}
