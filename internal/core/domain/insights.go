package domain

import "time"

// AggregateInsights is a rollup over all campaigns at a point in time. A
// newer value always replaces an older one as a whole.
type AggregateInsights struct {
	Timestamp          time.Time `json:"timestamp"`
	TotalCampaigns     int       `json:"total_campaigns"`
	ActiveCampaigns    int       `json:"active_campaigns"`
	PausedCampaigns    int       `json:"paused_campaigns"`
	CompletedCampaigns int       `json:"completed_campaigns"`
	TotalImpressions   int64     `json:"total_impressions"`
	TotalClicks        int64     `json:"total_clicks"`
	TotalConversions   int64     `json:"total_conversions"`
	TotalSpend         float64   `json:"total_spend"`
	AvgCTR             float64   `json:"avg_ctr"`
	AvgCPC             float64   `json:"avg_cpc"`
	AvgConversionRate  float64   `json:"avg_conversion_rate"`
}

// Consistent reports whether the per-status counts add up to
// TotalCampaigns.
func (a AggregateInsights) Consistent() bool {
	return a.ActiveCampaigns+a.PausedCampaigns+a.CompletedCampaigns == a.TotalCampaigns
}

// CampaignInsights is a metrics snapshot for a single campaign. Counters are
// cumulative on the server side, so a snapshot is never merged with a
// previous one.
type CampaignInsights struct {
	CampaignID     string    `json:"campaign_id,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
	Impressions    int64     `json:"impressions"`
	Clicks         int64     `json:"clicks"`
	Conversions    int64     `json:"conversions"`
	Spend          float64   `json:"spend"`
	CTR            float64   `json:"ctr"`
	CPC            float64   `json:"cpc"`
	ConversionRate float64   `json:"conversion_rate"`
}
