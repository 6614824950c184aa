package domain

import "time"

// DashboardView is the read-only state handed to rendering collaborators
// by the dashboard controller.
type DashboardView struct {
	Campaigns []Campaign `json:"campaigns"`
	// Total is the size of the committed list before filtering.
	Total     int                  `json:"total"`
	Counts    map[StatusFilter]int `json:"counts"`
	Aggregate *AggregateInsights   `json:"aggregate_insights"`
	Loading   bool                 `json:"loading"`
	Filter    StatusFilter         `json:"filter"`
	// CommittedAt is zero until the first successful round.
	CommittedAt time.Time `json:"committed_at"`
}

// DetailView is the read-only state of the campaign detail panel.
type DetailView struct {
	Campaign *Campaign         `json:"campaign"`
	Insights *CampaignInsights `json:"insights"`
	Status   ConnectionStatus  `json:"status"`
	IsLive   bool              `json:"is_live"`
}
