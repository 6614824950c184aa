package domain

import "time"

// CampaignStatus is the lifecycle state of a campaign as reported upstream.
type CampaignStatus string

const (
	StatusActive    CampaignStatus = "active"
	StatusPaused    CampaignStatus = "paused"
	StatusCompleted CampaignStatus = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s CampaignStatus) Valid() bool {
	switch s {
	case StatusActive, StatusPaused, StatusCompleted:
		return true
	}
	return false
}

// Campaign represents an advertising campaign. It is owned by the upstream
// system and only ever read here.
// Budgets are monetary amounts in the account currency.
type Campaign struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	BrandID     string         `json:"brand_id"`
	Status      CampaignStatus `json:"status"`
	Budget      float64        `json:"budget"`
	DailyBudget float64        `json:"daily_budget"`
	Platforms   []string       `json:"platforms"`
	CreatedAt   time.Time      `json:"created_at"`
}

// Clone returns a copy of c that shares no memory with it.
func (c Campaign) Clone() Campaign {
	if c.Platforms != nil {
		c.Platforms = append([]string(nil), c.Platforms...)
	}
	return c
}
