package port

import "adpulse/internal/core/domain"

// DashboardController is the inbound port used by rendering collaborators
// to read the committed dashboard state and change the status filter.
type DashboardController interface {
	// View returns the committed snapshot projected through the current
	// filter.
	View() domain.DashboardView
	// SetFilter changes the projection. It never triggers a fetch.
	SetFilter(f domain.StatusFilter) error
	// Campaign looks a campaign up in the committed listing.
	Campaign(id string) (domain.Campaign, bool)
	// Refresh starts a new round unless one is already in flight. A pending
	// retry or refresh timer is cancelled. It reports whether a round was
	// started.
	Refresh() bool
}

// DetailController is the inbound port bound to the selected campaign.
type DetailController interface {
	// Select switches the live view to campaign c. A nil campaign clears
	// the selection.
	Select(c *domain.Campaign)
	View() domain.DetailView
}

// ViewSink receives every change to the views. Implementations must not
// block and must not call back into the controllers.
type ViewSink interface {
	DashboardChanged(v domain.DashboardView)
	DetailChanged(v domain.DetailView)
}

// SyncMetrics records controller and stream activity.
type SyncMetrics interface {
	FetchRound(ok bool)
	RetryScheduled()
	Committed()
	StreamConnect(ok bool)
	ReconnectScheduled()
	StreamMessage(applied bool)
	StreamStatus(status domain.ConnectionStatus)
}
