package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/juju/clock"
	"golang.org/x/sync/errgroup"

	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
	"adpulse/internal/metrics"
)

// DashboardConfig holds the dependencies of a DashboardSync.
type DashboardConfig struct {
	Reader port.InsightsReader
	// Clock schedules retries and refreshes. Defaults to clock.WallClock.
	Clock clock.Clock
	// RetryDelay is the fixed pause after a failed round.
	RetryDelay time.Duration
	// RefreshInterval, when positive, schedules a new round after each
	// successful one.
	RefreshInterval time.Duration
	// RequestTimeout bounds a whole round. Zero means no bound.
	RequestTimeout time.Duration
	Sink           port.ViewSink
	Metrics        port.SyncMetrics
	Logger         *slog.Logger
}

// DashboardSync keeps the campaign listing and the aggregate insights in
// step with the upstream API. Both reads of a round run concurrently and
// are committed together or not at all; a failed round leaves the last
// good snapshot in place and is retried in full after RetryDelay, with no
// limit on attempts. At most one timer is pending at any time.
type DashboardSync struct {
	reader          port.InsightsReader
	clock           clock.Clock
	retryDelay      time.Duration
	refreshInterval time.Duration
	requestTimeout  time.Duration
	sink            port.ViewSink
	metrics         port.SyncMetrics
	logger          *slog.Logger

	mu       sync.Mutex
	gen      uint64
	running  bool
	inFlight bool
	timer    clock.Timer
	timerSeq uint64
	ctx      context.Context
	cancel   context.CancelFunc

	campaigns   []domain.Campaign
	aggregate   *domain.AggregateInsights
	loaded      bool
	committedAt time.Time
	filter      domain.StatusFilter

	wg sync.WaitGroup
}

// NewDashboardSync returns an inactive controller. Call Start to begin
// fetching.
func NewDashboardSync(cfg DashboardConfig) *DashboardSync {
	if cfg.Clock == nil {
		cfg.Clock = clock.WallClock
	}
	if cfg.Metrics == nil {
		cfg.Metrics = metrics.Nop{}
	}
	return &DashboardSync{
		reader:          cfg.Reader,
		clock:           cfg.Clock,
		retryDelay:      cfg.RetryDelay,
		refreshInterval: cfg.RefreshInterval,
		requestTimeout:  cfg.RequestTimeout,
		sink:            cfg.Sink,
		metrics:         cfg.Metrics,
		logger:          cfg.Logger.With(slog.String("component", "dashboard")),
		filter:          domain.FilterAll,
	}
}

// Start activates the controller and issues the first round. Calling Start
// on an active controller does nothing. The context bounds every round
// until Stop.
func (d *DashboardSync) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running {
		return
	}
	d.running = true
	d.gen++
	d.ctx, d.cancel = context.WithCancel(ctx)
	d.startRoundLocked()
	d.notifyLocked()
}

// Stop cancels the round in flight and any pending timer, then waits for
// the round to unwind. The committed snapshot is kept.
func (d *DashboardSync) Stop() {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return
	}
	d.running = false
	d.gen++
	d.inFlight = false
	d.stopTimerLocked()
	d.cancel()
	d.mu.Unlock()

	d.wg.Wait()
}

// Refresh starts a round now unless one is in flight. A pending retry or
// refresh timer is replaced by the new round.
func (d *DashboardSync) Refresh() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.running || d.inFlight {
		return false
	}
	d.stopTimerLocked()
	d.startRoundLocked()
	return true
}

// View returns the committed snapshot projected through the current filter.
func (d *DashboardSync) View() domain.DashboardView {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.viewLocked()
}

// SetFilter changes the status filter. It never triggers a fetch.
func (d *DashboardSync) SetFilter(f domain.StatusFilter) error {
	if _, err := domain.ParseStatusFilter(string(f)); err != nil || f == "" {
		return fmt.Errorf("%w: %q", port.ErrInvalidFilter, f)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.filter == f {
		return nil
	}
	d.filter = f
	d.notifyLocked()
	return nil
}

// Campaign looks id up in the committed listing.
func (d *DashboardSync) Campaign(id string) (domain.Campaign, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, c := range d.campaigns {
		if c.ID == id {
			return c.Clone(), true
		}
	}
	return domain.Campaign{}, false
}

func (d *DashboardSync) viewLocked() domain.DashboardView {
	v := domain.DashboardView{
		Campaigns:   domain.FilterCampaigns(d.campaigns, d.filter),
		Total:       len(d.campaigns),
		Counts:      domain.CountByFilter(d.campaigns),
		Loading:     !d.loaded,
		Filter:      d.filter,
		CommittedAt: d.committedAt,
	}
	if d.aggregate != nil {
		agg := *d.aggregate
		v.Aggregate = &agg
	}
	return v
}

func (d *DashboardSync) notifyLocked() {
	if d.sink != nil {
		d.sink.DashboardChanged(d.viewLocked())
	}
}

func (d *DashboardSync) stopTimerLocked() {
	d.timerSeq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *DashboardSync) startRoundLocked() {
	d.inFlight = true
	d.wg.Add(1)
	go d.round(d.ctx, d.gen)
}

// round runs one fetch pair and commits or schedules a retry.
func (d *DashboardSync) round(ctx context.Context, gen uint64) {
	defer d.wg.Done()

	list, agg, err := d.fetch(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()

	if gen != d.gen {
		return
	}
	d.inFlight = false

	if err != nil && ctx.Err() != nil {
		// the Start context is done; nothing to retry against
		d.logger.Debug("dashboard round abandoned", slog.Any("error", ctx.Err()))
		return
	}
	if err != nil {
		d.metrics.FetchRound(false)
		d.logger.Warn("dashboard fetch failed, retrying",
			slog.Duration("delay", d.retryDelay),
			slog.Any("error", err))
		d.metrics.RetryScheduled()
		d.scheduleLocked(d.retryDelay)
		return
	}

	d.metrics.FetchRound(true)
	if !agg.Consistent() {
		d.logger.Warn("aggregate status counts do not add up",
			slog.Int("total", agg.TotalCampaigns),
			slog.Int("active", agg.ActiveCampaigns),
			slog.Int("paused", agg.PausedCampaigns),
			slog.Int("completed", agg.CompletedCampaigns))
	}
	d.campaigns = list.Campaigns
	d.aggregate = agg
	d.loaded = true
	d.committedAt = d.clock.Now()
	d.metrics.Committed()
	d.logger.Info("dashboard committed", slog.Int("campaigns", len(list.Campaigns)))
	d.notifyLocked()

	if d.refreshInterval > 0 {
		d.scheduleLocked(d.refreshInterval)
	}
}

// scheduleLocked arms the single timer slot. A round is only ever started
// from an empty slot, so there is never a second timer to replace.
func (d *DashboardSync) scheduleLocked(delay time.Duration) {
	if d.timer != nil {
		return
	}
	d.timerSeq++
	gen, seq := d.gen, d.timerSeq
	d.timer = d.clock.AfterFunc(delay, func() {
		d.fire(gen, seq)
	})
}

// fire runs when a timer expires. A timer that was stopped or replaced
// after it had already expired is recognised by its sequence number.
func (d *DashboardSync) fire(gen, seq uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if gen != d.gen || seq != d.timerSeq || !d.running {
		return
	}
	d.timer = nil
	if d.inFlight {
		return
	}
	d.startRoundLocked()
}

// fetch issues the listing and aggregate reads concurrently and waits for
// both. The first failure cancels the other read.
func (d *DashboardSync) fetch(ctx context.Context) (*port.CampaignList, *domain.AggregateInsights, error) {
	if d.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.requestTimeout)
		defer cancel()
	}

	var (
		list *port.CampaignList
		agg  *domain.AggregateInsights
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		l, err := d.reader.ListCampaigns(gctx)
		if err != nil {
			return err
		}
		if l == nil {
			return fmt.Errorf("%w: empty campaign listing", port.ErrFetchFailed)
		}
		list = l
		return nil
	})
	g.Go(func() error {
		a, err := d.reader.GetAggregateInsights(gctx)
		if err != nil {
			return err
		}
		if a == nil {
			return fmt.Errorf("%w: empty aggregate insights", port.ErrFetchFailed)
		}
		agg = a
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return list, agg, nil
}
