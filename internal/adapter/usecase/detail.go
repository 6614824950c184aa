package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/juju/clock"

	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
)

// DetailConfig holds the dependencies of a DetailSync.
type DetailConfig struct {
	Dialer port.StreamDialer
	// Reader, when set, is used to seed a new selection with a one-shot
	// snapshot while the stream connects.
	Reader         port.InsightsReader
	Clock          clock.Clock
	ReconnectDelay time.Duration
	RequestTimeout time.Duration
	Sink           port.ViewSink
	Metrics        port.SyncMetrics
	Logger         *slog.Logger
}

// DetailSync binds a StreamClient to the selected campaign. Changing the
// selection closes the previous stream before the next one opens and
// clears the displayed insights, so the view never shows one campaign's
// snapshot under another campaign.
type DetailSync struct {
	reader         port.InsightsReader
	requestTimeout time.Duration
	sink           port.ViewSink
	logger         *slog.Logger
	stream         *StreamClient

	// selectMu serializes selection changes. It is held across calls into
	// the stream client; mu never is.
	selectMu sync.Mutex

	mu          sync.Mutex
	gen         uint64
	campaign    *domain.Campaign
	insights    *domain.CampaignInsights
	status      domain.ConnectionStatus
	primeCancel context.CancelFunc

	wg sync.WaitGroup
}

// NewDetailSync returns a controller with nothing selected.
func NewDetailSync(cfg DetailConfig) *DetailSync {
	d := &DetailSync{
		reader:         cfg.Reader,
		requestTimeout: cfg.RequestTimeout,
		sink:           cfg.Sink,
		logger:         cfg.Logger.With(slog.String("component", "detail")),
		status:         domain.ConnectionIdle,
	}
	d.stream = NewStreamClient(StreamConfig{
		Dialer:         cfg.Dialer,
		Listener:       d,
		Clock:          cfg.Clock,
		ReconnectDelay: cfg.ReconnectDelay,
		Metrics:        cfg.Metrics,
		Logger:         cfg.Logger,
	})
	return d
}

// Select makes c the selected campaign. A nil c clears the selection.
// Selecting the campaign that is already selected only refreshes its
// metadata and keeps the stream.
func (d *DetailSync) Select(c *domain.Campaign) {
	d.selectMu.Lock()
	defer d.selectMu.Unlock()

	d.mu.Lock()
	if c != nil && d.campaign != nil && c.ID == d.campaign.ID {
		cp := c.Clone()
		d.campaign = &cp
		d.notifyLocked()
		d.mu.Unlock()
		return
	}
	if c == nil && d.campaign == nil {
		d.mu.Unlock()
		return
	}
	d.mu.Unlock()

	// Once Close returns the old stream can no longer reach the listener.
	d.stream.Close()

	d.mu.Lock()
	d.gen++
	gen := d.gen
	if d.primeCancel != nil {
		d.primeCancel()
		d.primeCancel = nil
	}
	d.insights = nil
	d.status = domain.ConnectionIdle
	d.campaign = nil
	var primeCtx context.Context
	if c != nil {
		cp := c.Clone()
		d.campaign = &cp
		if d.reader != nil {
			primeCtx, d.primeCancel = context.WithCancel(context.Background())
		}
	}
	d.notifyLocked()
	d.mu.Unlock()

	if c == nil {
		d.logger.Debug("selection cleared")
		return
	}
	d.logger.Info("campaign selected", slog.String("campaign_id", c.ID))
	d.stream.Open(c.ID)
	if primeCtx != nil {
		d.wg.Add(1)
		go d.prime(primeCtx, gen, c.ID)
	}
}

// Close clears the selection and waits for background work to finish.
func (d *DetailSync) Close() {
	d.Select(nil)
	d.wg.Wait()
	d.stream.Wait()
}

// View returns the selected campaign with its latest snapshot.
func (d *DetailSync) View() domain.DetailView {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.viewLocked()
}

// OnInsights is part of the port.StreamListener interface.
func (d *DetailSync) OnInsights(campaignID string, insights domain.CampaignInsights) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.campaign == nil || d.campaign.ID != campaignID {
		return
	}
	d.insights = &insights
	d.notifyLocked()
}

// OnStatus is part of the port.StreamListener interface.
func (d *DetailSync) OnStatus(campaignID string, status domain.ConnectionStatus) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.campaign == nil || d.campaign.ID != campaignID {
		return
	}
	d.status = status
	d.notifyLocked()
}

// prime seeds the view with a one-shot read. A pushed snapshot that
// arrived first always wins; failures are left to the stream to recover.
func (d *DetailSync) prime(ctx context.Context, gen uint64, campaignID string) {
	defer d.wg.Done()

	if d.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.requestTimeout)
		defer cancel()
	}
	insights, err := d.reader.GetCampaignInsights(ctx, campaignID)

	d.mu.Lock()
	defer d.mu.Unlock()

	if gen != d.gen {
		return
	}
	if err != nil {
		d.logger.Warn("priming campaign insights failed",
			slog.String("campaign_id", campaignID),
			slog.Any("error", err))
		return
	}
	if d.insights != nil || insights == nil {
		return
	}
	cp := *insights
	d.insights = &cp
	d.notifyLocked()
}

func (d *DetailSync) viewLocked() domain.DetailView {
	v := domain.DetailView{
		Status: d.status,
		IsLive: d.status == domain.ConnectionLive,
	}
	if d.campaign != nil {
		c := d.campaign.Clone()
		v.Campaign = &c
	}
	if d.insights != nil {
		ins := *d.insights
		v.Insights = &ins
	}
	return v
}

func (d *DetailSync) notifyLocked() {
	if d.sink != nil {
		d.sink.DetailChanged(d.viewLocked())
	}
}
