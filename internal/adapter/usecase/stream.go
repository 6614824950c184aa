package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/juju/clock"

	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
	"adpulse/internal/metrics"
)

// StreamConfig holds the dependencies of a StreamClient.
type StreamConfig struct {
	Dialer   port.StreamDialer
	Listener port.StreamListener
	// Clock schedules reconnects. Defaults to clock.WallClock.
	Clock clock.Clock
	// ReconnectDelay is the fixed pause between a transport error and the
	// next attempt.
	ReconnectDelay time.Duration
	Metrics        port.SyncMetrics
	Logger         *slog.Logger
}

// StreamClient keeps one campaign's live insights flowing to a single
// listener. It owns at most one connection at a time and reopens it after
// a transport error, indefinitely, until closed.
//
// States move Idle -> Connecting -> Live -> Retrying -> Connecting ... and
// back to Idle on Close. Every asynchronous continuation (dial result,
// message, transport error, reconnect timer) carries the generation it was
// started under and is ignored once the generation has moved on. Listener
// calls are made with the client lock held, so after Open or Close returns
// nothing from an earlier generation reaches the listener. The listener
// must therefore not call back into the client.
type StreamClient struct {
	dialer   port.StreamDialer
	listener port.StreamListener
	clock    clock.Clock
	delay    time.Duration
	metrics  port.SyncMetrics
	logger   *slog.Logger

	mu         sync.Mutex
	gen        uint64
	status     domain.ConnectionStatus
	campaignID string
	cancel     context.CancelFunc
	conn       port.StreamConn
	timer      clock.Timer

	wg sync.WaitGroup
}

// NewStreamClient returns an idle client.
func NewStreamClient(cfg StreamConfig) *StreamClient {
	if cfg.Clock == nil {
		cfg.Clock = clock.WallClock
	}
	if cfg.Metrics == nil {
		cfg.Metrics = metrics.Nop{}
	}
	return &StreamClient{
		dialer:   cfg.Dialer,
		listener: cfg.Listener,
		clock:    cfg.Clock,
		delay:    cfg.ReconnectDelay,
		metrics:  cfg.Metrics,
		logger:   cfg.Logger.With(slog.String("component", "stream")),
		status:   domain.ConnectionIdle,
	}
}

// Open subscribes to campaignID, closing any existing connection first.
// It returns immediately; progress is reported through the listener.
func (s *StreamClient) Open(campaignID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.teardownLocked()
	if campaignID != s.campaignID {
		// the previous campaign's listener sees it go idle, the new one
		// starts from connecting
		s.setStatusLocked(domain.ConnectionIdle)
	}
	s.campaignID = campaignID
	s.connectLocked()
}

// Close tears down the live or pending connection and cancels a scheduled
// reconnect. Closing an idle client does nothing.
func (s *StreamClient) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == domain.ConnectionIdle {
		return
	}
	s.teardownLocked()
	s.setStatusLocked(domain.ConnectionIdle)
	s.logger.Debug("stream closed", slog.String("campaign_id", s.campaignID))
	s.campaignID = ""
}

// Status returns the current connection state.
func (s *StreamClient) Status() domain.ConnectionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Wait blocks until every connection goroutine has exited. Call it after
// Close, with no concurrent Open.
func (s *StreamClient) Wait() {
	s.wg.Wait()
}

// connectLocked starts a new attempt for s.campaignID.
func (s *StreamClient) connectLocked() {
	s.gen++
	gen := s.gen
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.setStatusLocked(domain.ConnectionConnecting)

	s.wg.Add(1)
	go s.run(ctx, gen, s.campaignID)
}

// teardownLocked invalidates the current generation and releases whatever
// it holds: the attempt context, the connection and the reconnect timer.
func (s *StreamClient) teardownLocked() {
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if s.conn != nil {
		_ = s.conn.Close()
		s.conn = nil
	}
}

func (s *StreamClient) setStatusLocked(status domain.ConnectionStatus) {
	if s.status == status {
		return
	}
	s.status = status
	s.metrics.StreamStatus(status)
	s.listener.OnStatus(s.campaignID, status)
}

func (s *StreamClient) run(ctx context.Context, gen uint64, campaignID string) {
	defer s.wg.Done()

	conn, err := s.dialer.Dial(ctx, campaignID)
	if err != nil {
		s.fail(gen, err)
		return
	}
	if !s.opened(gen, conn) {
		_ = conn.Close()
		return
	}
	for {
		payload, err := conn.Next()
		if err != nil {
			s.fail(gen, err)
			return
		}
		s.deliver(gen, campaignID, payload)
	}
}

// opened records conn as the live connection of gen. It reports false when
// gen is stale, in which case the caller owns conn.
func (s *StreamClient) opened(gen uint64, conn port.StreamConn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return false
	}
	s.conn = conn
	s.metrics.StreamConnect(true)
	s.setStatusLocked(domain.ConnectionLive)
	s.logger.Info("stream live", slog.String("campaign_id", s.campaignID))
	return true
}

// fail handles a dial or transport error of gen: the connection is
// dropped and one reconnect is scheduled for the same campaign.
func (s *StreamClient) fail(gen uint64, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		s.logger.Debug("ignoring error from superseded stream", slog.Any("error", err))
		return
	}
	if s.conn == nil {
		s.metrics.StreamConnect(false)
	}
	s.teardownLocked()

	next := s.gen
	s.timer = s.clock.AfterFunc(s.delay, func() {
		s.reconnect(next)
	})
	s.metrics.ReconnectScheduled()
	s.setStatusLocked(domain.ConnectionRetrying)
	s.logger.Warn("stream disconnected, reconnecting",
		slog.String("campaign_id", s.campaignID),
		slog.Duration("delay", s.delay),
		slog.Any("error", err))
}

func (s *StreamClient) reconnect(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return
	}
	s.timer = nil
	s.connectLocked()
}

func (s *StreamClient) deliver(gen uint64, campaignID string, payload []byte) {
	insights, err := decodeInsights(campaignID, payload)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return
	}
	if err != nil {
		s.metrics.StreamMessage(false)
		s.logger.Debug("dropping message", slog.String("campaign_id", campaignID), slog.Any("error", err))
		return
	}
	s.metrics.StreamMessage(true)
	s.listener.OnInsights(campaignID, insights)
}

// decodeInsights parses one pushed payload. Anything but a JSON object
// describing campaignID is reported as port.ErrMalformedMessage.
func decodeInsights(campaignID string, payload []byte) (domain.CampaignInsights, error) {
	var insights domain.CampaignInsights
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return insights, fmt.Errorf("%w: not a JSON object", port.ErrMalformedMessage)
	}
	if err := json.Unmarshal(trimmed, &insights); err != nil {
		return insights, fmt.Errorf("%w: %w", port.ErrMalformedMessage, err)
	}
	if insights.CampaignID != "" && insights.CampaignID != campaignID {
		return insights, fmt.Errorf("%w: snapshot for campaign %q", port.ErrMalformedMessage, insights.CampaignID)
	}
	return insights, nil
}
