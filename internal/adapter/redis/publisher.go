package redisadapter

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"adpulse/internal/core/domain"
)

const (
	publishTimeout = 2 * time.Second

	// DefaultQueueSize bounds the views waiting to be published.
	DefaultQueueSize = 64
)

// PubSub is the subset of the Redis client used to fan views out.
type PubSub interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

type message struct {
	channel string
	payload []byte
}

// ViewPublisher publishes every committed view as JSON on
// <prefix>:dashboard and <prefix>:detail. It implements port.ViewSink:
// views are queued without blocking and dropped when the queue is full.
type ViewPublisher struct {
	client PubSub
	prefix string
	logger *slog.Logger

	mu     sync.RWMutex
	closed bool
	queue  chan message
	done   chan struct{}
}

// NewViewPublisher starts the publishing goroutine. Call Close to stop it.
func NewViewPublisher(client PubSub, prefix string, queueSize int, logger *slog.Logger) *ViewPublisher {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	p := &ViewPublisher{
		client: client,
		prefix: prefix,
		logger: logger.With(slog.String("component", "redis")),
		queue:  make(chan message, queueSize),
		done:   make(chan struct{}),
	}
	go p.run()
	return p
}

// DashboardChannel returns the channel dashboard views are published on.
func (p *ViewPublisher) DashboardChannel() string { return p.prefix + ":dashboard" }

// DetailChannel returns the channel detail views are published on.
func (p *ViewPublisher) DetailChannel() string { return p.prefix + ":detail" }

// DashboardChanged is part of the port.ViewSink interface.
func (p *ViewPublisher) DashboardChanged(v domain.DashboardView) {
	p.enqueue(p.DashboardChannel(), v)
}

// DetailChanged is part of the port.ViewSink interface.
func (p *ViewPublisher) DetailChanged(v domain.DetailView) {
	p.enqueue(p.DetailChannel(), v)
}

// Close publishes what is already queued and stops. Views handed over
// after Close are discarded.
func (p *ViewPublisher) Close() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.queue)
	}
	p.mu.Unlock()
	<-p.done
}

func (p *ViewPublisher) enqueue(channel string, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		p.logger.Error("encode view error", slog.Any("error", err))
		return
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return
	}
	select {
	case p.queue <- message{channel: channel, payload: payload}:
	default:
		p.logger.Warn("publish queue full, dropping view", slog.String("channel", channel))
	}
}

func (p *ViewPublisher) run() {
	defer close(p.done)

	for m := range p.queue {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		err := p.client.Publish(ctx, m.channel, m.payload).Err()
		cancel()
		if err != nil {
			p.logger.Warn("publish failed", slog.String("channel", m.channel), slog.Any("error", err))
		}
	}
}
