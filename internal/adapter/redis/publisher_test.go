package redisadapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"adpulse/internal/core/domain"
)

type published struct {
	channel string
	payload []byte
}

// fakePubSub records every publish. When gate is set each publish waits
// for a value on it first.
type fakePubSub struct {
	mu   sync.Mutex
	msgs []published
	err  error
	gate chan struct{}
}

func (f *fakePubSub) Publish(_ context.Context, channel string, message interface{}) *redis.IntCmd {
	if f.gate != nil {
		<-f.gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.msgs = append(f.msgs, published{channel: channel, payload: message.([]byte)})
	return redis.NewIntResult(1, f.err)
}

func (f *fakePubSub) sent() []published {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]published(nil), f.msgs...)
}

const (
	shortWait = 2 * time.Second
	tick      = 5 * time.Millisecond
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestViewPublisherPublishesViews(t *testing.T) {
	defer goleak.VerifyNone(t)
	client := &fakePubSub{}
	p := NewViewPublisher(client, "adpulse", 8, discardLogger())

	p.DashboardChanged(domain.DashboardView{Total: 3, Filter: domain.FilterAll})
	p.DetailChanged(domain.DetailView{Status: domain.ConnectionLive, IsLive: true})
	p.Close()

	sent := client.sent()
	require.Len(t, sent, 2)
	assert.Equal(t, "adpulse:dashboard", sent[0].channel)
	assert.Equal(t, "adpulse:detail", sent[1].channel)

	var dash domain.DashboardView
	require.NoError(t, json.Unmarshal(sent[0].payload, &dash))
	assert.Equal(t, 3, dash.Total)

	var detail domain.DetailView
	require.NoError(t, json.Unmarshal(sent[1].payload, &detail))
	assert.True(t, detail.IsLive)
}

func TestViewPublisherDropsWhenQueueIsFull(t *testing.T) {
	client := &fakePubSub{gate: make(chan struct{})}
	p := NewViewPublisher(client, "x", 1, discardLogger())

	// the first view is taken by the publishing goroutine, which then
	// blocks on the gate; the second fills the queue
	p.DashboardChanged(domain.DashboardView{Total: 1})
	require.Eventually(t, func() bool { return len(p.queue) == 0 }, shortWait, tick)
	p.DashboardChanged(domain.DashboardView{Total: 2})
	p.DashboardChanged(domain.DashboardView{Total: 3})

	close(client.gate)
	p.Close()

	sent := client.sent()
	require.Len(t, sent, 2)
	for i, want := range []int{1, 2} {
		var v domain.DashboardView
		require.NoError(t, json.Unmarshal(sent[i].payload, &v))
		assert.Equal(t, want, v.Total)
	}
}

func TestViewPublisherKeepsGoingAfterErrors(t *testing.T) {
	client := &fakePubSub{err: errors.New("connection refused")}
	p := NewViewPublisher(client, "x", 4, discardLogger())

	p.DetailChanged(domain.DetailView{})
	p.DetailChanged(domain.DetailView{})
	p.Close()

	assert.Len(t, client.sent(), 2)
}

func TestViewPublisherIgnoresViewsAfterClose(t *testing.T) {
	client := &fakePubSub{}
	p := NewViewPublisher(client, "x", 4, discardLogger())
	p.Close()
	p.Close()

	p.DashboardChanged(domain.DashboardView{})
	assert.Empty(t, client.sent())
}

func TestNewClientAcceptsURLAndAddress(t *testing.T) {
	client, err := newClient("redis://localhost:6380/2")
	require.NoError(t, err)
	assert.Equal(t, "localhost:6380", client.Options().Addr)
	assert.Equal(t, 2, client.Options().DB)
	_ = client.Close()

	client, err = newClient("cache.internal:6379")
	require.NoError(t, err)
	assert.Equal(t, "cache.internal:6379", client.Options().Addr)
	_ = client.Close()

	_, err = newClient("redis://localhost:6379/notadb")
	assert.Error(t, err)
}
