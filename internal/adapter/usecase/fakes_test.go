package usecase

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
)

const (
	shortWait = 2 * time.Second
	tick      = 5 * time.Millisecond
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeConn is a scriptable port.StreamConn.
type fakeConn struct {
	campaignID string
	msgs       chan []byte
	errs       chan error
	closed     chan struct{}
	closeOnce  sync.Once

	mu         sync.Mutex
	closeCalls int
}

func newFakeConn(campaignID string) *fakeConn {
	return &fakeConn{
		campaignID: campaignID,
		msgs:       make(chan []byte),
		errs:       make(chan error),
		closed:     make(chan struct{}),
	}
}

func (c *fakeConn) Next() ([]byte, error) {
	select {
	case m := <-c.msgs:
		return m, nil
	case err := <-c.errs:
		return nil, err
	case <-c.closed:
		return nil, port.ErrStreamTransport
	}
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	c.closeCalls++
	c.mu.Unlock()
	c.closeOnce.Do(func() { close(c.closed) })
	return nil
}

func (c *fakeConn) isClosed() bool {
	select {
	case <-c.closed:
		return true
	default:
		return false
	}
}

// push hands a payload to the reader blocked in Next.
func (c *fakeConn) push(t *testing.T, payload string) {
	t.Helper()
	select {
	case c.msgs <- []byte(payload):
	case <-time.After(shortWait):
		t.Fatalf("nobody reading from stream %s", c.campaignID)
	}
}

// breakWith fails the connection as a transport error would.
func (c *fakeConn) breakWith(t *testing.T, err error) {
	t.Helper()
	select {
	case c.errs <- err:
	case <-time.After(shortWait):
		t.Fatalf("nobody reading from stream %s", c.campaignID)
	}
}

// fakeDialer hands out fakeConns and records every dial. Dial errors are
// consumed from failures before a connection is created.
type fakeDialer struct {
	mu       sync.Mutex
	dials    []string
	failures []error
	conns    chan *fakeConn
}

func newFakeDialer() *fakeDialer {
	return &fakeDialer{conns: make(chan *fakeConn, 16)}
}

func (d *fakeDialer) Dial(ctx context.Context, campaignID string) (port.StreamConn, error) {
	d.mu.Lock()
	d.dials = append(d.dials, campaignID)
	var err error
	if len(d.failures) > 0 {
		err, d.failures = d.failures[0], d.failures[1:]
	}
	d.mu.Unlock()
	if err != nil {
		return nil, err
	}
	conn := newFakeConn(campaignID)
	d.conns <- conn
	return conn, nil
}

func (d *fakeDialer) failNext(errs ...error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.failures = append(d.failures, errs...)
}

func (d *fakeDialer) dialed() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.dials...)
}

// nextConn waits for the next successful dial.
func (d *fakeDialer) nextConn(t *testing.T) *fakeConn {
	t.Helper()
	select {
	case c := <-d.conns:
		return c
	case <-time.After(shortWait):
		t.Fatal("no connection dialed")
		return nil
	}
}

// recorder is a port.StreamListener keeping everything it hears.
type recorder struct {
	mu       sync.Mutex
	insights []domain.CampaignInsights
	statuses []domain.ConnectionStatus
	ids      []string
}

func (r *recorder) OnInsights(campaignID string, insights domain.CampaignInsights) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = append(r.ids, campaignID)
	r.insights = append(r.insights, insights)
}

func (r *recorder) OnStatus(_ string, status domain.ConnectionStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses = append(r.statuses, status)
}

func (r *recorder) lastStatus() domain.ConnectionStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.statuses) == 0 {
		return ""
	}
	return r.statuses[len(r.statuses)-1]
}

func (r *recorder) received() []domain.CampaignInsights {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.CampaignInsights(nil), r.insights...)
}

func (r *recorder) statusLog() []domain.ConnectionStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.ConnectionStatus(nil), r.statuses...)
}

// viewRecorder is a port.ViewSink keeping every view it is handed.
type viewRecorder struct {
	mu        sync.Mutex
	dashboard []domain.DashboardView
	detail    []domain.DetailView
}

func (v *viewRecorder) DashboardChanged(view domain.DashboardView) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.dashboard = append(v.dashboard, view)
}

func (v *viewRecorder) DetailChanged(view domain.DetailView) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.detail = append(v.detail, view)
}

func (v *viewRecorder) dashboardViews() []domain.DashboardView {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]domain.DashboardView(nil), v.dashboard...)
}

func (v *viewRecorder) detailViews() []domain.DetailView {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]domain.DetailView(nil), v.detail...)
}

// countingMetrics is a port.SyncMetrics tallying calls by name.
type countingMetrics struct {
	mu     sync.Mutex
	counts map[string]int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{counts: map[string]int{}}
}

func (m *countingMetrics) inc(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[name]++
}

func (m *countingMetrics) get(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[name]
}

func (m *countingMetrics) FetchRound(ok bool) {
	if ok {
		m.inc("fetch_ok")
	} else {
		m.inc("fetch_failed")
	}
}
func (m *countingMetrics) RetryScheduled() { m.inc("retry") }
func (m *countingMetrics) Committed()      { m.inc("commit") }
func (m *countingMetrics) StreamConnect(ok bool) {
	if ok {
		m.inc("connect_ok")
	} else {
		m.inc("connect_failed")
	}
}
func (m *countingMetrics) ReconnectScheduled() { m.inc("reconnect") }
func (m *countingMetrics) StreamMessage(applied bool) {
	if applied {
		m.inc("msg_applied")
	} else {
		m.inc("msg_dropped")
	}
}
func (m *countingMetrics) StreamStatus(domain.ConnectionStatus) {}

func eventually(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	require.Eventually(t, cond, shortWait, tick, msg)
}
