package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"adpulse/internal/core/domain"
)

const metricsNamespace = "adpulse"

// Collector is a prometheus.Collector recording the activity of the sync
// controllers and stream clients. It implements port.SyncMetrics.
type Collector struct {
	fetchRounds        *prometheus.CounterVec
	retriesScheduled   prometheus.Counter
	commits            prometheus.Counter
	streamConnects     *prometheus.CounterVec
	reconnectsSchedule prometheus.Counter
	streamMessages     *prometheus.CounterVec
	streamStatus       prometheus.Gauge
}

// NewCollector returns a new Collector.
func NewCollector() *Collector {
	return &Collector{
		fetchRounds: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "fetch_rounds_total",
				Help:      "The number of dashboard fetch rounds by result.",
			}, []string{"result"},
		),
		retriesScheduled: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "retries_scheduled_total",
				Help:      "The number of dashboard retry rounds scheduled after a failure.",
			},
		),
		commits: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "commits_total",
				Help:      "The number of dashboard snapshots committed.",
			},
		),
		streamConnects: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "stream_connects_total",
				Help:      "The number of stream connection attempts by result.",
			}, []string{"result"},
		),
		reconnectsSchedule: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "stream_reconnects_scheduled_total",
				Help:      "The number of stream reconnects scheduled after a transport error.",
			},
		),
		streamMessages: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "stream_messages_total",
				Help:      "The number of pushed messages by outcome.",
			}, []string{"result"},
		),
		streamStatus: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "stream_status",
				Help:      "The stream state: 0 idle, 1 connecting, 2 live, 3 retrying.",
			},
		),
	}
}

// Describe is part of the prometheus.Collector interface.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.fetchRounds.Describe(ch)
	c.retriesScheduled.Describe(ch)
	c.commits.Describe(ch)
	c.streamConnects.Describe(ch)
	c.reconnectsSchedule.Describe(ch)
	c.streamMessages.Describe(ch)
	c.streamStatus.Describe(ch)
}

// Collect is part of the prometheus.Collector interface.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.fetchRounds.Collect(ch)
	c.retriesScheduled.Collect(ch)
	c.commits.Collect(ch)
	c.streamConnects.Collect(ch)
	c.reconnectsSchedule.Collect(ch)
	c.streamMessages.Collect(ch)
	c.streamStatus.Collect(ch)
}

func result(ok bool, good, bad string) string {
	if ok {
		return good
	}
	return bad
}

func (c *Collector) FetchRound(ok bool) {
	c.fetchRounds.WithLabelValues(result(ok, "success", "failure")).Inc()
}

func (c *Collector) RetryScheduled() { c.retriesScheduled.Inc() }

func (c *Collector) Committed() { c.commits.Inc() }

func (c *Collector) StreamConnect(ok bool) {
	c.streamConnects.WithLabelValues(result(ok, "success", "failure")).Inc()
}

func (c *Collector) ReconnectScheduled() { c.reconnectsSchedule.Inc() }

func (c *Collector) StreamMessage(applied bool) {
	c.streamMessages.WithLabelValues(result(applied, "applied", "dropped")).Inc()
}

func (c *Collector) StreamStatus(status domain.ConnectionStatus) {
	var v float64
	switch status {
	case domain.ConnectionConnecting:
		v = 1
	case domain.ConnectionLive:
		v = 2
	case domain.ConnectionRetrying:
		v = 3
	}
	c.streamStatus.Set(v)
}

// Nop discards every observation.
type Nop struct{}

func (Nop) FetchRound(bool)                      {}
func (Nop) RetryScheduled()                      {}
func (Nop) Committed()                           {}
func (Nop) StreamConnect(bool)                   {}
func (Nop) ReconnectScheduled()                  {}
func (Nop) StreamMessage(bool)                   {}
func (Nop) StreamStatus(domain.ConnectionStatus) {}
