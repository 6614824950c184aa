package usecase

import (
	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
)

// Sinks fans view changes out to several port.ViewSink values in order.
type Sinks []port.ViewSink

func (s Sinks) DashboardChanged(v domain.DashboardView) {
	for _, sink := range s {
		sink.DashboardChanged(v)
	}
}

func (s Sinks) DetailChanged(v domain.DetailView) {
	for _, sink := range s {
		sink.DetailChanged(v)
	}
}
