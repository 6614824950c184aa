package configs

import "time"

// Fixture configures the development upstream served by cmd/insightsd.
type Fixture struct {
	Port uint16 `env:"PORT" envDefault:"8090"`
	// StreamInterval is how often each open stream pushes a snapshot.
	StreamInterval time.Duration `env:"STREAM_INTERVAL" envDefault:"2s"`
	// TrafficInterval is how often simulated traffic is recorded.
	TrafficInterval time.Duration `env:"TRAFFIC_INTERVAL" envDefault:"1s"`
}
