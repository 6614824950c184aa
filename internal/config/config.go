package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"adpulse/internal/config/configs"
)

// Config aggregates all configuration sections for both binaries. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. Use Load to construct a Config.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev). It is attached
	// to the logger so records from different environments can be told apart.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP configures the view API server. Prefix HTTP_.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Prefix LOG_.
	Log configs.Logger `envPrefix:"LOG_"`

	// Upstream points at the campaign read and stream API. Prefix UPSTREAM_.
	Upstream configs.Upstream `envPrefix:"UPSTREAM_"`

	// Sync holds the retry and reconnect policy. Prefix SYNC_.
	Sync configs.Sync `envPrefix:"SYNC_"`

	// Redis configures the optional view fan-out. Prefix REDIS_.
	Redis configs.Redis `envPrefix:"REDIS_"`

	// Psql configures the development upstream database. Prefix PSQL_.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Fixture configures the development upstream server. Prefix FIXTURE_.
	Fixture configs.Fixture `envPrefix:"FIXTURE_"`
}

// Load reads configuration from environment variables into a Config and
// validates it. All fields are loaded with their specified defaults when no
// environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects settings the controllers cannot run with.
func (c Config) Validate() error {
	if c.Upstream.BaseURL.Scheme != "http" && c.Upstream.BaseURL.Scheme != "https" {
		return fmt.Errorf("upstream base url must be http or https, got %q", c.Upstream.BaseURL.String())
	}
	if c.Upstream.RequestTimeout <= 0 {
		return fmt.Errorf("upstream request timeout must be positive")
	}
	if c.Sync.RetryDelay <= 0 {
		return fmt.Errorf("sync retry delay must be positive")
	}
	if c.Sync.ReconnectDelay <= 0 {
		return fmt.Errorf("sync reconnect delay must be positive")
	}
	if c.Sync.RefreshInterval < 0 {
		return fmt.Errorf("sync refresh interval must not be negative")
	}
	if c.Fixture.StreamInterval <= 0 || c.Fixture.TrafficInterval <= 0 {
		return fmt.Errorf("fixture intervals must be positive")
	}
	return nil
}
