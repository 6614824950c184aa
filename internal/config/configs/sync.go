package configs

import "time"

// Sync holds the recovery policy of the controllers. Both delays are fixed;
// there is no backoff growth and no attempt cap.
type Sync struct {
	// RetryDelay separates failed dashboard rounds.
	RetryDelay time.Duration `env:"RETRY_DELAY" envDefault:"5s"`
	// ReconnectDelay separates a stream transport error from the next
	// connection attempt.
	ReconnectDelay time.Duration `env:"RECONNECT_DELAY" envDefault:"5s"`
	// RefreshInterval re-fetches the dashboard after a successful round.
	// Zero disables periodic refresh.
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL" envDefault:"0s"`
	// PrimeDetail seeds a newly selected campaign with a one-shot read
	// while the stream connects.
	PrimeDetail bool `env:"PRIME_DETAIL" envDefault:"true"`
}
