package configs

// Redis configures publishing of committed views. An empty Address turns
// the publisher off.
type Redis struct {
	// Address is either a redis:// URL or host:port.
	Address       string `env:"ADDRESS"`
	ChannelPrefix string `env:"CHANNEL_PREFIX" envDefault:"adpulse"`
}
