package domain

// ConnectionStatus describes the state of a live insights stream.
type ConnectionStatus string

const (
	// ConnectionIdle means no stream is open: before the first open and
	// after an explicit close.
	ConnectionIdle       ConnectionStatus = "idle"
	ConnectionConnecting ConnectionStatus = "connecting"
	ConnectionLive       ConnectionStatus = "live"
	// ConnectionRetrying means the transport failed and a reconnect is
	// scheduled.
	ConnectionRetrying ConnectionStatus = "disconnected-retrying"
)
