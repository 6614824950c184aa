package port

import (
	"context"

	"adpulse/internal/core/domain"
)

// StreamDialer opens the push channel carrying one campaign's live
// insights. Dial returns once the channel is open; a failure to open is
// reported as ErrStreamTransport.
type StreamDialer interface {
	Dial(ctx context.Context, campaignID string) (StreamConn, error)
}

// StreamConn is a single open push channel.
type StreamConn interface {
	// Next blocks until the next message payload arrives. Any error is
	// terminal for the connection.
	Next() ([]byte, error)
	// Close releases the connection and unblocks a pending Next. It is
	// safe to call more than once.
	Close() error
}

// StreamListener receives the output of a stream client. Calls are
// serialized and arrive in order.
type StreamListener interface {
	OnInsights(campaignID string, insights domain.CampaignInsights)
	OnStatus(campaignID string, status domain.ConnectionStatus)
}
