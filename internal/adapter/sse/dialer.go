package sse

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"sync"

	"adpulse/internal/adapter/api"
	"adpulse/internal/core/port"
)

// ContentType is the media type of a server-sent event stream.
const ContentType = "text/event-stream"

// Dialer opens campaign insight streams over server-sent events. It
// implements port.StreamDialer.
type Dialer struct {
	base   url.URL
	http   *http.Client
	logger *slog.Logger
}

// NewDialer returns a dialer for streams under base. The http client must
// not carry a whole-request Timeout since streams stay open indefinitely;
// cancellation comes from the context passed to Dial. A nil client selects
// a plain &http.Client{}.
func NewDialer(base url.URL, httpClient *http.Client, logger *slog.Logger) *Dialer {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Dialer{
		base:   base,
		http:   httpClient,
		logger: logger.With(slog.String("component", "sse")),
	}
}

// Dial opens GET /campaigns/{id}/insights/stream. The returned connection
// is open: the server answered 2xx with an event-stream body.
func (d *Dialer) Dial(ctx context.Context, campaignID string) (port.StreamConn, error) {
	endpoint := api.ResolvePath(d.base, "campaigns/"+url.PathEscape(campaignID)+"/insights/stream")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request %s: %w", port.ErrStreamTransport, endpoint, err)
	}
	req.Header.Set("Accept", ContentType)
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := d.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %w", port.ErrStreamTransport, endpoint, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: GET %s: unexpected status %s", port.ErrStreamTransport, endpoint, resp.Status)
	}
	if mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type")); err != nil || mt != ContentType {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: GET %s: unexpected content type %q", port.ErrStreamTransport, endpoint, resp.Header.Get("Content-Type"))
	}

	d.logger.Debug("stream opened", slog.String("url", endpoint))
	return &Conn{body: resp.Body, dec: NewDecoder(resp.Body)}, nil
}

// Conn is an open event stream. Next must not be called concurrently with
// itself; Close may be called from any goroutine.
type Conn struct {
	body      io.ReadCloser
	dec       *Decoder
	closeOnce sync.Once
	closeErr  error
}

// Next returns the payload of the next message event. Events carrying a
// custom event name are skipped. Any error, including a clean end of
// stream, is reported as port.ErrStreamTransport.
func (c *Conn) Next() ([]byte, error) {
	for {
		ev, err := c.dec.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: stream closed by server", port.ErrStreamTransport)
			}
			return nil, fmt.Errorf("%w: %w", port.ErrStreamTransport, err)
		}
		if ev.Name != "" && ev.Name != "message" {
			continue
		}
		return ev.Data, nil
	}
}

// Close closes the response body. Repeated calls return the first result.
func (c *Conn) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = c.body.Close()
	})
	return c.closeErr
}
