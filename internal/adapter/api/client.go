package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
)

// maxBodyBytes caps how much of a response body is decoded.
const maxBodyBytes = 8 << 20

// Client implements port.InsightsReader over the upstream HTTP JSON API.
// It performs exactly one request per call; retry policy belongs to the
// caller.
type Client struct {
	base   url.URL
	http   *http.Client
	logger *slog.Logger
}

// NewClient returns a client resolving every endpoint against base. A nil
// httpClient selects http.DefaultClient.
func NewClient(base url.URL, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		base:   base,
		http:   httpClient,
		logger: logger.With(slog.String("component", "api")),
	}
}

type insightsEnvelope[T any] struct {
	Insights *T `json:"insights"`
}

// ListCampaigns fetches GET /campaigns.
func (c *Client) ListCampaigns(ctx context.Context) (*port.CampaignList, error) {
	var list port.CampaignList
	if err := c.get(ctx, "campaigns", &list); err != nil {
		return nil, err
	}
	if list.Campaigns == nil {
		list.Campaigns = []domain.Campaign{}
	}
	return &list, nil
}

// GetAggregateInsights fetches GET /campaigns/insights.
func (c *Client) GetAggregateInsights(ctx context.Context) (*domain.AggregateInsights, error) {
	var env insightsEnvelope[domain.AggregateInsights]
	if err := c.get(ctx, "campaigns/insights", &env); err != nil {
		return nil, err
	}
	if env.Insights == nil {
		return nil, fmt.Errorf("%w: aggregate insights: missing insights object", port.ErrFetchFailed)
	}
	return env.Insights, nil
}

// GetCampaignInsights fetches GET /campaigns/{id}/insights.
func (c *Client) GetCampaignInsights(ctx context.Context, campaignID string) (*domain.CampaignInsights, error) {
	var env insightsEnvelope[domain.CampaignInsights]
	if err := c.get(ctx, "campaigns/"+url.PathEscape(campaignID)+"/insights", &env); err != nil {
		return nil, err
	}
	if env.Insights == nil {
		return nil, fmt.Errorf("%w: campaign %s insights: missing insights object", port.ErrFetchFailed, campaignID)
	}
	return env.Insights, nil
}

// get issues one GET against path and decodes the JSON body into out.
// Every failure is reported as port.ErrFetchFailed.
func (c *Client) get(ctx context.Context, path string, out any) error {
	endpoint := ResolvePath(c.base, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: build request %s: %w", port.ErrFetchFailed, endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %w", port.ErrFetchFailed, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain a little so the connection can be reused
		_, _ = io.CopyN(io.Discard, resp.Body, 4<<10)
		return fmt.Errorf("%w: GET %s: unexpected status %s", port.ErrFetchFailed, endpoint, resp.Status)
	}

	if err = json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s: %w", port.ErrFetchFailed, endpoint, err)
	}
	c.logger.Debug("fetched", slog.String("url", endpoint))
	return nil
}

// ResolvePath joins an escaped relative path onto base, keeping any path
// prefix base already carries.
func ResolvePath(base url.URL, path string) string {
	u := base
	u.RawQuery = ""
	u.Fragment = ""
	prefix := u.EscapedPath()
	for len(prefix) > 0 && prefix[len(prefix)-1] == '/' {
		prefix = prefix[:len(prefix)-1]
	}
	u.Path = ""
	u.RawPath = ""
	return u.String() + prefix + "/" + path
}
