package configs

import (
	"net/url"
	"time"
)

// Upstream locates the campaign API. All read and stream endpoints are
// resolved against BaseURL.
type Upstream struct {
	BaseURL url.URL `env:"BASE_URL" envDefault:"https://mixo-fe-backend-task.vercel.app"`
	// RequestTimeout bounds each one-shot read. It is never applied to the
	// stream, which stays open for as long as a campaign is selected.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
}
