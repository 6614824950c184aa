package httpadapter

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
	"adpulse/internal/core/port/mocks"
	"adpulse/internal/metrics"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type handlerFixture struct {
	dashboard *mocks.MockDashboardController
	detail    *mocks.MockDetailController
	router    http.Handler
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	f := &handlerFixture{
		dashboard: mocks.NewMockDashboardController(t),
		detail:    mocks.NewMockDetailController(t),
	}
	reg := prometheus.NewPedanticRegistry()
	reg.MustRegister(metrics.NewCollector())
	f.router = NewHandler(f.dashboard, f.detail, nil, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), discardLogger()).Router()
	return f
}

func (f *handlerFixture) do(method, target, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestHandlerDashboard(t *testing.T) {
	f := newHandlerFixture(t)
	view := domain.DashboardView{
		Campaigns: []domain.Campaign{{ID: "c1", Name: "Spring Sale", Status: domain.StatusActive}},
		Total:     1,
		Filter:    domain.FilterAll,
		Aggregate: &domain.AggregateInsights{TotalCampaigns: 1, ActiveCampaigns: 1},
	}
	f.dashboard.EXPECT().View().Return(view).Once()

	rec := f.do(http.MethodGet, "/api/v1/dashboard", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got domain.DashboardView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, view.Campaigns, got.Campaigns)
	assert.Equal(t, view.Aggregate, got.Aggregate)
}

func TestHandlerSetFilter(t *testing.T) {
	f := newHandlerFixture(t)
	f.dashboard.EXPECT().SetFilter(domain.FilterPaused).Return(nil).Once()
	f.dashboard.EXPECT().View().Return(domain.DashboardView{Filter: domain.FilterPaused}).Once()

	rec := f.do(http.MethodPut, "/api/v1/dashboard/filter", `{"status":"paused"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"filter":"paused"`)
}

func TestHandlerSetFilterRejectsUnknownStatus(t *testing.T) {
	f := newHandlerFixture(t)
	f.dashboard.EXPECT().SetFilter(domain.StatusFilter("archived")).
		Return(fmt.Errorf("%w: %q", port.ErrInvalidFilter, "archived")).Once()

	rec := f.do(http.MethodPut, "/api/v1/dashboard/filter", `{"status":"archived"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodPut, "/api/v1/dashboard/filter", `{"status":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerRefresh(t *testing.T) {
	f := newHandlerFixture(t)
	f.dashboard.EXPECT().Refresh().Return(true).Once()
	f.dashboard.EXPECT().Refresh().Return(false).Once()

	assert.Equal(t, http.StatusAccepted, f.do(http.MethodPost, "/api/v1/dashboard/refresh", "").Code)
	assert.Equal(t, http.StatusConflict, f.do(http.MethodPost, "/api/v1/dashboard/refresh", "").Code)
}

func TestHandlerSelect(t *testing.T) {
	f := newHandlerFixture(t)
	campaign := domain.Campaign{ID: "c1", Name: "Spring Sale", Status: domain.StatusActive}
	f.dashboard.EXPECT().Campaign("c1").Return(campaign, true).Once()
	f.detail.EXPECT().Select(mock.MatchedBy(func(c *domain.Campaign) bool {
		return c != nil && c.ID == "c1"
	})).Return().Once()
	f.detail.EXPECT().View().Return(domain.DetailView{Campaign: &campaign, Status: domain.ConnectionConnecting}).Once()

	rec := f.do(http.MethodPut, "/api/v1/detail/selection", `{"campaign_id":"c1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.DetailView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.NotNil(t, got.Campaign)
	assert.Equal(t, "c1", got.Campaign.ID)
	assert.Equal(t, domain.ConnectionConnecting, got.Status)
}

func TestHandlerSelectUnknownCampaign(t *testing.T) {
	f := newHandlerFixture(t)
	f.dashboard.EXPECT().Campaign("nope").Return(domain.Campaign{}, false).Once()

	rec := f.do(http.MethodPut, "/api/v1/detail/selection", `{"campaign_id":"nope"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(http.MethodPut, "/api/v1/detail/selection", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	f.detail.AssertNotCalled(t, "Select", mock.Anything)
}

func TestHandlerDeselect(t *testing.T) {
	f := newHandlerFixture(t)
	f.detail.EXPECT().Select((*domain.Campaign)(nil)).Return().Once()

	rec := f.do(http.MethodDelete, "/api/v1/detail/selection", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHandlerDetail(t *testing.T) {
	f := newHandlerFixture(t)
	f.detail.EXPECT().View().Return(domain.DetailView{
		Insights: &domain.CampaignInsights{Impressions: 10},
		Status:   domain.ConnectionLive,
		IsLive:   true,
	}).Once()

	rec := f.do(http.MethodGet, "/api/v1/detail", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"is_live":true`)
}

func TestHandlerHealthAndMetrics(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok\n", rec.Body.String())

	rec = f.do(http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "adpulse_commits_total")

	// the feed is not mounted without a hub
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/api/v1/feed", "").Code)
}
