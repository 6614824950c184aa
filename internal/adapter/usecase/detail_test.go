package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
	"adpulse/internal/core/port/mocks"
)

type detailFixture struct {
	dialer *fakeDialer
	clock  *testclock.Clock
	sink   *viewRecorder
	detail *DetailSync
}

func newDetailFixture(t *testing.T, reader port.InsightsReader) *detailFixture {
	f := &detailFixture{
		dialer: newFakeDialer(),
		clock:  testclock.NewClock(time.Now()),
		sink:   &viewRecorder{},
	}
	f.detail = NewDetailSync(DetailConfig{
		Dialer:         f.dialer,
		Reader:         reader,
		Clock:          f.clock,
		ReconnectDelay: reconnectDelay,
		RequestTimeout: time.Minute,
		Sink:           f.sink,
		Logger:         discardLogger(),
	})
	t.Cleanup(f.detail.Close)
	return f
}

func (f *detailFixture) waitLive(t *testing.T) {
	t.Helper()
	eventually(t, func() bool { return f.detail.View().IsLive }, "detail stream never went live")
}

func campaignRef(id, name string) *domain.Campaign {
	return &domain.Campaign{ID: id, Name: name, Status: domain.StatusActive}
}

func TestDetailSyncShowsPushedSnapshots(t *testing.T) {
	defer goleak.VerifyNone(t)
	f := newDetailFixture(t, nil)

	f.detail.Select(campaignRef("a", "Alpha"))
	view := f.detail.View()
	require.NotNil(t, view.Campaign)
	assert.Equal(t, "a", view.Campaign.ID)
	assert.Nil(t, view.Insights)

	conn := f.dialer.nextConn(t)
	f.waitLive(t)

	conn.push(t, `{"campaign_id":"a","impressions":100,"clicks":4}`)
	conn.push(t, `{"campaign_id":"a","impressions":140}`)
	eventually(t, func() bool {
		v := f.detail.View()
		return v.Insights != nil && v.Insights.Impressions == 140
	}, "latest snapshot not shown")
	// replaced as a whole, never merged
	assert.Equal(t, int64(0), f.detail.View().Insights.Clicks)

	f.detail.Close()
}

func TestDetailSyncSwitchClearsInsightsAndClosesStream(t *testing.T) {
	f := newDetailFixture(t, nil)

	f.detail.Select(campaignRef("a", "Alpha"))
	connA := f.dialer.nextConn(t)
	f.waitLive(t)
	connA.push(t, `{"impressions":100}`)
	eventually(t, func() bool { return f.detail.View().Insights != nil }, "snapshot for a not shown")

	f.detail.Select(campaignRef("b", "Beta"))
	view := f.detail.View()
	assert.Equal(t, "b", view.Campaign.ID)
	assert.Nil(t, view.Insights)
	assert.True(t, connA.isClosed())

	// a callback for the previous selection is discarded
	f.detail.OnInsights("a", domain.CampaignInsights{Impressions: 999})
	f.detail.OnStatus("a", domain.ConnectionLive)
	assert.Nil(t, f.detail.View().Insights)

	connB := f.dialer.nextConn(t)
	f.waitLive(t)
	connB.push(t, `{"impressions":5}`)
	eventually(t, func() bool {
		v := f.detail.View()
		return v.Insights != nil && v.Insights.Impressions == 5
	}, "snapshot for b not shown")
	assert.Equal(t, []string{"a", "b"}, f.dialer.dialed())

	for _, v := range f.sink.detailViews() {
		if v.Campaign != nil && v.Campaign.ID == "b" && v.Insights != nil {
			assert.NotEqual(t, int64(100), v.Insights.Impressions, "a's snapshot shown under b")
		}
	}
}

func TestDetailSyncDeselectGoesIdle(t *testing.T) {
	f := newDetailFixture(t, nil)

	f.detail.Select(campaignRef("a", "Alpha"))
	conn := f.dialer.nextConn(t)
	f.waitLive(t)

	f.detail.Select(nil)
	view := f.detail.View()
	assert.Nil(t, view.Campaign)
	assert.Nil(t, view.Insights)
	assert.Equal(t, domain.ConnectionIdle, view.Status)
	assert.True(t, conn.isClosed())

	// deselecting twice is harmless
	before := len(f.sink.detailViews())
	f.detail.Select(nil)
	assert.Len(t, f.sink.detailViews(), before)
}

func TestDetailSyncReselectKeepsStream(t *testing.T) {
	f := newDetailFixture(t, nil)

	f.detail.Select(campaignRef("a", "Alpha"))
	conn := f.dialer.nextConn(t)
	f.waitLive(t)
	conn.push(t, `{"impressions":10}`)
	eventually(t, func() bool { return f.detail.View().Insights != nil }, "snapshot not shown")

	f.detail.Select(campaignRef("a", "Alpha (renamed)"))
	view := f.detail.View()
	assert.Equal(t, "Alpha (renamed)", view.Campaign.Name)
	require.NotNil(t, view.Insights)
	assert.Equal(t, int64(10), view.Insights.Impressions)
	assert.True(t, view.IsLive)
	assert.False(t, conn.isClosed())
	assert.Equal(t, []string{"a"}, f.dialer.dialed())
}

func TestDetailSyncReconnectKeepsLastSnapshot(t *testing.T) {
	f := newDetailFixture(t, nil)

	f.detail.Select(campaignRef("a", "Alpha"))
	conn := f.dialer.nextConn(t)
	f.waitLive(t)
	conn.push(t, `{"impressions":10}`)
	eventually(t, func() bool { return f.detail.View().Insights != nil }, "snapshot not shown")

	conn.breakWith(t, errors.New("reset"))
	eventually(t, func() bool { return f.detail.View().Status == domain.ConnectionRetrying }, "never retrying")
	require.NotNil(t, f.detail.View().Insights)

	require.NoError(t, f.clock.WaitAdvance(reconnectDelay, shortWait, 1))
	f.dialer.nextConn(t)
	f.waitLive(t)
	assert.Equal(t, int64(10), f.detail.View().Insights.Impressions)
}

func TestDetailSyncPrimesFromReader(t *testing.T) {
	reader := mocks.NewMockInsightsReader(t)
	reader.EXPECT().GetCampaignInsights(mock.Anything, "a").
		Return(&domain.CampaignInsights{CampaignID: "a", Impressions: 50}, nil).Once()
	f := newDetailFixture(t, reader)

	f.detail.Select(campaignRef("a", "Alpha"))
	conn := f.dialer.nextConn(t)
	f.detail.wg.Wait()

	view := f.detail.View()
	require.NotNil(t, view.Insights)
	assert.Equal(t, int64(50), view.Insights.Impressions)

	f.waitLive(t)
	conn.push(t, `{"impressions":60}`)
	eventually(t, func() bool { return f.detail.View().Insights.Impressions == 60 }, "push did not replace primed snapshot")
}

func TestDetailSyncPushBeatsSlowPrime(t *testing.T) {
	reader := mocks.NewMockInsightsReader(t)
	release := make(chan struct{})
	reader.EXPECT().GetCampaignInsights(mock.Anything, "a").
		RunAndReturn(func(context.Context, string) (*domain.CampaignInsights, error) {
			<-release
			return &domain.CampaignInsights{Impressions: 1}, nil
		}).Once()
	f := newDetailFixture(t, reader)

	f.detail.Select(campaignRef("a", "Alpha"))
	conn := f.dialer.nextConn(t)
	f.waitLive(t)
	conn.push(t, `{"impressions":80}`)
	eventually(t, func() bool { return f.detail.View().Insights != nil }, "push not shown")

	close(release)
	f.detail.wg.Wait()
	assert.Equal(t, int64(80), f.detail.View().Insights.Impressions)
}

func TestDetailSyncIgnoresPrimeForPreviousSelection(t *testing.T) {
	reader := mocks.NewMockInsightsReader(t)
	release := make(chan struct{})
	reader.EXPECT().GetCampaignInsights(mock.Anything, "a").
		RunAndReturn(func(context.Context, string) (*domain.CampaignInsights, error) {
			<-release
			return &domain.CampaignInsights{Impressions: 1}, nil
		}).Once()
	reader.EXPECT().GetCampaignInsights(mock.Anything, "b").
		Return(nil, port.ErrCampaignNotFound).Once()
	f := newDetailFixture(t, reader)

	f.detail.Select(campaignRef("a", "Alpha"))
	f.dialer.nextConn(t)
	f.detail.Select(campaignRef("b", "Beta"))
	f.dialer.nextConn(t)

	close(release)
	f.detail.wg.Wait()

	view := f.detail.View()
	assert.Equal(t, "b", view.Campaign.ID)
	assert.Nil(t, view.Insights)
}

func TestSinksFanOut(t *testing.T) {
	first, second := &viewRecorder{}, &viewRecorder{}
	sinks := Sinks{first, second}

	sinks.DashboardChanged(domain.DashboardView{Total: 2})
	sinks.DetailChanged(domain.DetailView{Status: domain.ConnectionLive, IsLive: true})

	for _, r := range []*viewRecorder{first, second} {
		require.Len(t, r.dashboardViews(), 1)
		assert.Equal(t, 2, r.dashboardViews()[0].Total)
		require.Len(t, r.detailViews(), 1)
		assert.True(t, r.detailViews()[0].IsLive)
	}
}
