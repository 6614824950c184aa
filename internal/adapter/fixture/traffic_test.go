package fixture

import (
	"context"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
	"adpulse/internal/core/port/mocks"
)

func plausible(d port.TrafficDelta) bool {
	return d.Impressions >= 50 &&
		d.Clicks >= 0 && d.Clicks <= d.Impressions &&
		d.Conversions >= 0 && d.Conversions <= d.Clicks &&
		d.Spend >= 0
}

func TestTrafficSimulatorTouchesActiveCampaignsOnly(t *testing.T) {
	repo := mocks.NewMockInsightsRepository(t)
	repo.EXPECT().ListCampaigns(mock.Anything).Return([]domain.Campaign{
		{ID: "c1", Status: domain.StatusActive},
		{ID: "c2", Status: domain.StatusPaused},
		{ID: "c3", Status: domain.StatusActive},
		{ID: "c4", Status: domain.StatusCompleted},
	}, nil).Once()
	repo.EXPECT().RecordTraffic(mock.Anything, "c1", mock.MatchedBy(plausible)).Return(nil).Once()
	repo.EXPECT().RecordTraffic(mock.Anything, "c3", mock.MatchedBy(plausible)).Return(nil).Once()

	sim := NewTrafficSimulator(repo, testclock.NewClock(time.Now()), time.Second, 42, discardLogger())
	require.NoError(t, sim.Tick(context.Background()))
}

func TestTrafficSimulatorRunsOnInterval(t *testing.T) {
	repo := mocks.NewMockInsightsRepository(t)
	clk := testclock.NewClock(time.Now())
	recorded := make(chan string, 4)

	repo.EXPECT().ListCampaigns(mock.Anything).Return([]domain.Campaign{{ID: "c1", Status: domain.StatusActive}}, nil)
	repo.EXPECT().RecordTraffic(mock.Anything, "c1", mock.Anything).
		Run(func(_ context.Context, id string, _ port.TrafficDelta) { recorded <- id }).
		Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	sim := NewTrafficSimulator(repo, clk, time.Second, 1, discardLogger())
	go func() {
		defer close(done)
		sim.Run(ctx)
	}()

	assert.Empty(t, recorded)
	require.NoError(t, clk.WaitAdvance(time.Second, shortWait, 1))
	select {
	case id := <-recorded:
		assert.Equal(t, "c1", id)
	case <-time.After(shortWait):
		t.Fatal("traffic not recorded")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(shortWait):
		t.Fatal("simulator did not stop")
	}
}
