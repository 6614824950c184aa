package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
)

// InsightsRepository implements port.InsightsRepository using pgxpool.
type InsightsRepository struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

// NewInsightsRepository returns a new repository instance.
func NewInsightsRepository(pool *pgxpool.Pool) *InsightsRepository {
	return &InsightsRepository{pool: pool, now: time.Now}
}

// ListCampaigns returns every campaign, oldest first.
func (r *InsightsRepository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id::text, name, brand_id::text, status, budget, daily_budget, platforms, created_at
        FROM campaigns
        ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		var (
			c      domain.Campaign
			status string
		)
		err := row.Scan(&c.ID, &c.Name, &c.BrandID, &status, &c.Budget, &c.DailyBudget, &c.Platforms, &c.CreatedAt)
		c.Status = domain.CampaignStatus(status)
		return c, err
	})
}

// GetAggregateInsights rolls the metrics of all campaigns up in one query.
func (r *InsightsRepository) GetAggregateInsights(ctx context.Context) (*domain.AggregateInsights, error) {
	var agg domain.AggregateInsights
	err := r.pool.QueryRow(ctx, `
        SELECT
            count(*),
            count(*) FILTER (WHERE c.status = 'active'),
            count(*) FILTER (WHERE c.status = 'paused'),
            count(*) FILTER (WHERE c.status = 'completed'),
            COALESCE(sum(m.impressions), 0)::bigint,
            COALESCE(sum(m.clicks), 0)::bigint,
            COALESCE(sum(m.conversions), 0)::bigint,
            COALESCE(sum(m.spend), 0)::double precision
        FROM campaigns c
        LEFT JOIN campaign_metrics m ON m.campaign_id = c.id`).
		Scan(&agg.TotalCampaigns, &agg.ActiveCampaigns, &agg.PausedCampaigns, &agg.CompletedCampaigns,
			&agg.TotalImpressions, &agg.TotalClicks, &agg.TotalConversions, &agg.TotalSpend)
	if err != nil {
		return nil, err
	}
	agg.Timestamp = r.now().UTC()
	agg.AvgCTR, agg.AvgCPC, agg.AvgConversionRate = Rates(agg.TotalImpressions, agg.TotalClicks, agg.TotalConversions, agg.TotalSpend)
	return &agg, nil
}

// GetCampaignInsights returns the current counters of one campaign. A
// campaign without recorded traffic reports zeros.
func (r *InsightsRepository) GetCampaignInsights(ctx context.Context, campaignID string) (*domain.CampaignInsights, error) {
	ins := domain.CampaignInsights{CampaignID: campaignID}
	err := r.pool.QueryRow(ctx, `
        SELECT
            COALESCE(m.impressions, 0),
            COALESCE(m.clicks, 0),
            COALESCE(m.conversions, 0),
            COALESCE(m.spend, 0)
        FROM campaigns c
        LEFT JOIN campaign_metrics m ON m.campaign_id = c.id
        WHERE c.id::text = $1`, campaignID).
		Scan(&ins.Impressions, &ins.Clicks, &ins.Conversions, &ins.Spend)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", port.ErrCampaignNotFound, campaignID)
	}
	if err != nil {
		return nil, err
	}
	ins.Timestamp = r.now().UTC()
	ins.CTR, ins.CPC, ins.ConversionRate = Rates(ins.Impressions, ins.Clicks, ins.Conversions, ins.Spend)
	return &ins, nil
}

// RecordTraffic adds delta to the campaign's counters, creating the
// metrics row on first use.
func (r *InsightsRepository) RecordTraffic(ctx context.Context, campaignID string, delta port.TrafficDelta) error {
	tag, err := r.pool.Exec(ctx, `
        INSERT INTO campaign_metrics (campaign_id, impressions, clicks, conversions, spend, updated_at)
        SELECT id, $2, $3, $4, $5, now() FROM campaigns WHERE id::text = $1
        ON CONFLICT (campaign_id) DO UPDATE SET
            impressions = campaign_metrics.impressions + EXCLUDED.impressions,
            clicks      = campaign_metrics.clicks + EXCLUDED.clicks,
            conversions = campaign_metrics.conversions + EXCLUDED.conversions,
            spend       = campaign_metrics.spend + EXCLUDED.spend,
            updated_at  = EXCLUDED.updated_at`,
		campaignID, delta.Impressions, delta.Clicks, delta.Conversions, delta.Spend)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", port.ErrCampaignNotFound, campaignID)
	}
	return nil
}

// Rates derives ctr and conversion rate as percentages and cpc in the
// spend currency. A rate whose divisor is zero is reported as zero.
func Rates(impressions, clicks, conversions int64, spend float64) (ctr, cpc, conversionRate float64) {
	if impressions > 0 {
		ctr = float64(clicks) / float64(impressions) * 100
	}
	if clicks > 0 {
		cpc = spend / float64(clicks)
		conversionRate = float64(conversions) / float64(clicks) * 100
	}
	return ctr, cpc, conversionRate
}
