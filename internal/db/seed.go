package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpulse/internal/core/domain"
)

// DemoCampaign describes one seeded campaign.
type DemoCampaign struct {
	Name        string
	Brand       int
	Status      domain.CampaignStatus
	Budget      float64
	DailyBudget float64
	Platforms   []string
}

// DemoCampaigns is the catalogue inserted by Seed.
var DemoCampaigns = []DemoCampaign{
	{Name: "Spring Sale 2024", Brand: 0, Status: domain.StatusActive, Budget: 50000, DailyBudget: 2000, Platforms: []string{"meta", "google"}},
	{Name: "Summer Collection Teaser", Brand: 0, Status: domain.StatusPaused, Budget: 20000, DailyBudget: 800, Platforms: []string{"meta"}},
	{Name: "Back to School", Brand: 1, Status: domain.StatusActive, Budget: 35000, DailyBudget: 1500, Platforms: []string{"google", "linkedin"}},
	{Name: "Black Friday Blitz", Brand: 1, Status: domain.StatusCompleted, Budget: 80000, DailyBudget: 8000, Platforms: []string{"meta", "google", "linkedin"}},
	{Name: "App Install Push", Brand: 2, Status: domain.StatusActive, Budget: 15000, DailyBudget: 500, Platforms: []string{"meta"}},
	{Name: "Brand Awareness Q3", Brand: 2, Status: domain.StatusPaused, Budget: 40000, DailyBudget: 1200, Platforms: []string{"google"}},
	{Name: "Holiday Retargeting", Brand: 0, Status: domain.StatusCompleted, Budget: 25000, DailyBudget: 2500, Platforms: []string{"meta", "google"}},
}

const demoBrands = 3

// Seed inserts the demo catalogue with starting metrics. It does nothing
// when campaigns already exist, so it is safe to run on every start.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	var existing int
	if err := db.QueryRow(ctx, `SELECT count(*) FROM campaigns`).Scan(&existing); err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	brands := make([]uuid.UUID, demoBrands)
	for i := range brands {
		brands[i] = uuid.New()
	}

	return pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		start := time.Now().UTC().AddDate(0, -2, 0)
		for i, c := range DemoCampaigns {
			id := uuid.New()
			createdAt := start.Add(time.Duration(i) * 72 * time.Hour)
			_, err := tx.Exec(ctx, `INSERT INTO campaigns
    (id, name, brand_id, status, budget, daily_budget, platforms, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
				id.String(), c.Name, brands[c.Brand%demoBrands].String(), string(c.Status),
				c.Budget, c.DailyBudget, c.Platforms, createdAt)
			if err != nil {
				return fmt.Errorf("insert campaign %q: %w", c.Name, err)
			}

			impressions := int64(10000 + r.Intn(90000))
			clicks := impressions * int64(1+r.Intn(5)) / 100
			conversions := clicks * int64(5+r.Intn(10)) / 100
			spend := float64(clicks) * (0.3 + r.Float64())
			_, err = tx.Exec(ctx, `INSERT INTO campaign_metrics
    (campaign_id, impressions, clicks, conversions, spend, updated_at)
VALUES ($1,$2,$3,$4,$5,now())`,
				id.String(), impressions, clicks, conversions, roundCents(spend))
			if err != nil {
				return fmt.Errorf("insert metrics for %q: %w", c.Name, err)
			}
		}
		return nil
	})
}

func roundCents(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
