package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-hub/internal/core/validation"
)

// Demo identities are fixed so tokens minted for local testing keep
// working across restarts.
var (
	DemoAdvertiserID = uuid.MustParse("6f1c1d2e-8a51-4c4c-9a8e-0d6b1f3b2a01")
	DemoCampaignID   = uuid.MustParse("c0ffee00-1d2b-4c3a-9e8f-7a6b5c4d3e21")

	DemoInfluencerIDs = []uuid.UUID{
		uuid.MustParse("a3d9e0b1-2f4c-4e7a-8b6d-1c5e9f0a7b11"),
		uuid.MustParse("a3d9e0b1-2f4c-4e7a-8b6d-1c5e9f0a7b12"),
		uuid.MustParse("a3d9e0b1-2f4c-4e7a-8b6d-1c5e9f0a7b13"),
	}
)

type advertiserSeed struct {
	company        string
	businessNumber string
	phone          string
}

type influencerSeed struct {
	id         uuid.UUID
	email      string
	name       string
	channel    string
	channelURL string
	followers  int
	phone      string
}

var demoAdvertiser = advertiserSeed{
	company:        "Demo Bistro",
	businessNumber: "123-45-67895",
	phone:          "02-123-4567",
}

func demoInfluencers() []influencerSeed {
	out := make([]influencerSeed, 0, len(DemoInfluencerIDs))
	for i, id := range DemoInfluencerIDs {
		n := i + 1
		out = append(out, influencerSeed{
			id:         id,
			email:      fmt.Sprintf("influencer%d@example.com", n),
			name:       fmt.Sprintf("Influencer %d", n),
			channel:    fmt.Sprintf("foodie_%d", n),
			channelURL: fmt.Sprintf("https://example.com/@foodie_%d", n),
			followers:  1000 * n,
			phone:      fmt.Sprintf("010-0000-000%d", n),
		})
	}
	return out
}

// validateSeed applies the profile field rules to the demo rows.
func validateSeed(adv advertiserSeed, infs []influencerSeed) error {
	if err := validation.BusinessNumber(adv.businessNumber); err != nil {
		return fmt.Errorf("seed advertiser business number %q: %w", adv.businessNumber, err)
	}
	if err := validation.PhoneNumber(adv.phone); err != nil {
		return fmt.Errorf("seed advertiser phone %q: %w", adv.phone, err)
	}
	for _, inf := range infs {
		if err := validation.PhoneNumber(inf.phone); err != nil {
			return fmt.Errorf("seed influencer %s phone %q: %w", inf.email, inf.phone, err)
		}
	}
	return nil
}

// Seed inserts one advertiser, three influencers and a closed campaign
// with a submitted application from each influencer. It is idempotent.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	influencers := demoInfluencers()
	if err := validateSeed(demoAdvertiser, influencers); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err = seedUser(ctx, tx, DemoAdvertiserID, "advertiser@example.com", "advertiser"); err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `INSERT INTO advertiser_profiles (user_id, company_name, business_number, phone)
VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING`,
		DemoAdvertiserID, demoAdvertiser.company, demoAdvertiser.businessNumber, demoAdvertiser.phone)
	if err != nil {
		return fmt.Errorf("seed advertiser profile: %w", err)
	}

	for _, inf := range influencers {
		if err = seedUser(ctx, tx, inf.id, inf.email, "influencer"); err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `INSERT INTO influencer_profiles (user_id, name, channel_name, channel_url, follower_count, phone)
VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT DO NOTHING`,
			inf.id, inf.name, inf.channel, inf.channelURL, inf.followers, inf.phone)
		if err != nil {
			return fmt.Errorf("seed influencer profile: %w", err)
		}
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	start := today.AddDate(0, 0, -14)
	end := today.AddDate(0, 0, 14)
	_, err = tx.Exec(ctx, `INSERT INTO campaigns
    (id, advertiser_id, title, description, mission, benefits, location,
     recruitment_count, start_date, end_date, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 'closed') ON CONFLICT DO NOTHING`,
		DemoCampaignID, DemoAdvertiserID, "Spring menu tasting",
		"Taste the new spring menu and share your honest impressions.",
		"Publish one review post with at least five photos.",
		"Dinner course for two.",
		"Seoul, Mapo-gu", 2, start, end)
	if err != nil {
		return fmt.Errorf("seed campaign: %w", err)
	}

	for _, id := range DemoInfluencerIDs {
		_, err = tx.Exec(ctx, `INSERT INTO applications (id, campaign_id, influencer_id, motivation, visit_date)
VALUES ($1, $2, $3, $4, $5) ON CONFLICT DO NOTHING`,
			uuid.New(), DemoCampaignID, id,
			"I post weekly restaurant reviews for my local followers.", end)
		if err != nil {
			return fmt.Errorf("seed application: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func seedUser(ctx context.Context, tx pgx.Tx, id uuid.UUID, email, role string) error {
	_, err := tx.Exec(ctx, `INSERT INTO users (id, email, role) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
		id, email, role)
	if err != nil {
		return fmt.Errorf("seed user %s: %w", email, err)
	}
	return nil
}
