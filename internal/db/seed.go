package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo data: four properties, a handful of campaigns assigned to
// each, and enough impression/click history to give the RPM ranking something
// to chew on.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	properties := []struct {
		code, name, domain string
	}{
		{"mff", "ModeFreeFinds", "modefreefinds.com"},
		{"mmm", "ModeMarketMunchies", "modemarketmunchies.com"},
		{"mcad", "ModeClassActionsDaily", "modeclassactionsdaily.com"},
		{"mmd", "ModeMobileDaily", "modemobiledaily.com"},
	}
	for _, p := range properties {
		_, err := db.Exec(ctx, `INSERT INTO properties (code, name, domain)
VALUES ($1,$2,$3) ON CONFLICT DO NOTHING`, p.code, p.name, p.domain)
		if err != nil {
			return err
		}
	}

	// create campaigns
	for i := 1; i <= 5; i++ {
		name := fmt.Sprintf("Demo Offer %d", i)
		trackingURL := fmt.Sprintf("https://track.example.com/aff_c?offer_id=%d&aff_id=42", i)
		logoURL := fmt.Sprintf("https://i.imgur.com/logo%d.png", i)
		mainImageURL := fmt.Sprintf("https://i.imgur.com/hero%d.jpg", i)
		description := "Exclusive opportunity - limited time offer."
		_, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, name, tracking_url, logo_url, main_image_url, description, cta_text, offer_id, aff_id, active, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,true,now(),now()) ON CONFLICT DO NOTHING`,
			i, name, trackingURL, logoURL, mainImageURL, description, "View Offer", fmt.Sprint(i), "42")
		if err != nil {
			return err
		}
		for _, p := range properties {
			visibility := 100
			if r.Intn(4) == 0 {
				visibility = 25 + r.Intn(75)
			}
			_, err = db.Exec(ctx, `INSERT INTO campaign_properties
    (campaign_id, property_code, visibility_percentage, active)
VALUES ($1,$2,$3,true) ON CONFLICT DO NOTHING`, i, p.code, visibility)
			if err != nil {
				return err
			}
		}
	}

	// impression/click history so RPM ranking is non-trivial
	for i := 0; i < 1000; i++ {
		campaignID := int64(r.Intn(5) + 1)
		prop := properties[r.Intn(len(properties))].code
		sessionID := uuid.NewString()
		_, err := db.Exec(ctx, `INSERT INTO impressions
    (campaign_id, property_code, session_id, placement, source)
VALUES ($1,$2,$3,'thankyou','seed')`, campaignID, prop, sessionID)
		if err != nil {
			return err
		}
		if r.Intn(10) == 0 {
			_, err = db.Exec(ctx, `INSERT INTO clicks
    (campaign_id, property_code, session_id, placement, revenue_estimate, source)
VALUES ($1,$2,$3,'thankyou',$4,'seed')`, campaignID, prop, sessionID, 0.45)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
