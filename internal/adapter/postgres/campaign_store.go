package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"popup-ads/internal/core/domain"
	"popup-ads/internal/core/port"
)

// CampaignStore implements port.CampaignStore using pgxpool for PostgreSQL.
type CampaignStore struct {
	pool *pgxpool.Pool
}

// NewCampaignStore returns a new store instance.
func NewCampaignStore(pool *pgxpool.Pool) *CampaignStore {
	return &CampaignStore{pool: pool}
}

// Property returns the property for a code, or nil when unknown.
func (s *CampaignStore) Property(ctx context.Context, code string) (*domain.Property, error) {
	var p domain.Property
	err := s.pool.QueryRow(ctx, `SELECT code, name, domain, popup_enabled, popup_frequency, popup_placement, featured_campaign_id
FROM properties WHERE code = $1`, code).
		Scan(&p.Code, &p.Name, &p.Domain, &p.PopupEnabled, &p.PopupFrequency, &p.PopupPlacement, &p.FeaturedCampaignID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListProperties returns all configured properties.
func (s *CampaignStore) ListProperties(ctx context.Context) ([]domain.Property, error) {
	rows, err := s.pool.Query(ctx, `SELECT code, name, domain, popup_enabled, popup_frequency, popup_placement, featured_campaign_id
FROM properties ORDER BY code`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Property, error) {
		var p domain.Property
		err := row.Scan(&p.Code, &p.Name, &p.Domain, &p.PopupEnabled, &p.PopupFrequency, &p.PopupPlacement, &p.FeaturedCampaignID)
		return p, err
	})
}

// CampaignByID returns a campaign by id, or nil when unknown.
func (s *CampaignStore) CampaignByID(ctx context.Context, id int64) (*domain.Campaign, error) {
	var c domain.Campaign
	err := s.pool.QueryRow(ctx, `SELECT id, name, tracking_url, logo_url, main_image_url, description, cta_text, offer_id, aff_id, active, featured, created_at, updated_at
FROM campaigns WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.TrackingURL, &c.LogoURL, &c.MainImageURL, &c.Description, &c.CTAText,
			&c.OfferID, &c.AffiliateID, &c.Active, &c.Featured, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ActiveCampaigns returns candidates where both the campaign and its
// assignment for the property are active. RPM is computed in SQL from the
// full event history for the campaign/property pair: revenue per thousand
// impressions, zero when there are no impressions.
func (s *CampaignStore) ActiveCampaigns(ctx context.Context, propertyCode string) ([]port.Candidate, error) {
	query := `
        SELECT
            c.id,
            c.name,
            c.tracking_url,
            c.logo_url,
            c.main_image_url,
            c.description,
            c.cta_text,
            c.offer_id,
            c.aff_id,
            c.active,
            c.featured,
            c.created_at,
            c.updated_at,
            cp.visibility_percentage,
            cp.active,
            cp.impression_cap_daily,
            cp.click_cap_daily,
            CASE
                WHEN COALESCE(imp.total, 0) = 0 THEN 0
                ELSE (COALESCE(rev.total, 0) * 1000.0) / imp.total
            END AS rpm
        FROM campaigns c
        JOIN campaign_properties cp ON c.id = cp.campaign_id
        LEFT JOIN (
            SELECT campaign_id, COUNT(*) AS total
            FROM impressions
            WHERE property_code = $1
            GROUP BY campaign_id
        ) imp ON c.id = imp.campaign_id
        LEFT JOIN (
            SELECT campaign_id, SUM(revenue_estimate) AS total
            FROM clicks
            WHERE property_code = $1
            GROUP BY campaign_id
        ) rev ON c.id = rev.campaign_id
        WHERE c.active = true AND cp.active = true AND cp.property_code = $1`
	rows, err := s.pool.Query(ctx, query, propertyCode)
	if err != nil {
		return nil, err
	}
	candidates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.Candidate, error) {
		var cand port.Candidate
		err := row.Scan(
			&cand.Campaign.ID,
			&cand.Campaign.Name,
			&cand.Campaign.TrackingURL,
			&cand.Campaign.LogoURL,
			&cand.Campaign.MainImageURL,
			&cand.Campaign.Description,
			&cand.Campaign.CTAText,
			&cand.Campaign.OfferID,
			&cand.Campaign.AffiliateID,
			&cand.Campaign.Active,
			&cand.Campaign.Featured,
			&cand.Campaign.CreatedAt,
			&cand.Campaign.UpdatedAt,
			&cand.Assignment.VisibilityPercentage,
			&cand.Assignment.Active,
			&cand.Assignment.DailyImpressionCap,
			&cand.Assignment.DailyClickCap,
			&cand.RPM,
		)
		cand.Assignment.CampaignID = cand.Campaign.ID
		cand.Assignment.PropertyCode = propertyCode
		cand.Assignment.ClampVisibility()
		return cand, err
	})
	if err != nil {
		return nil, err
	}
	return candidates, nil
}

// EventCounts counts impressions and clicks for a campaign/property pair
// within [from, to).
func (s *CampaignStore) EventCounts(ctx context.Context, campaignID int64, propertyCode string, from, to time.Time) (port.EventCounts, error) {
	var counts port.EventCounts
	err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM impressions
WHERE campaign_id = $1 AND property_code = $2 AND created_at >= $3 AND created_at < $4`,
		campaignID, propertyCode, from, to).Scan(&counts.Impressions)
	if err != nil {
		return counts, err
	}
	err = s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM clicks
WHERE campaign_id = $1 AND property_code = $2 AND created_at >= $3 AND created_at < $4`,
		campaignID, propertyCode, from, to).Scan(&counts.Clicks)
	return counts, err
}

// InsertImpression appends an impression event.
func (s *CampaignStore) InsertImpression(ctx context.Context, imp *domain.Impression) error {
	imp.CreatedAt = time.Now().UTC()
	return s.pool.QueryRow(ctx, `INSERT INTO impressions
    (campaign_id, property_code, session_id, placement, user_agent, source, subsource, utm_campaign, referrer, landing_page, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11) RETURNING id`,
		imp.CampaignID, imp.PropertyCode, imp.SessionID, imp.Placement, imp.UserAgent,
		imp.Attribution.Source, imp.Attribution.Subsource, imp.Attribution.CampaignTag,
		imp.Attribution.Referrer, imp.Attribution.LandingPage, imp.CreatedAt).Scan(&imp.ID)
}

// InsertClick appends a click event.
func (s *CampaignStore) InsertClick(ctx context.Context, click *domain.Click) error {
	click.CreatedAt = time.Now().UTC()
	return s.pool.QueryRow(ctx, `INSERT INTO clicks
    (campaign_id, property_code, session_id, placement, user_agent, revenue_estimate, source, subsource, utm_campaign, referrer, landing_page, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12) RETURNING id`,
		click.CampaignID, click.PropertyCode, click.SessionID, click.Placement, click.UserAgent,
		click.RevenueEstimate, click.Attribution.Source, click.Attribution.Subsource,
		click.Attribution.CampaignTag, click.Attribution.Referrer, click.Attribution.LandingPage,
		click.CreatedAt).Scan(&click.ID)
}
