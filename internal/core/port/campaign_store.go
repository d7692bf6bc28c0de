package port

import (
	"context"
	"time"

	"popup-ads/internal/core/domain"
)

// Candidate is a campaign paired with its per-property assignment and the
// revenue-per-mille computed from historical events for that pair.
type Candidate struct {
	Campaign   domain.Campaign
	Assignment domain.PropertyAssignment
	RPM        float64
}

// EventCounts aggregates event totals for one campaign/property pair
// within a time window.
type EventCounts struct {
	Impressions int64
	Clicks      int64
}

// CampaignStore defines read access to campaigns, properties and assignments
// plus append access to the event log. It is an outbound port; implementations
// must be safe for concurrent use. The store exclusively owns row access.
// Selector and renderer hold no persistent state of their own.
type CampaignStore interface {
	// Property returns the property for a code, or nil when unknown.
	Property(ctx context.Context, code string) (*domain.Property, error)
	// ListProperties returns all configured properties.
	ListProperties(ctx context.Context) ([]domain.Property, error)
	// CampaignByID returns a campaign by id, or nil when unknown.
	CampaignByID(ctx context.Context, id int64) (*domain.Campaign, error)
	// ActiveCampaigns returns candidates where both the campaign and its
	// assignment for the property are active, with RPM precomputed and
	// visibility clamped to [0,100].
	ActiveCampaigns(ctx context.Context, propertyCode string) ([]Candidate, error)
	// EventCounts counts impressions and clicks for a campaign/property pair
	// within [from, to).
	EventCounts(ctx context.Context, campaignID int64, propertyCode string, from, to time.Time) (EventCounts, error)
	// InsertImpression appends an impression event.
	InsertImpression(ctx context.Context, imp *domain.Impression) error
	// InsertClick appends a click event.
	InsertClick(ctx context.Context, click *domain.Click) error
}
