package domain

import "time"

// Campaign represents an advertising campaign managed by the admin tool.
// The core only ever reads campaigns; creation and editing happen elsewhere.
type Campaign struct {
	ID           int64
	Name         string
	TrackingURL  string // outbound tracking template; non-empty while active
	LogoURL      string // image for the top-left circle badge
	MainImageURL string // hero image
	Description  string
	CTAText      string
	OfferID      string
	AffiliateID  string
	Active       bool
	Featured     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
