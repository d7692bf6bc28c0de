package port

import (
	"context"

	"popup-ads/internal/core/domain"
)

// Mode distinguishes the two serving channels. Interactive selection applies
// visibility sampling; email-send selection skips it and picks a
// deterministic index from the rotation key so that one URL always resolves
// to one creative.
type Mode string

const (
	ModeInteractive Mode = "interactive"
	ModeEmailSend   Mode = "email-send"
)

// AdSelector decides which campaign to show. It is the primary port into the
// selection engine; mock implementations can be generated for testing.
type AdSelector interface {
	// Select returns the one campaign to display for a property. key is the
	// stable send identifier in email-send mode and the session identifier
	// (for the sampling draw) in interactive mode; it may be empty in
	// interactive mode. Returns ErrInvalidProperty for unknown codes and
	// ErrNoCampaign when filtering leaves nothing.
	Select(ctx context.Context, propertyCode string, mode Mode, key string) (*domain.Campaign, error)

	// Eligible returns the full ordered candidate list for interactive
	// display, with caps and visibility sampling already applied.
	Eligible(ctx context.Context, propertyCode, sessionID string) ([]Candidate, error)
}

// Sampler isolates the visibility sampling draw from selection purity. An
// implementation decides whether a campaign at a given visibility percentage
// is included for the holder of key.
type Sampler interface {
	// Include reports whether a draw at percent probability succeeds for
	// (key, campaignID, propertyCode). percent is within [0,100].
	Include(key string, campaignID int64, propertyCode string, percent int) bool
}
