package port

import (
	"context"

	"popup-ads/internal/core/domain"
)

// ImpressionRecord is the inbound payload for recording an impression.
type ImpressionRecord struct {
	CampaignID   int64
	PropertyCode string
	SessionID    string
	Placement    string
	UserAgent    string
	Attribution  domain.Attribution
}

// ClickRecord is the inbound payload for recording a click. A zero
// RevenueEstimate is replaced with the configured default.
type ClickRecord struct {
	CampaignID      int64
	PropertyCode    string
	SessionID       string
	Placement       string
	UserAgent       string
	RevenueEstimate float64
	Attribution     domain.Attribution
}

// EventRecorder appends attribution events and builds outbound redirect URLs.
// RecordClick appends the event before returning the redirect target; when the
// append fails the redirect URL is still returned alongside
// ErrRecordingFailed so the caller can redirect and surface the failure to
// operators.
type EventRecorder interface {
	RecordImpression(ctx context.Context, rec ImpressionRecord) error
	RecordClick(ctx context.Context, campaign domain.Campaign, rec ClickRecord) (string, error)
}
