package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"popup-ads/internal/core/domain"
	"popup-ads/internal/core/port"
)

// EventRecorder implements port.EventRecorder. Appends are best-effort from
// the caller's point of view: a failed click append still yields the redirect
// URL so click-through is never blocked by a logging failure.
type EventRecorder struct {
	store          port.CampaignStore
	logger         *slog.Logger
	defaultRevenue float64
}

// NewEventRecorder creates a recorder. defaultRevenue is attributed to
// clicks whose payload carries no estimate.
func NewEventRecorder(store port.CampaignStore, logger *slog.Logger, defaultRevenue float64) *EventRecorder {
	return &EventRecorder{store: store, logger: logger, defaultRevenue: defaultRevenue}
}

// RecordImpression appends an impression event with attribution fields
// truncated to their stored maximums.
func (r *EventRecorder) RecordImpression(ctx context.Context, rec port.ImpressionRecord) error {
	imp := &domain.Impression{
		CampaignID:   rec.CampaignID,
		PropertyCode: rec.PropertyCode,
		SessionID:    rec.SessionID,
		Placement:    rec.Placement,
		UserAgent:    truncate(rec.UserAgent, domain.MaxUserAgentLen),
		Attribution:  rec.Attribution.Truncate(),
	}
	if err := r.store.InsertImpression(ctx, imp); err != nil {
		return fmt.Errorf("%w: %v", port.ErrRecordingFailed, err)
	}
	return nil
}

// RecordClick appends a click event and returns the outbound redirect URL.
// The append happens before the URL is handed back; when it fails the URL is
// still returned alongside ErrRecordingFailed so the caller can redirect and
// the failure stays visible to operators.
func (r *EventRecorder) RecordClick(ctx context.Context, campaign domain.Campaign, rec port.ClickRecord) (string, error) {
	revenue := rec.RevenueEstimate
	if revenue == 0 {
		revenue = r.defaultRevenue
	}
	redirect := BuildRedirectURL(campaign.TrackingURL, rec.PropertyCode, rec.Attribution)

	click := &domain.Click{
		CampaignID:      rec.CampaignID,
		PropertyCode:    rec.PropertyCode,
		SessionID:       rec.SessionID,
		Placement:       rec.Placement,
		UserAgent:       truncate(rec.UserAgent, domain.MaxUserAgentLen),
		RevenueEstimate: revenue,
		Attribution:     rec.Attribution.Truncate(),
	}
	if err := r.store.InsertClick(ctx, click); err != nil {
		r.logger.Error("click append failed",
			slog.Int64("campaign_id", rec.CampaignID),
			slog.String("property", rec.PropertyCode),
			slog.Any("error", err))
		return redirect, fmt.Errorf("%w: %v", port.ErrRecordingFailed, err)
	}
	return redirect, nil
}

// BuildRedirectURL appends standardized attribution parameters to a tracking
// template, using ? or & depending on whether the template already carries a
// query string. Parameter order is fixed so the output is stable.
func BuildRedirectURL(trackingURL, propertyCode string, att domain.Attribution) string {
	sep := "?"
	if strings.Contains(trackingURL, "?") {
		sep = "&"
	}
	pairs := []struct{ k, v string }{
		{"source", att.Source},
		{"subsource", att.Subsource},
		{"utm_medium", att.Source},
		{"utm_source", att.Subsource},
		{"utm_campaign", att.CampaignTag},
		{"property", propertyCode},
	}
	var b strings.Builder
	b.WriteString(trackingURL)
	b.WriteString(sep)
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(p.k)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.v))
	}
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
