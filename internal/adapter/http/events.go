package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"popup-ads/internal/core/domain"
	"popup-ads/internal/core/port"
)

// eventPayload is the JSON body the popup script posts for both impressions
// and clicks. campaign_id and property_code are mandatory; everything else
// is best-effort attribution.
type eventPayload struct {
	CampaignID   int64   `json:"campaign_id" validate:"required"`
	PropertyCode string  `json:"property_code" validate:"required"`
	SessionID    string  `json:"session_id"`
	Placement    string  `json:"placement"`
	Source       string  `json:"source"`
	Subsource    string  `json:"subsource"`
	CampaignTag  string  `json:"utm_campaign"`
	Referrer     string  `json:"referrer"`
	LandingPage  string  `json:"landing_page"`
	Revenue      float64 `json:"revenue_estimate"`
}

func (h *Handler) decodeEvent(w http.ResponseWriter, r *http.Request) (*eventPayload, bool) {
	var p eventPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return nil, false
	}
	if err := h.validate.Struct(&p); err != nil {
		http.Error(w, "campaign_id and property_code are required", http.StatusBadRequest)
		return nil, false
	}
	return &p, true
}

func (p *eventPayload) attribution() domain.Attribution {
	return domain.Attribution{
		Source:      p.Source,
		Subsource:   p.Subsource,
		CampaignTag: p.CampaignTag,
		Referrer:    p.Referrer,
		LandingPage: p.LandingPage,
	}
}

// handleImpression records a popup impression posted by the embed script.
// Responds with a JSON acknowledgment; malformed payloads produce HTTP 400.
func (h *Handler) handleImpression(w http.ResponseWriter, r *http.Request) {
	p, ok := h.decodeEvent(w, r)
	if !ok {
		return
	}
	err := h.recorder.RecordImpression(r.Context(), port.ImpressionRecord{
		CampaignID:   p.CampaignID,
		PropertyCode: p.PropertyCode,
		SessionID:    p.SessionID,
		Placement:    p.Placement,
		UserAgent:    r.UserAgent(),
		Attribution:  p.attribution(),
	})
	if err != nil {
		h.logger.Error("record impression error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeAck(w, map[string]any{"status": "recorded"})
}

// handleClick records a popup click and returns the attributed redirect
// target for the campaign's tracking URL. The click is appended before the
// URL is returned; an append failure is logged but the URL is still sent so
// the popup can complete the click-through.
func (h *Handler) handleClick(w http.ResponseWriter, r *http.Request) {
	p, ok := h.decodeEvent(w, r)
	if !ok {
		return
	}
	campaign, err := h.store.CampaignByID(r.Context(), p.CampaignID)
	if err != nil {
		h.logger.Error("load campaign error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if campaign == nil {
		http.Error(w, "unknown campaign", http.StatusNotFound)
		return
	}

	redirectURL, err := h.recorder.RecordClick(r.Context(), *campaign, port.ClickRecord{
		CampaignID:      p.CampaignID,
		PropertyCode:    p.PropertyCode,
		SessionID:       p.SessionID,
		Placement:       p.Placement,
		UserAgent:       r.UserAgent(),
		RevenueEstimate: p.Revenue,
		Attribution:     p.attribution(),
	})
	if err != nil {
		if !errors.Is(err, port.ErrRecordingFailed) {
			h.logger.Error("click error", slog.Any("error", err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		h.logger.Error("record click error", slog.Any("error", err))
	}
	writeAck(w, map[string]any{"status": "recorded", "redirect_url": redirectURL})
}

func writeAck(w http.ResponseWriter, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(body)
}
