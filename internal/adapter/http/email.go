package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"popup-ads/internal/core/domain"
	"popup-ads/internal/core/port"
)

const (
	defaultAdWidth  = 600
	defaultAdHeight = 400

	minAdWidth  = 200
	maxAdWidth  = 1200
	minAdHeight = 150
	maxAdHeight = 800
)

// Each distinct ad URL resolves to one stable creative, so ESP image caches
// may hold it for as long as they like.
const emailCacheControl = "private, max-age=31536000"

// emailParams are the shared query parameters of the email ad endpoints. The
// send identifier keys deterministic selection; sub makes URLs unique per
// subscriber and doubles as the selection key when send is absent.
type emailParams struct {
	property string
	send     string
	sub      string
	esp      string
}

func emailParamsFrom(r *http.Request) emailParams {
	q := r.URL.Query()
	p := emailParams{
		property: q.Get("property"),
		send:     q.Get("send"),
		sub:      q.Get("sub"),
		esp:      q.Get("esp"),
	}
	if p.esp == "" {
		p.esp = "sendgrid"
	}
	return p
}

func (p emailParams) selectionKey() string {
	if p.send != "" {
		return p.send
	}
	return p.sub
}

func (p emailParams) attribution(r *http.Request) domain.Attribution {
	return domain.Attribution{
		Source:      "email",
		Subsource:   p.esp,
		CampaignTag: p.send,
		Referrer:    r.Referer(),
	}
}

// handleEmailAd renders the deterministic ad card for an email send as PNG.
// The impression is recorded server-side before the image is written; a
// recording failure is logged but never blocks the response. 400 for an
// unknown property, 404 when no campaign is eligible.
func (h *Handler) handleEmailAd(w http.ResponseWriter, r *http.Request) {
	p := emailParamsFrom(r)
	q := r.URL.Query()

	width := clampDimension(q.Get("w"), defaultAdWidth, minAdWidth, maxAdWidth)
	height := clampDimension(q.Get("h"), defaultAdHeight, minAdHeight, maxAdHeight)
	debug := q.Get("debug") == "1" || q.Get("debug") == "true"

	campaign, err := h.selector.Select(r.Context(), p.property, port.ModeEmailSend, p.selectionKey())
	if err != nil {
		h.writeSelectError(w, err)
		return
	}

	if err = h.recorder.RecordImpression(r.Context(), port.ImpressionRecord{
		CampaignID:   campaign.ID,
		PropertyCode: p.property,
		SessionID:    p.sub,
		Placement:    "email",
		UserAgent:    r.UserAgent(),
		Attribution:  p.attribution(r),
	}); err != nil {
		h.logger.Error("record email impression error", slog.Any("error", err))
	}

	png, err := h.renderer.Render(r.Context(), campaign, width, height, debug)
	if err != nil {
		h.logger.Error("render email ad error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", emailCacheControl)
	w.Write(png)
}

// handleEmailClick records the click and redirects to the attributed tracking
// URL. Selection reuses the same send key as the image endpoint, so the
// click lands on the campaign that was shown. A recording failure still
// redirects; click-through must not be blocked by a logging error.
func (h *Handler) handleEmailClick(w http.ResponseWriter, r *http.Request) {
	p := emailParamsFrom(r)

	campaign, err := h.selector.Select(r.Context(), p.property, port.ModeEmailSend, p.selectionKey())
	if err != nil {
		h.writeSelectError(w, err)
		return
	}

	redirectURL, err := h.recorder.RecordClick(r.Context(), *campaign, port.ClickRecord{
		CampaignID:   campaign.ID,
		PropertyCode: p.property,
		SessionID:    p.sub,
		Placement:    "email",
		UserAgent:    r.UserAgent(),
		Attribution:  p.attribution(r),
	})
	if err != nil {
		if !errors.Is(err, port.ErrRecordingFailed) {
			h.logger.Error("email click error", slog.Any("error", err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		h.logger.Error("record email click error", slog.Any("error", err))
	}
	http.Redirect(w, r, redirectURL, http.StatusFound)
}

func (h *Handler) writeSelectError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, port.ErrInvalidProperty):
		http.Error(w, "unknown property", http.StatusBadRequest)
	case errors.Is(err, port.ErrNoCampaign):
		http.Error(w, "no active campaigns for property", http.StatusNotFound)
	default:
		h.logger.Error("select campaign error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func clampDimension(raw string, def, lo, hi int) int {
	v := def
	if raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			v = parsed
		}
	}
	return min(max(v, lo), hi)
}
