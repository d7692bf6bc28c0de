package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"popup-ads/internal/core/port"
)

// popupCampaign is the JSON shape the popup script consumes. Caps and
// visibility sampling have already been applied by the selector, so the
// client displays the list as-is.
type popupCampaign struct {
	ID                   int64   `json:"id"`
	Name                 string  `json:"name"`
	TrackingURL          string  `json:"tracking_url"`
	LogoURL              string  `json:"logo_url"`
	MainImageURL         string  `json:"main_image_url"`
	Description          string  `json:"description"`
	CTAText              string  `json:"cta_text"`
	Featured             bool    `json:"featured"`
	VisibilityPercentage int     `json:"visibility_percentage"`
	RPM                  float64 `json:"rpm"`
}

// handleActiveCampaigns returns the eligible campaigns for interactive popup
// display on a property, in serving order. The optional `session` query
// parameter keys the visibility sampling draw so one visitor sees a stable
// set. Unknown properties produce HTTP 404.
func (h *Handler) handleActiveCampaigns(w http.ResponseWriter, r *http.Request) {
	property := chi.URLParam(r, "property")
	session := r.URL.Query().Get("session")

	candidates, err := h.selector.Eligible(r.Context(), property, session)
	if err != nil {
		if errors.Is(err, port.ErrInvalidProperty) {
			http.Error(w, "unknown property", http.StatusNotFound)
			return
		}
		h.logger.Error("eligible campaigns error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]popupCampaign, 0, len(candidates))
	for _, cand := range candidates {
		resp = append(resp, popupCampaign{
			ID:                   cand.Campaign.ID,
			Name:                 cand.Campaign.Name,
			TrackingURL:          cand.Campaign.TrackingURL,
			LogoURL:              cand.Campaign.LogoURL,
			MainImageURL:         cand.Campaign.MainImageURL,
			Description:          cand.Campaign.Description,
			CTAText:              cand.Campaign.CTAText,
			Featured:             cand.Campaign.Featured,
			VisibilityPercentage: cand.Assignment.VisibilityPercentage,
			RPM:                  cand.RPM,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
