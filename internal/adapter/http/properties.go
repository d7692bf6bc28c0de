package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// propertyInfo is the JSON shape for the property listing consumed by the
// popup script installer and internal tooling.
type propertyInfo struct {
	Code               string `json:"code"`
	Name               string `json:"name"`
	Domain             string `json:"domain"`
	PopupEnabled       bool   `json:"popup_enabled"`
	PopupFrequency     string `json:"popup_frequency"`
	PopupPlacement     string `json:"popup_placement"`
	FeaturedCampaignID *int64 `json:"featured_campaign_id"`
}

// handleListProperties returns every configured property with its popup
// settings.
func (h *Handler) handleListProperties(w http.ResponseWriter, r *http.Request) {
	properties, err := h.store.ListProperties(r.Context())
	if err != nil {
		h.logger.Error("list properties error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]propertyInfo, 0, len(properties))
	for _, p := range properties {
		resp = append(resp, propertyInfo{
			Code:               p.Code,
			Name:               p.Name,
			Domain:             p.Domain,
			PopupEnabled:       p.PopupEnabled,
			PopupFrequency:     p.PopupFrequency,
			PopupPlacement:     p.PopupPlacement,
			FeaturedCampaignID: p.FeaturedCampaignID,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
