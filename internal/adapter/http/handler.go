package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"
	"log/slog"

	"popup-ads/internal/config/configs"
	"popup-ads/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the selection, rendering and recording ports plus a logger for
// structured logging. Routes are registered on a chi.Router for convenient
// method handling.
type Handler struct {
	selector port.AdSelector
	renderer port.AdRenderer
	recorder port.EventRecorder
	fetcher  port.AssetFetcher
	store    port.CampaignStore
	validate *validator.Validate
	logger   *slog.Logger
	router   chi.Router
}

// NewHandler creates a handler with all routes configured. The public image
// proxy is the only route that fronts arbitrary remote hosts, so it alone is
// rate limited.
func NewHandler(
	selector port.AdSelector,
	renderer port.AdRenderer,
	recorder port.EventRecorder,
	fetcher port.AssetFetcher,
	store port.CampaignStore,
	cfg configs.Ads,
	logger *slog.Logger,
) *Handler {
	h := &Handler{
		selector: selector,
		renderer: renderer,
		recorder: recorder,
		fetcher:  fetcher,
		store:    store,
		validate: validator.New(),
		logger:   logger,
	}
	r := chi.NewRouter()

	r.Get("/health", h.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/campaigns/active/{property}", h.handleActiveCampaigns)
		r.Get("/properties", h.handleListProperties)
		r.Get("/email/ad.png", h.handleEmailAd)
		r.Get("/email/click", h.handleEmailClick)
		r.Post("/impression", h.handleImpression)
		r.Post("/click", h.handleClick)

		r.Group(func(r chi.Router) {
			r.Use(httprate.LimitByIP(cfg.ProxyRequestsPerMinute, time.Minute))
			r.Get("/proxy/img", h.handleProxyImage)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
