package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"popup-ads/internal/core/port"
)

// handleProxyImage serves a remote image through the content-addressed disk
// cache. The `u` query parameter carries the url-encoded source. The
// renderer uses the fetcher directly; this route exposes the same cache to
// the popup script so both surfaces share one copy of each creative.
func (h *Handler) handleProxyImage(w http.ResponseWriter, r *http.Request) {
	src := r.URL.Query().Get("u")
	if src == "" {
		http.Error(w, "missing u parameter", http.StatusBadRequest)
		return
	}

	data, err := h.fetcher.Fetch(r.Context(), src)
	if err != nil {
		if errors.Is(err, port.ErrFetchFailed) {
			http.Error(w, "upstream image unavailable", http.StatusBadGateway)
			return
		}
		h.logger.Error("proxy fetch error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(data))
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(data)
}
