package imgcache

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"popup-ads/internal/config/configs"
	"popup-ads/internal/core/port"
)

func newTestFetcher(t *testing.T, proxyURL string) *Fetcher {
	t.Helper()
	f, err := NewFetcher(configs.Assets{
		CacheDir:     t.TempDir(),
		ProxyURL:     proxyURL,
		FetchTimeout: 2 * time.Second,
		FetchRetries: 3,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("NewFetcher error: %v", err)
	}
	return f
}

// TestFetchCachesOnDisk ensures the second fetch of one URL is served from
// disk without a network round trip.
func TestFetchCachesOnDisk(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("png-bytes"))
	}))
	defer srv.Close()

	f := newTestFetcher(t, "")

	first, err := f.Fetch(context.Background(), srv.URL+"/hero.png")
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	second, err := f.Fetch(context.Background(), srv.URL+"/hero.png")
	if err != nil {
		t.Fatalf("cached Fetch error: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("cached bytes differ from fetched bytes")
	}
	if hits.Load() != 1 {
		t.Fatalf("expected 1 upstream hit, got %d", hits.Load())
	}
}

// TestFetchRetriesOnThrottle ensures 429 responses are retried until the
// host recovers.
func TestFetchRetriesOnThrottle(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write([]byte("jpeg-bytes"))
	}))
	defer srv.Close()

	f := newTestFetcher(t, "")

	data, err := f.Fetch(context.Background(), srv.URL+"/img.jpg")
	if err != nil {
		t.Fatalf("Fetch error after retries: %v", err)
	}
	if string(data) != "jpeg-bytes" {
		t.Fatalf("unexpected body %q", data)
	}
	if hits.Load() != 3 {
		t.Fatalf("expected 3 attempts, got %d", hits.Load())
	}
}

// TestFetchExhaustedRetries maps a persistently failing host to
// ErrFetchFailed so callers fall back to a placeholder.
func TestFetchExhaustedRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	f := newTestFetcher(t, "")

	_, err := f.Fetch(context.Background(), srv.URL+"/img.png")
	if !errors.Is(err, port.ErrFetchFailed) {
		t.Fatalf("expected ErrFetchFailed, got %v", err)
	}
}

// TestFetchProxyFirst ensures the shared proxy is tried before the direct
// host and that a broken proxy falls back to direct.
func TestFetchProxyFirst(t *testing.T) {
	direct := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("direct"))
	}))
	defer direct.Close()

	var proxied atomic.Int32
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		proxied.Add(1)
		if r.URL.Query().Get("u") == "" {
			t.Errorf("proxy called without u parameter")
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("proxied"))
	}))
	defer proxy.Close()

	f := newTestFetcher(t, proxy.URL)
	data, err := f.Fetch(context.Background(), direct.URL+"/a.png")
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if string(data) != "proxied" || proxied.Load() == 0 {
		t.Fatalf("proxy was not preferred: body %q", data)
	}

	brokenProxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer brokenProxy.Close()

	f = newTestFetcher(t, brokenProxy.URL)
	data, err = f.Fetch(context.Background(), direct.URL+"/b.png")
	if err != nil {
		t.Fatalf("Fetch error with broken proxy: %v", err)
	}
	if string(data) != "direct" {
		t.Fatalf("expected direct fallback, got %q", data)
	}
}

// TestFetchRejectsNonImage ensures HTML error pages are not cached as
// creatives.
func TestFetchRejectsNonImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html>not found</html>"))
	}))
	defer srv.Close()

	f := newTestFetcher(t, "")

	_, err := f.Fetch(context.Background(), srv.URL+"/a.png")
	if !errors.Is(err, port.ErrFetchFailed) {
		t.Fatalf("expected ErrFetchFailed for html body, got %v", err)
	}
}

func TestNormalizeURL(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", ""},
		{"  https://img.example/a.png  ", "https://img.example/a.png"},
		{"https://imgur.com/abc123", "https://i.imgur.com/abc123.jpg"},
		{"https://imgur.com/gallery/abc123", "https://i.imgur.com/abc123.jpg"},
		{"https://imgur.com/abc123.png", "https://i.imgur.com/abc123.png"},
		{"https://i.imgur.com/abc123.png", "https://i.imgur.com/abc123.png"},
		{"https://cdn.example/x/y.webp", "https://cdn.example/x/y.webp"},
	}
	for _, c := range cases {
		if got := NormalizeURL(c.in); got != c.want {
			t.Fatalf("NormalizeURL(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
