package imgcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"popup-ads/internal/config/configs"
	"popup-ads/internal/core/port"
)

const userAgent = "Mozilla/5.0 (compatible; PopupAdsRenderer/1.0)"

// Fetcher implements port.AssetFetcher: a content-addressed disk cache in
// front of remote image hosts. Cache writes are idempotent: the bytes for a
// given key are identical across writers, so concurrent duplicate writes need
// no coordination. A configured proxy endpoint is tried before direct
// fetches to keep third-party rate limits off this process.
type Fetcher struct {
	client   *http.Client
	cacheDir string
	proxyURL string
	retries  int
	logger   *slog.Logger
}

// NewFetcher creates a fetcher and its cache directory.
func NewFetcher(cfg configs.Assets, logger *slog.Logger) (*Fetcher, error) {
	if err := os.MkdirAll(cfg.CacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	retries := cfg.FetchRetries
	if retries < 1 {
		retries = 1
	}
	return &Fetcher{
		client:   &http.Client{Timeout: cfg.FetchTimeout},
		cacheDir: cfg.CacheDir,
		proxyURL: cfg.ProxyURL,
		retries:  retries,
		logger:   logger,
	}, nil
}

// Fetch returns the bytes for a remote image, from disk when cached. On
// exhausted retries it returns ErrFetchFailed; callers substitute a
// placeholder rather than failing the surrounding render.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	normalized := NormalizeURL(rawURL)
	if normalized == "" {
		return nil, port.ErrFetchFailed
	}

	path := f.cachePath(normalized)
	if data, err := os.ReadFile(path); err == nil && len(data) > 0 {
		return data, nil
	}

	sources := make([]string, 0, 2)
	if f.proxyURL != "" {
		sources = append(sources, f.proxyURL+"?u="+url.QueryEscape(normalized))
	}
	sources = append(sources, normalized)

	for _, src := range sources {
		data, err := f.get(ctx, src)
		if err != nil {
			f.logger.Warn("image fetch failed",
				slog.String("url", src), slog.Any("error", err))
			continue
		}
		if err = os.WriteFile(path, data, 0o644); err != nil {
			f.logger.Warn("image cache write failed",
				slog.String("path", path), slog.Any("error", err))
		}
		return data, nil
	}
	return nil, port.ErrFetchFailed
}

// get performs one fetch with bounded retries, backing off on 429 and 5xx.
func (f *Fetcher) get(ctx context.Context, src string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt < f.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff(attempt)):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", userAgent)
		req.Header.Set("Accept", "image/webp,image/apng,image/*,*/*;q=0.8")

		resp, err := f.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		body, readErr := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
		resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
			if readErr != nil {
				lastErr = readErr
				continue
			}
			if ct := resp.Header.Get("Content-Type"); ct != "" && !strings.Contains(ct, "image") && !strings.Contains(ct, "octet-stream") {
				return nil, fmt.Errorf("non-image content type %q", ct)
			}
			if len(body) == 0 {
				lastErr = fmt.Errorf("empty body")
				continue
			}
			return body, nil
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			lastErr = fmt.Errorf("http %d", resp.StatusCode)
		default:
			return nil, fmt.Errorf("http %d", resp.StatusCode)
		}
	}
	return nil, lastErr
}

func (f *Fetcher) cachePath(normalized string) string {
	sum := sha256.Sum256([]byte(normalized))
	return filepath.Join(f.cacheDir, hex.EncodeToString(sum[:8])+".img")
}

func backoff(attempt int) time.Duration {
	return time.Duration(300*(1<<(attempt-1))) * time.Millisecond
}
