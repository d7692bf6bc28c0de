package port

import (
	"context"

	"popup-ads/internal/core/domain"
)

// AdRenderer composites a campaign into a PNG of exactly the requested pixel
// size. debug enables non-destructive layout guides; it must not change the
// output when disabled. Rendering never fails on missing remote assets or
// fonts; those degrade to placeholders and fallback faces.
type AdRenderer interface {
	Render(ctx context.Context, campaign *domain.Campaign, width, height int, debug bool) ([]byte, error)
}

// AssetFetcher retrieves remote creative bytes, shielding callers from
// third-party rate limits. Returns ErrFetchFailed when retries are exhausted.
type AssetFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}
