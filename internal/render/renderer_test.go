package render

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"

	"popup-ads/internal/config/configs"
	"popup-ads/internal/core/domain"
	"popup-ads/internal/core/port"
	"popup-ads/internal/core/port/mocks"
)

func testResolver(t *testing.T) *FontResolver {
	t.Helper()
	// No local files and no download URLs, so the chain lands on the
	// built-in Go fonts without touching the network.
	return NewFontResolver(configs.Assets{FontDir: t.TempDir()}, testLogger())
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCampaign() *domain.Campaign {
	return &domain.Campaign{
		ID:           1,
		Name:         "Daily Goodie Box",
		TrackingURL:  "https://t.example/x",
		LogoURL:      "https://img.example/logo.png",
		MainImageURL: "https://img.example/hero.png",
		Description:  "Free samples delivered to your door",
		CTAText:      "Claim Now",
	}
}

func encodePNG(t *testing.T, w, h int, col color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, col)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	return buf.Bytes()
}

func decodeSize(t *testing.T, data []byte) (int, int) {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode rendered PNG: %v", err)
	}
	return img.Bounds().Dx(), img.Bounds().Dy()
}

// TestRenderExactSizes pins the output pixel dimensions for the two standard
// email sizes and a non-standard one. Assets are unavailable, which must
// degrade to placeholders rather than fail the render.
func TestRenderExactSizes(t *testing.T) {
	fetcher := mocks.NewMockAssetFetcher(t)
	fetcher.EXPECT().
		Fetch(mock.Anything, mock.AnythingOfType("string")).
		Return(nil, port.ErrFetchFailed)

	r := NewRenderer(fetcher, testResolver(t), testLogger())

	for _, size := range []struct{ w, h int }{{600, 400}, {300, 250}, {500, 320}} {
		data, err := r.Render(context.Background(), testCampaign(), size.w, size.h, false)
		if err != nil {
			t.Fatalf("Render %dx%d error: %v", size.w, size.h, err)
		}
		w, h := decodeSize(t, data)
		if w != size.w || h != size.h {
			t.Fatalf("rendered %dx%d, want %dx%d", w, h, size.w, size.h)
		}
	}
}

// TestRenderDeterministic ensures two renders of the same campaign and size
// produce identical bytes when the fetched assets are identical.
func TestRenderDeterministic(t *testing.T) {
	hero := encodePNG(t, 80, 50, color.RGBA{200, 40, 40, 255})
	fetcher := mocks.NewMockAssetFetcher(t)
	fetcher.EXPECT().
		Fetch(mock.Anything, mock.AnythingOfType("string")).
		Return(hero, nil)

	r := NewRenderer(fetcher, testResolver(t), testLogger())

	first, err := r.Render(context.Background(), testCampaign(), 600, 400, false)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	second, err := r.Render(context.Background(), testCampaign(), 600, 400, false)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("renders differ for identical inputs")
	}
}

// TestRenderHeroChangesOutput ensures a fetched hero image actually lands on
// the canvas: the composition must differ from the placeholder render.
func TestRenderHeroChangesOutput(t *testing.T) {
	broken := mocks.NewMockAssetFetcher(t)
	broken.EXPECT().
		Fetch(mock.Anything, mock.AnythingOfType("string")).
		Return(nil, port.ErrFetchFailed)

	working := mocks.NewMockAssetFetcher(t)
	working.EXPECT().
		Fetch(mock.Anything, mock.AnythingOfType("string")).
		Return(encodePNG(t, 80, 50, color.RGBA{10, 120, 230, 255}), nil)

	resolver := testResolver(t)
	placeholder, err := NewRenderer(broken, resolver, testLogger()).
		Render(context.Background(), testCampaign(), 600, 400, false)
	if err != nil {
		t.Fatalf("placeholder render error: %v", err)
	}
	withHero, err := NewRenderer(working, resolver, testLogger()).
		Render(context.Background(), testCampaign(), 600, 400, false)
	if err != nil {
		t.Fatalf("hero render error: %v", err)
	}
	if bytes.Equal(placeholder, withHero) {
		t.Fatalf("hero image did not change the composition")
	}
}

// TestDebugOverlay ensures guides only appear when requested.
func TestDebugOverlay(t *testing.T) {
	fetcher := mocks.NewMockAssetFetcher(t)
	fetcher.EXPECT().
		Fetch(mock.Anything, mock.AnythingOfType("string")).
		Return(nil, port.ErrFetchFailed)

	resolver := testResolver(t)
	r := NewRenderer(fetcher, resolver, testLogger())

	plain, err := r.Render(context.Background(), testCampaign(), 600, 400, false)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	debug, err := r.Render(context.Background(), testCampaign(), 600, 400, true)
	if err != nil {
		t.Fatalf("Render debug error: %v", err)
	}
	if bytes.Equal(plain, debug) {
		t.Fatalf("debug overlay produced identical output")
	}

	again, err := r.Render(context.Background(), testCampaign(), 600, 400, false)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !bytes.Equal(plain, again) {
		t.Fatalf("non-debug output changed after a debug render")
	}
}

// TestRenderEmptyTextFallbacks ensures missing name and CTA text fall back
// to the defaults instead of leaving blank regions.
func TestRenderEmptyTextFallbacks(t *testing.T) {
	fetcher := mocks.NewMockAssetFetcher(t)
	fetcher.EXPECT().
		Fetch(mock.Anything, mock.AnythingOfType("string")).
		Return(nil, port.ErrFetchFailed)

	r := NewRenderer(fetcher, testResolver(t), testLogger())

	campaign := testCampaign()
	campaign.Name = ""
	campaign.CTAText = ""
	campaign.Description = ""

	data, err := r.Render(context.Background(), campaign, 600, 400, false)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if w, h := decodeSize(t, data); w != 600 || h != 400 {
		t.Fatalf("rendered %dx%d, want 600x400", w, h)
	}
}

func TestContainFit(t *testing.T) {
	box := image.Rect(24, 104, 576, 284) // 552x180

	// Wide source limited by height.
	fit := containFit(image.Rect(0, 0, 800, 200), box)
	if fit.Dy() != 180 {
		t.Fatalf("wide source height %d, want 180", fit.Dy())
	}
	if !fit.In(box) {
		t.Fatalf("fit %v escapes box %v", fit, box)
	}

	// Tall source limited by height as well given this box.
	fit = containFit(image.Rect(0, 0, 100, 400), box)
	if fit.Dy() != 180 || !fit.In(box) {
		t.Fatalf("tall source fit %v invalid for box %v", fit, box)
	}
}

// TestRenderConcurrent runs simultaneous renders against a single renderer,
// the way the email endpoint serves overlapping requests. Every render must
// produce a valid PNG without interfering with the others.
func TestRenderConcurrent(t *testing.T) {
	fetcher := mocks.NewMockAssetFetcher(t)
	fetcher.EXPECT().
		Fetch(mock.Anything, mock.AnythingOfType("string")).
		Return(nil, port.ErrFetchFailed)

	r := NewRenderer(fetcher, testResolver(t), testLogger())

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 5; j++ {
				data, err := r.Render(context.Background(), testCampaign(), 600, 400, false)
				if err != nil {
					errs <- err
					return
				}
				if _, err := png.Decode(bytes.NewReader(data)); err != nil {
					errs <- err
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent render: %v", err)
	}
}
