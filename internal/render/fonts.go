package render

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"popup-ads/internal/config/configs"
	"popup-ads/internal/core/port"
)

// Local file names checked in the font asset directory, in order.
var (
	boldFontFiles    = []string{"Inter-Bold.otf", "Inter-Bold.ttf"}
	regularFontFiles = []string{"Inter-Regular.otf", "Inter-Regular.ttf"}

	systemBoldFonts = []string{
		"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
		"/usr/share/fonts/dejavu/DejaVuSans-Bold.ttf",
		"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
	}
	systemRegularFonts = []string{
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/dejavu/DejaVuSans.ttf",
		"/System/Library/Fonts/Supplemental/Arial.ttf",
	}
)

// FontResolver loads the display and body typefaces with a fallback chain:
// local asset directory, a one-time download of the preferred typeface, the
// system font paths, the built-in Go fonts, and finally a bitmap face.
// Rendering never fails solely because a font is missing.
type FontResolver struct {
	dir        string
	boldURL    string
	regularURL string
	client     *http.Client
	logger     *slog.Logger

	mu      sync.Mutex
	parsed  map[bool]*opentype.Font
	fetched map[bool]bool // download attempted this process
}

// NewFontResolver creates a resolver rooted at the configured font directory.
func NewFontResolver(cfg configs.Assets, logger *slog.Logger) *FontResolver {
	return &FontResolver{
		dir:        cfg.FontDir,
		boldURL:    cfg.BoldFontURL,
		regularURL: cfg.RegularFontURL,
		client:     &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
		parsed:     make(map[bool]*opentype.Font),
		fetched:    make(map[bool]bool),
	}
}

// Face returns a ready-to-draw face at the given point size. The parsed font
// is cached and shared; the face itself is freshly built per call because
// opentype faces carry per-use glyph buffers and are not safe for concurrent
// draws. Callers own the returned face for the duration of one render.
func (r *FontResolver) Face(bold bool, size float64) font.Face {
	r.mu.Lock()
	f := r.fontLocked(bold)
	r.mu.Unlock()

	if f == nil {
		r.logger.Warn("falling back to bitmap face", slog.Any("error", port.ErrFontUnavailable))
		return basicfont.Face7x13
	}
	of, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		r.logger.Warn("font face creation failed", slog.Any("error", err))
		return basicfont.Face7x13
	}
	return of
}

// fontLocked walks the fallback chain. Returns nil only when even the
// built-in Go fonts fail to parse, which leaves the bitmap face.
func (r *FontResolver) fontLocked(bold bool) *opentype.Font {
	if f, ok := r.parsed[bold]; ok {
		return f
	}

	names, sysPaths, dlURL, builtin := regularFontFiles, systemRegularFonts, r.regularURL, goregular.TTF
	if bold {
		names, sysPaths, dlURL, builtin = boldFontFiles, systemBoldFonts, r.boldURL, gobold.TTF
	}

	for _, name := range names {
		if f := r.parseFile(filepath.Join(r.dir, name)); f != nil {
			r.parsed[bold] = f
			return f
		}
	}

	if !r.fetched[bold] && dlURL != "" {
		r.fetched[bold] = true
		if path, err := r.download(dlURL, names[0]); err != nil {
			r.logger.Warn("font download failed",
				slog.String("url", dlURL), slog.Any("error", err))
		} else if f := r.parseFile(path); f != nil {
			r.parsed[bold] = f
			return f
		}
	}

	for _, path := range sysPaths {
		if f := r.parseFile(path); f != nil {
			r.parsed[bold] = f
			return f
		}
	}

	f, err := opentype.Parse(builtin)
	if err != nil {
		r.logger.Error("builtin font parse failed", slog.Any("error", err))
		return nil
	}
	r.parsed[bold] = f
	return f
}

func (r *FontResolver) parseFile(path string) *opentype.Font {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	f, err := opentype.Parse(data)
	if err != nil {
		r.logger.Warn("font parse failed", slog.String("path", path), slog.Any("error", err))
		return nil
	}
	return f
}

// download fetches the preferred typeface and caches it to the asset
// directory so subsequent processes find it locally.
func (r *FontResolver) download(url, name string) (string, error) {
	resp, err := r.client.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("http %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return "", err
	}
	if err = os.MkdirAll(r.dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(r.dir, name)
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
