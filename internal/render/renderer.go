package render

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log/slog"

	_ "image/gif"
	_ "image/jpeg"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
	_ "golang.org/x/image/webp"

	"popup-ads/internal/core/domain"
	"popup-ads/internal/core/port"
)

const tagline = "Thanks for Reading - You've unlocked bonus offers"

const (
	fallbackTitle = "Sponsored"
	fallbackCTA   = "View Offer"
)

var (
	colorBackground  = color.RGBA{255, 255, 255, 255}
	colorBorder      = color.RGBA{229, 231, 235, 255}
	colorTitle       = color.RGBA{17, 24, 39, 255}
	colorBody        = color.RGBA{75, 85, 99, 255}
	colorPill        = color.RGBA{247, 0, 124, 255}
	colorCTA         = color.RGBA{124, 58, 237, 255}
	colorPlaceholder = color.RGBA{243, 244, 246, 255}
	colorOutline     = color.RGBA{233, 236, 239, 255}
	colorShadow      = color.RGBA{0, 0, 0, 70}
	colorWhite       = color.RGBA{255, 255, 255, 255}
)

// Renderer composites campaign creatives into the fixed email ad template.
type Renderer struct {
	fetcher port.AssetFetcher
	fonts   *FontResolver
	logger  *slog.Logger
}

var _ port.AdRenderer = (*Renderer)(nil)

func NewRenderer(fetcher port.AssetFetcher, fonts *FontResolver, logger *slog.Logger) *Renderer {
	return &Renderer{fetcher: fetcher, fonts: fonts, logger: logger}
}

// Render draws the campaign onto a w×h canvas and returns the encoded PNG.
// Missing remote assets degrade to placeholders rather than failing the
// render; only encoding errors are returned.
func (r *Renderer) Render(ctx context.Context, campaign *domain.Campaign, width, height int, debug bool) ([]byte, error) {
	l := layoutFor(width, height)
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))

	fillRect(canvas, canvas.Bounds(), colorBackground)
	strokeRect(canvas, canvas.Bounds(), colorBorder, 2)

	r.drawLogo(ctx, canvas, l, campaign.LogoURL)
	r.drawPill(canvas, l)
	r.drawTitle(canvas, l, campaign.Name)
	r.drawHero(ctx, canvas, l, campaign.MainImageURL, debug)
	r.drawDescription(canvas, l, campaign.Description)
	r.drawCTA(canvas, l, campaign.CTAText)

	if debug {
		drawGuides(canvas, l)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// drawLogo clips the logo image into a circular badge. A missing or broken
// logo is simply skipped; the template reads fine without it.
func (r *Renderer) drawLogo(ctx context.Context, canvas *image.RGBA, l layout, url string) {
	if url == "" {
		return
	}
	img := r.fetchImage(ctx, url)
	if img == nil {
		return
	}
	scaled := image.NewRGBA(image.Rect(0, 0, l.logo.Dx(), l.logo.Dy()))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), img, img.Bounds(), xdraw.Over, nil)

	center := image.Pt((l.logo.Min.X+l.logo.Max.X)/2, (l.logo.Min.Y+l.logo.Max.Y)/2)
	mask := &circleMask{center: center, radius: l.logo.Dx() / 2}
	draw.DrawMask(canvas, l.logo, scaled, image.Point{}, mask, l.logo.Min, draw.Over)
}

func (r *Renderer) drawPill(canvas *image.RGBA, l layout) {
	fillRoundedRect(canvas, l.pill, l.pill.Dy()/2, colorPill)
	face := r.fonts.Face(true, l.pillSize)
	baseline := l.pill.Min.Y + (l.pill.Dy()+faceAscent(face))/2
	drawCenteredText(canvas, face, tagline, l.pill.Min.X+8, l.pill.Max.X-8, baseline, colorWhite, 0)
}

func (r *Renderer) drawTitle(canvas *image.RGBA, l layout, name string) {
	if name == "" {
		name = fallbackTitle
	}
	face := r.fonts.Face(true, l.titleSize)
	drawCenteredText(canvas, face, name, l.pad, canvas.Bounds().Dx()-l.pad, l.titleY, colorTitle, fixed.I(1))
}

// drawHero places the main creative contain-fit inside the hero box with a
// soft shadow beneath it. Fetch or decode failure falls back to a neutral
// placeholder; debug mode outlines the placeholder and labels it.
func (r *Renderer) drawHero(ctx context.Context, canvas *image.RGBA, l layout, url string, debug bool) {
	img := r.fetchImage(ctx, url)
	if img == nil {
		fillRect(canvas, l.hero, colorPlaceholder)
		if debug {
			strokeRect(canvas, l.hero, colorOutline, 2)
			face := r.fonts.Face(false, l.descSize)
			baseline := l.hero.Min.Y + (l.hero.Dy()+faceAscent(face))/2
			drawCenteredText(canvas, face, "image unavailable", l.hero.Min.X, l.hero.Max.X, baseline, colorBody, 0)
		}
		return
	}

	fit := containFit(img.Bounds(), l.hero)

	blur := max(l.hero.Dy()/20, 4)
	mask := shadowMask(fit.Dx()*9/10, max(fit.Dy()/10, 6), blur)
	shadowAt := image.Pt(
		fit.Min.X+(fit.Dx()-mask.Rect.Dx())/2,
		fit.Max.Y-mask.Rect.Dy()*2/3,
	)
	draw.DrawMask(canvas, mask.Rect.Add(shadowAt), image.NewUniform(colorShadow), image.Point{}, mask, mask.Rect.Min, draw.Over)

	xdraw.CatmullRom.Scale(canvas, fit, img, img.Bounds(), xdraw.Over, nil)
}

func (r *Renderer) drawDescription(canvas *image.RGBA, l layout, text string) {
	if text == "" {
		return
	}
	face := r.fonts.Face(false, l.descSize)
	drawCenteredText(canvas, face, text, l.pad, canvas.Bounds().Dx()-l.pad, l.descY, colorBody, 0)
}

func (r *Renderer) drawCTA(canvas *image.RGBA, l layout, text string) {
	if l.cta.Empty() {
		return
	}
	if text == "" {
		text = fallbackCTA
	}
	fillRoundedRect(canvas, l.cta, 8, colorCTA)
	face := r.fonts.Face(true, l.ctaSize)
	baseline := l.cta.Min.Y + (l.cta.Dy()+faceAscent(face))/2
	drawCenteredText(canvas, face, text, l.cta.Min.X+8, l.cta.Max.X-8, baseline, colorWhite, 0)
}

func (r *Renderer) fetchImage(ctx context.Context, url string) image.Image {
	if url == "" {
		return nil
	}
	data, err := r.fetcher.Fetch(ctx, url)
	if err != nil {
		r.logger.Warn("asset fetch failed", "url", url, "error", err)
		return nil
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		r.logger.Warn("asset decode failed", "url", url, "error", err)
		return nil
	}
	return img
}

// containFit returns the largest rectangle with src's aspect ratio that fits
// inside box, centered.
func containFit(src, box image.Rectangle) image.Rectangle {
	sw, sh := src.Dx(), src.Dy()
	bw, bh := box.Dx(), box.Dy()
	if sw == 0 || sh == 0 {
		return box
	}
	w, h := bw, sh*bw/sw
	if h > bh {
		h = bh
		w = sw * bh / sh
	}
	x := box.Min.X + (bw-w)/2
	y := box.Min.Y + (bh-h)/2
	return image.Rect(x, y, x+w, y+h)
}
