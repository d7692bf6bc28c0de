package render

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Tracked text: a measure-then-draw loop that places glyphs one rune at a
// time with a fixed letter-spacing adjustment instead of the face's default
// kerning. The same measurement is used for truncation so drawn text always
// fits the width it was measured against.

const ellipsis = "…"

// measureTracked returns the advance width of s with per-gap tracking.
func measureTracked(face font.Face, s string, tracking fixed.Int26_6) fixed.Int26_6 {
	var w fixed.Int26_6
	n := 0
	for _, r := range s {
		adv, ok := face.GlyphAdvance(r)
		if !ok {
			adv, _ = face.GlyphAdvance('?')
		}
		w += adv
		n++
	}
	if n > 1 {
		w += tracking.Mul(fixed.I(n - 1))
	}
	return w
}

// drawTracked draws s rune by rune starting at the baseline point (x, y).
func drawTracked(dst draw.Image, face font.Face, s string, x, y int, col color.Color, tracking fixed.Int26_6) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	first := true
	for _, r := range s {
		if !first {
			d.Dot.X += tracking
		}
		d.DrawString(string(r))
		first = false
	}
}

// truncateTracked shortens s until it fits maxWidth, appending an ellipsis
// when anything was cut. Returns the ellipsis alone when not even one rune
// fits.
func truncateTracked(face font.Face, s string, maxWidth, tracking fixed.Int26_6) string {
	if measureTracked(face, s, tracking) <= maxWidth {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := strings.TrimRight(string(runes), " ") + ellipsis
		if measureTracked(face, candidate, tracking) <= maxWidth {
			return candidate
		}
	}
	return ellipsis
}

// drawCenteredText draws s horizontally centered within [x0, x1] at baseline
// y, truncating with an ellipsis if it exceeds the span.
func drawCenteredText(dst draw.Image, face font.Face, s string, x0, x1, y int, col color.Color, tracking fixed.Int26_6) {
	maxW := fixed.I(x1 - x0)
	s = truncateTracked(face, s, maxW, tracking)
	w := measureTracked(face, s, tracking).Round()
	x := x0 + (x1-x0-w)/2
	drawTracked(dst, face, s, x, y, col, tracking)
}

// faceAscent reports the ascent in pixels, used to center text vertically
// inside a box.
func faceAscent(face font.Face) int {
	return face.Metrics().Ascent.Round()
}
