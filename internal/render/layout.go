package render

import "image"

// layout describes where every element of the ad template lands on the
// canvas. The two standard email sizes use hand-tuned geometry; any other
// size falls back to scaling the 600×400 proportions.
type layout struct {
	pad int

	logo image.Rectangle

	pill     image.Rectangle
	pillSize float64

	titleY    int
	titleSize float64

	hero image.Rectangle

	descY    int
	descSize float64

	cta     image.Rectangle
	ctaSize float64
}

func layoutFor(w, h int) layout {
	switch {
	case w == 600 && h == 400:
		return fixed600x400()
	case w == 300 && h == 250:
		return fixed300x250()
	default:
		return proportional(w, h)
	}
}

func fixed600x400() layout {
	return layout{
		pad:       24,
		logo:      image.Rect(24, 16, 72, 64),
		pill:      image.Rect(120, 20, 480, 48),
		pillSize:  14,
		titleY:    92,
		titleSize: 28,
		hero:      image.Rect(24, 104, 576, 284),
		descY:     312,
		descSize:  16,
		cta:       image.Rect(24, 332, 576, 376),
		ctaSize:   18,
	}
}

func fixed300x250() layout {
	return layout{
		pad:       16,
		logo:      image.Rect(16, 10, 48, 42),
		pill:      image.Rect(60, 12, 240, 34),
		pillSize:  11,
		titleY:    60,
		titleSize: 18,
		hero:      image.Rect(16, 68, 284, 168),
		descY:     186,
		descSize:  12,
		cta:       image.Rect(16, 200, 284, 234),
		ctaSize:   14,
	}
}

// proportional scales the 600×400 template by height. Horizontal spans
// stretch to the requested width so wide or narrow canvases stay filled.
func proportional(w, h int) layout {
	s := float64(h) / 400
	scale := func(v int) int { return int(float64(v) * s) }

	pad := scale(24)
	if pad < 8 {
		pad = 8
	}
	logoSide := scale(48)
	logoTop := scale(16)

	l := layout{
		pad:       pad,
		logo:      image.Rect(pad, logoTop, pad+logoSide, logoTop+logoSide),
		pill:      image.Rect(scale(120), scale(20), w-scale(120), scale(48)),
		pillSize:  14 * s,
		titleY:    scale(92),
		titleSize: 28 * s,
		hero:      image.Rect(pad, scale(104), w-pad, scale(284)),
		descY:     scale(312),
		descSize:  16 * s,
		cta:       image.Rect(pad, scale(332), w-pad, scale(376)),
		ctaSize:   18 * s,
	}
	// The CTA must never spill off the canvas on short renders.
	l.cta = l.cta.Intersect(image.Rect(0, 0, w, h-4))
	if l.pill.Dx() < scale(80) {
		l.pill = image.Rect(pad+logoSide+scale(8), scale(20), w-pad, scale(48))
	}
	return l
}
