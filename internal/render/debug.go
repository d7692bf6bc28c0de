package render

import (
	"image"
	"image/color"
)

var (
	guideHero  = color.RGBA{239, 68, 68, 255}
	guideText  = color.RGBA{59, 130, 246, 255}
	guideCTA   = color.RGBA{34, 197, 94, 255}
	guideTitle = color.RGBA{245, 158, 11, 255}
)

// drawGuides overlays the layout boxes for template tuning. It draws on top
// of the finished composition so the non-debug output is never altered.
func drawGuides(canvas *image.RGBA, l layout) {
	w := canvas.Bounds().Dx()

	strokeRect(canvas, l.hero, guideHero, 1)
	strokeRect(canvas, l.cta, guideCTA, 1)
	strokeRect(canvas, l.pill, guideText, 1)
	strokeRect(canvas, l.logo, guideText, 1)

	// Baselines render as thin horizontal rules across the text span.
	fillRect(canvas, image.Rect(l.pad, l.titleY, w-l.pad, l.titleY+1), guideTitle)
	fillRect(canvas, image.Rect(l.pad, l.descY, w-l.pad, l.descY+1), guideText)
}
