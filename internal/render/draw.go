package render

import (
	"image"
	"image/color"
	"image/draw"
)

// Pixel-level shape helpers shared by the layout and debug code.

func fillRect(dst *image.RGBA, r image.Rectangle, col color.Color) {
	draw.Draw(dst, r, image.NewUniform(col), image.Point{}, draw.Over)
}

// strokeRect outlines r with a border of the given width drawn inward.
func strokeRect(dst *image.RGBA, r image.Rectangle, col color.Color, width int) {
	if r.Empty() || width <= 0 {
		return
	}
	fillRect(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width), col)
	fillRect(dst, image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y), col)
	fillRect(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+width, r.Max.Y), col)
	fillRect(dst, image.Rect(r.Max.X-width, r.Min.Y, r.Max.X, r.Max.Y), col)
}

// fillRoundedRect fills r with rounded corners of the given radius.
func fillRoundedRect(dst *image.RGBA, r image.Rectangle, radius int, col color.Color) {
	if r.Empty() {
		return
	}
	maxRadius := min(r.Dx(), r.Dy()) / 2
	if radius > maxRadius {
		radius = maxRadius
	}
	if radius <= 0 {
		fillRect(dst, r, col)
		return
	}
	rr := radius * radius
	corners := [4]image.Point{
		{r.Min.X + radius, r.Min.Y + radius},
		{r.Max.X - radius - 1, r.Min.Y + radius},
		{r.Min.X + radius, r.Max.Y - radius - 1},
		{r.Max.X - radius - 1, r.Max.Y - radius - 1},
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			inCornerZone := false
			for _, c := range corners {
				cornerX := (x < r.Min.X+radius && c.X == r.Min.X+radius) ||
					(x >= r.Max.X-radius && c.X == r.Max.X-radius-1)
				cornerY := (y < r.Min.Y+radius && c.Y == r.Min.Y+radius) ||
					(y >= r.Max.Y-radius && c.Y == r.Max.Y-radius-1)
				if cornerX && cornerY {
					inCornerZone = true
					dx, dy := x-c.X, y-c.Y
					if dx*dx+dy*dy <= rr {
						dst.Set(x, y, col)
					}
					break
				}
			}
			if !inCornerZone {
				dst.Set(x, y, col)
			}
		}
	}
}

// circleMask is an alpha mask shaped as a filled disc, used to clip the logo
// image to the badge circle.
type circleMask struct {
	center image.Point
	radius int
}

func (c *circleMask) ColorModel() color.Model { return color.AlphaModel }

func (c *circleMask) Bounds() image.Rectangle {
	return image.Rect(c.center.X-c.radius, c.center.Y-c.radius, c.center.X+c.radius, c.center.Y+c.radius)
}

func (c *circleMask) At(x, y int) color.Color {
	dx, dy := x-c.center.X, y-c.center.Y
	if dx*dx+dy*dy <= c.radius*c.radius {
		return color.Alpha{A: 255}
	}
	return color.Alpha{}
}

// shadowMask builds a soft elliptical alpha mask of the given core size,
// blurred by two box-blur passes. The returned mask is larger than w×h by
// the blur margin on every side.
func shadowMask(w, h, blur int) *image.Alpha {
	m := image.NewAlpha(image.Rect(0, 0, w+2*blur, h+2*blur))
	a, b := float64(w)/2, float64(h)/2
	cx, cy := a+float64(blur), b+float64(blur)
	for y := 0; y < m.Rect.Max.Y; y++ {
		for x := 0; x < m.Rect.Max.X; x++ {
			nx, ny := (float64(x)-cx)/a, (float64(y)-cy)/b
			if nx*nx+ny*ny <= 1 {
				m.SetAlpha(x, y, color.Alpha{A: 255})
			}
		}
	}
	if blur > 0 {
		m = boxBlurAlpha(m, blur/2+1)
		m = boxBlurAlpha(m, blur/2+1)
	}
	return m
}

// boxBlurAlpha applies a separable mean filter of radius r.
func boxBlurAlpha(src *image.Alpha, r int) *image.Alpha {
	bounds := src.Rect
	w, h := bounds.Dx(), bounds.Dy()
	tmp := image.NewAlpha(bounds)
	dst := image.NewAlpha(bounds)
	window := 2*r + 1

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum int
			for k := -r; k <= r; k++ {
				xx := x + k
				if xx < 0 {
					xx = 0
				} else if xx >= w {
					xx = w - 1
				}
				sum += int(src.AlphaAt(xx, y).A)
			}
			tmp.SetAlpha(x, y, color.Alpha{A: uint8(sum / window)})
		}
	}
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			var sum int
			for k := -r; k <= r; k++ {
				yy := y + k
				if yy < 0 {
					yy = 0
				} else if yy >= h {
					yy = h - 1
				}
				sum += int(tmp.AlphaAt(x, yy).A)
			}
			dst.SetAlpha(x, y, color.Alpha{A: uint8(sum / window)})
		}
	}
	return dst
}
