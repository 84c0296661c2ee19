package display

import (
	"image"
	"image/color"
	"math"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinydraw"
)

// clipped forwards pixels to d only inside r. tinydraw does not clip, so
// every line goes through one of these.
type clipped struct {
	d drivers.Displayer
	r image.Rectangle
}

func (c clipped) Size() (x, y int16) { return c.d.Size() }
func (c clipped) Display() error     { return c.d.Display() }

func (c clipped) SetPixel(x, y int16, col color.RGBA) {
	if (image.Point{X: int(x), Y: int(y)}).In(c.r) {
		c.d.SetPixel(x, y, col)
	}
}

// clipLine trims the segment to r (Liang-Barsky). ok is false when nothing
// of the segment lies inside r. Trimming first keeps the endpoints inside
// the int16 range tinydraw works in.
func clipLine(a, b image.Point, r image.Rectangle) (image.Point, image.Point, bool) {
	x0, y0 := float64(a.X), float64(a.Y)
	dx, dy := float64(b.X)-x0, float64(b.Y)-y0
	t0, t1 := 0.0, 1.0

	edges := [4][2]float64{
		{-dx, x0 - float64(r.Min.X)},
		{dx, float64(r.Max.X-1) - x0},
		{-dy, y0 - float64(r.Min.Y)},
		{dy, float64(r.Max.Y-1) - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return a, b, false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return a, b, false
			}
			t1 = min(t1, t)
		}
	}

	ca := image.Point{X: int(math.Round(x0 + t0*dx)), Y: int(math.Round(y0 + t0*dy))}
	cb := image.Point{X: int(math.Round(x0 + t1*dx)), Y: int(math.Round(y0 + t1*dy))}
	return ca, cb, true
}

// thickLine draws a width-pixel line as width x width parallel copies of
// the one-pixel line.
func thickLine(d drivers.Displayer, a, b image.Point, width int, col color.RGBA) {
	lo := -(width - 1) / 2
	for oy := lo; oy < lo+width; oy++ {
		for ox := lo; ox < lo+width; ox++ {
			tinydraw.Line(d,
				int16(a.X+ox), int16(a.Y+oy),
				int16(b.X+ox), int16(b.Y+oy),
				col)
		}
	}
}

// fillRoundedRect fills r with corners of radius rad from a cross of two
// rectangles and four corner discs.
func fillRoundedRect(d drivers.Displayer, r image.Rectangle, rad int, col color.RGBA) {
	w, h := r.Dx(), r.Dy()
	rad = min(rad, w/2, h/2)
	if rad <= 0 {
		tinydraw.FilledRectangle(d, int16(r.Min.X), int16(r.Min.Y), int16(w), int16(h), col)
		return
	}
	x0, y0 := r.Min.X, r.Min.Y
	x1, y1 := r.Max.X-1, r.Max.Y-1

	tinydraw.FilledRectangle(d, int16(x0+rad), int16(y0), int16(w-2*rad), int16(h), col)
	tinydraw.FilledRectangle(d, int16(x0), int16(y0+rad), int16(rad), int16(h-2*rad), col)
	tinydraw.FilledRectangle(d, int16(x1-rad+1), int16(y0+rad), int16(rad), int16(h-2*rad), col)
	for _, cx := range [2]int{x0 + rad, x1 - rad} {
		for _, cy := range [2]int{y0 + rad, y1 - rad} {
			tinydraw.FilledCircle(d, int16(cx), int16(cy), int16(rad), col)
		}
	}
}
