package export

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/san-kum/attiview/internal/display"
	"github.com/san-kum/attiview/internal/wireframe"
)

var ErrEmptySeries = errors.New("export: series needs at least two points")

// FrameOptions places one projected frame on an attitude card.
type FrameOptions struct {
	Width, Height int
	Viewport      [2]int // width, height of the fitted area
	Style         display.Style
	Panel         display.PanelOptions
	Readout       *display.Readout
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// FrameSVG writes the card, its label and one <line> per segment. Lines are
// clipped to the viewport the same way the panel sink clips them.
func FrameSVG(w io.Writer, segments []wireframe.Segment, opts FrameOptions) error {
	p := opts.Panel
	if p.Background == (color.RGBA{}) {
		p.Background = display.DefaultBackground
	}
	if p.Border == (color.RGBA{}) {
		p.Border = display.DefaultBorder
	}
	if p.LabelColor == (color.RGBA{}) {
		p.LabelColor = display.DefaultLabelColor
	}
	if p.Label == "" {
		p.Label = display.DefaultLabel
	}
	if p.Radius <= 0 {
		p.Radius = display.DefaultRadius
	}
	layout := display.Place(opts.Viewport[0], opts.Viewport[1], opts.Style, display.PanelOptions{Width: opts.Width, Height: opts.Height})
	opts.Width, opts.Height = layout.Card.Dx(), layout.Card.Dy()
	vp := layout.Viewport
	lineWidth := max(opts.Style.Width, 1)

	canvas := svg.New(w)
	canvas.Start(opts.Width, opts.Height)
	canvas.Roundrect(0, 0, opts.Width, opts.Height, p.Radius, p.Radius,
		fmt.Sprintf("fill:%s;stroke:%s;stroke-width:1", hex(p.Background), hex(p.Border)))
	canvas.Text(p.Radius, p.Radius+2, p.Label,
		fmt.Sprintf("fill:%s;font-family:monospace;font-size:7px", hex(p.LabelColor)))

	id := "viewport"
	canvas.Def()
	canvas.ClipPath(`id="` + id + `"`)
	canvas.Rect(vp.Min.X, vp.Min.Y, vp.Dx(), vp.Dy())
	canvas.ClipEnd()
	canvas.DefEnd()

	canvas.Group(fmt.Sprintf(`clip-path="url(#%s)"`, id),
		fmt.Sprintf(`style="stroke:%s;stroke-width:%d;stroke-linecap:square"`, hex(opts.Style.Color), lineWidth))
	dx, dy := vp.Min.X, vp.Min.Y
	for _, s := range segments {
		canvas.Line(s.A.X+dx, s.A.Y+dy, s.B.X+dx, s.B.Y+dy)
	}
	canvas.Gend()

	if opts.Readout != nil {
		y := opts.Height - 6*len(opts.Readout.Lines())
		for i, line := range opts.Readout.Lines() {
			canvas.Text(p.Radius, y+6*i, line,
				fmt.Sprintf("fill:%s;font-family:monospace;font-size:6px", hex(p.LabelColor)))
		}
	}

	canvas.End()
	return nil
}

// Series is one named trace for HistorySVG.
type Series struct {
	Name   string
	Color  string
	Values []float64
}

// HistorySVG plots one or more equally long series against sample index on
// a shared vertical scale padded by ten percent.
func HistorySVG(w io.Writer, width, height int, series ...Series) error {
	if len(series) == 0 || len(series[0].Values) < 2 {
		return ErrEmptySeries
	}
	n := len(series[0].Values)

	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, s := range series {
		if len(s.Values) != n {
			return fmt.Errorf("export: series %q has %d points, want %d", s.Name, len(s.Values), n)
		}
		for _, v := range s.Values {
			minY = math.Min(minY, v)
			maxY = math.Max(maxY, v)
		}
	}

	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#0a0a0a")

	if minY < 0 && maxY > 0 {
		zero := int(float64(height) - (0-minY)/rangeY*float64(height))
		canvas.Line(0, zero, width, zero, "stroke:#333333;stroke-width:1")
	}

	xs := make([]int, n)
	ys := make([]int, n)
	for i, s := range series {
		for j, v := range s.Values {
			xs[j] = int(float64(j) / float64(n-1) * float64(width))
			ys[j] = int(float64(height) - (v-minY)/rangeY*float64(height))
		}
		canvas.Polyline(xs, ys, fmt.Sprintf("fill:none;stroke:%s;stroke-width:1.5", s.Color))
		canvas.Text(6, 14+12*i, s.Name, fmt.Sprintf("fill:%s;font-family:monospace;font-size:10px", s.Color))
	}

	canvas.End()
	return nil
}
