package display

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"github.com/san-kum/attiview/internal/wireframe"
)

var _ drivers.Displayer = (*Panel)(nil)

// Card defaults of the launcher tile.
const (
	DefaultCardWidth  = 180
	DefaultCardHeight = 110
	DefaultRadius     = 10
	DefaultLabel      = "ATTITUDE"
)

var (
	DefaultBackground = RGB(0x071218)
	DefaultBorder     = RGB(0x1E3C2A)
	DefaultLabelColor = RGB(0x4FD88E)
)

// PanelOptions describes the card the wireframe sits on. Zero fields take
// the launcher tile defaults.
type PanelOptions struct {
	Width      int
	Height     int
	Radius     int
	Background color.RGBA
	Border     color.RGBA
	Label      string
	LabelColor color.RGBA

	// OnDisplay runs after each frame is composed; nil is a no-op.
	OnDisplay func(*image.RGBA) error
}

// Panel is an in-memory framebuffer for one attitude card. It redraws the
// whole card on every update.
type Panel struct {
	img      *image.RGBA
	opts     PanelOptions
	lines    *LineSet
	viewport image.Rectangle
	font     tinyfont.Fonter
	frames   uint64
}

// NewPanel builds a card for a model with edges lines drawn in a w x h
// viewport. The viewport is left-aligned and vertically centred on the card,
// then shifted by style's offset; see [Place].
func NewPanel(edges, w, h int, style Style, opts PanelOptions) *Panel {
	layout := Place(w, h, style, opts)
	opts.Width, opts.Height = layout.Card.Dx(), layout.Card.Dy()
	if opts.Radius <= 0 {
		opts.Radius = DefaultRadius
	}
	if opts.Background == (color.RGBA{}) {
		opts.Background = DefaultBackground
	}
	if opts.Border == (color.RGBA{}) {
		opts.Border = DefaultBorder
	}
	if opts.Label == "" {
		opts.Label = DefaultLabel
	}
	if opts.LabelColor == (color.RGBA{}) {
		opts.LabelColor = DefaultLabelColor
	}

	p := &Panel{
		img:      image.NewRGBA(layout.Card),
		opts:     opts,
		lines:    NewLineSet(edges, layout.LineStyle(style)),
		viewport: layout.Viewport.Intersect(layout.Card),
		font:     &tinyfont.TomThumb,
	}
	p.drawCard()
	return p
}

func (p *Panel) Size() (x, y int16) {
	b := p.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (p *Panel) SetPixel(x, y int16, c color.RGBA) {
	p.img.SetRGBA(int(x), int(y), c)
}

func (p *Panel) Display() error {
	p.frames++
	if p.opts.OnDisplay == nil {
		return nil
	}
	return p.opts.OnDisplay(p.img)
}

func (p *Panel) Image() *image.RGBA        { return p.img }
func (p *Panel) Viewport() image.Rectangle { return p.viewport }
func (p *Panel) Lines() *LineSet           { return p.lines }
func (p *Panel) Frames() uint64            { return p.frames }

// Update copies the segments into the line set, recomposes the card and
// presents it.
func (p *Panel) Update(segments []wireframe.Segment) error {
	if err := p.lines.Update(segments); err != nil {
		return err
	}
	p.drawCard()

	style := p.lines.Style()
	dst := clipped{d: p, r: p.viewport}
	// Clip to the viewport grown by the pen so far-off points never reach
	// the rasterizer.
	pen := p.viewport.Inset(-style.Width)
	for _, l := range p.lines.Lines() {
		a, b, ok := clipLine(l.From, l.To, pen)
		if !ok {
			continue
		}
		thickLine(dst, a, b, style.Width, style.Color)
	}
	return p.Display()
}

func (p *Panel) drawCard() {
	draw.Draw(p.img, p.img.Bounds(), image.Transparent, image.Point{}, draw.Src)

	outer := p.img.Bounds()
	fillRoundedRect(p, outer, p.opts.Radius, p.opts.Border)
	fillRoundedRect(p, outer.Inset(1), p.opts.Radius-1, p.opts.Background)

	// TomThumb glyphs are 6px tall above the baseline.
	tinyfont.WriteLine(p, p.font, int16(p.opts.Radius), int16(p.opts.Radius+2), p.opts.Label, p.opts.LabelColor)
}

// WritePNG encodes the current frame.
func (p *Panel) WritePNG(w io.Writer) error {
	return png.Encode(w, p.img)
}
