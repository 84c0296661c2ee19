package display

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/san-kum/attiview/internal/attitude"
	"github.com/san-kum/attiview/internal/wireframe"
)

// ErrSegmentCount is returned when an update does not carry exactly one
// segment per line.
var ErrSegmentCount = errors.New("display: segment count does not match line set")

// Sink consumes one frame of projected segments.
type Sink interface {
	Update(segments []wireframe.Segment) error
}

// ReadoutSink is implemented by sinks that also show numeric labels.
type ReadoutSink interface {
	SetReadout(r Readout)
}

// Readout is the numeric state shown next to the wireframe.
type Readout struct {
	Attitude attitude.Attitude
	Sample   attitude.Sample
}

// Lines formats the readout the way the detail window labels it.
func (r Readout) Lines() []string {
	return []string{
		fmt.Sprintf("Roll: %+.2f°", r.Attitude.RollDeg),
		fmt.Sprintf("Pitch: %+.2f°", r.Attitude.PitchDeg),
		fmt.Sprintf("Accel X: %+.3f g", r.Sample.X),
		fmt.Sprintf("Accel Y: %+.3f g", r.Sample.Y),
		fmt.Sprintf("Accel Z: %+.3f g", r.Sample.Z),
	}
}

// Style is the look and placement shared by every line of a LineSet.
type Style struct {
	Color   color.RGBA
	Width   int
	OffsetX int
	OffsetY int
}

// RGB converts a 0xRRGGBB value to an opaque color.
func RGB(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// Line is one persistent primitive, already translated by the style offset.
type Line struct {
	From, To image.Point
}

// LineSet holds a fixed number of lines. Update rewrites them in place and
// never reallocates.
type LineSet struct {
	style   Style
	lines   []Line
	updates uint64
}

func NewLineSet(n int, style Style) *LineSet {
	if style.Width < 1 {
		style.Width = 1
	}
	return &LineSet{style: style, lines: make([]Line, n)}
}

func (l *LineSet) Style() Style    { return l.style }
func (l *LineSet) Lines() []Line   { return l.lines }
func (l *LineSet) Len() int        { return len(l.lines) }
func (l *LineSet) Updates() uint64 { return l.updates }

func (l *LineSet) Update(segments []wireframe.Segment) error {
	if len(segments) != len(l.lines) {
		return fmt.Errorf("%w: got %d, want %d", ErrSegmentCount, len(segments), len(l.lines))
	}
	dx, dy := l.style.OffsetX, l.style.OffsetY
	for i, s := range segments {
		l.lines[i] = Line{
			From: image.Point{X: s.A.X + dx, Y: s.A.Y + dy},
			To:   image.Point{X: s.B.X + dx, Y: s.B.Y + dy},
		}
	}
	l.updates++
	return nil
}

// Multi fans every update out to several sinks and stops at the first error.
type Multi []Sink

func (m Multi) Update(segments []wireframe.Segment) error {
	for _, s := range m {
		if err := s.Update(segments); err != nil {
			return err
		}
	}
	return nil
}

func (m Multi) SetReadout(r Readout) {
	for _, s := range m {
		if rs, ok := s.(ReadoutSink); ok {
			rs.SetReadout(r)
		}
	}
}
