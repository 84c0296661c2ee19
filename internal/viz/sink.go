package viz

import (
	"github.com/san-kum/attiview/internal/display"
	"github.com/san-kum/attiview/internal/wireframe"
)

// CanvasSink rasterizes segments onto a braille canvas, one dot per
// viewport pixel.
type CanvasSink struct {
	canvas  *Canvas
	lines   *display.LineSet
	readout display.Readout
}

func NewCanvasSink(edges, w, h int) *CanvasSink {
	return &CanvasSink{
		canvas: CanvasForDots(w, h),
		lines:  display.NewLineSet(edges, display.Style{Width: 1}),
	}
}

func (s *CanvasSink) Update(segments []wireframe.Segment) error {
	if err := s.lines.Update(segments); err != nil {
		return err
	}
	s.canvas.Clear()
	for _, l := range s.lines.Lines() {
		s.canvas.DrawLine(l.From.X, l.From.Y, l.To.X, l.To.Y)
	}
	return nil
}

func (s *CanvasSink) SetReadout(r display.Readout) { s.readout = r }
func (s *CanvasSink) Readout() display.Readout     { return s.readout }
func (s *CanvasSink) Canvas() *Canvas              { return s.canvas }
