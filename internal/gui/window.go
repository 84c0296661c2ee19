package gui

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/attiview/internal/attitude"
	"github.com/san-kum/attiview/internal/display"
	"github.com/san-kum/attiview/internal/indicator"
	"github.com/san-kum/attiview/internal/wireframe"
)

var (
	ColBg      = rl.NewColor(4, 10, 14, 255)
	ColText    = rl.NewColor(200, 230, 210, 255)
	ColTextDim = rl.NewColor(90, 120, 100, 255)
	ColChart   = rl.NewColor(79, 216, 196, 255)
)

const (
	margin       = 24
	readoutWidth = 220
	chartHeight  = 60
	telemetryCap = 240
)

// Window is the detail view: a raylib window that doubles as a display
// sink. Segments and readouts are copied on update and drawn on the next
// frame.
type Window struct {
	lines     *display.LineSet
	card      display.PanelOptions
	layout    display.Layout
	readout   display.Readout
	telemetry []float64
	running   bool
}

func NewWindow(edges, w, h int, style display.Style, card display.PanelOptions) *Window {
	if card.Background == (color.RGBA{}) {
		card.Background = display.DefaultBackground
	}
	if card.Border == (color.RGBA{}) {
		card.Border = display.DefaultBorder
	}
	if card.Label == "" {
		card.Label = display.DefaultLabel
	}
	// The window keeps its own margin around the card.
	layout := display.Place(w, h, style, card).Add(image.Pt(margin, margin))
	return &Window{
		lines:     display.NewLineSet(edges, layout.LineStyle(style)),
		card:      card,
		layout:    layout,
		telemetry: make([]float64, 0, telemetryCap),
		running:   true,
	}
}

func (win *Window) Update(segments []wireframe.Segment) error {
	return win.lines.Update(segments)
}

func (win *Window) SetReadout(r display.Readout) {
	win.readout = r
	if len(win.telemetry) == telemetryCap {
		copy(win.telemetry, win.telemetry[1:])
		win.telemetry = win.telemetry[:telemetryCap-1]
	}
	win.telemetry = append(win.telemetry, r.Attitude.RollDeg)
}

func (win *Window) size() (int32, int32) {
	c := win.layout.Card
	return int32(c.Max.X + margin + readoutWidth), int32(c.Max.Y + margin + chartHeight + margin)
}

// Run opens the window and drives ind from the render loop until the
// window is closed. Space pauses sampling, R clears the chart.
func Run(ind *indicator.Indicator, win *Window, title string) error {
	w, h := win.size()
	rl.InitWindow(w, h, title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	clock := attitude.NewClock()
	for !rl.WindowShouldClose() {
		switch {
		case rl.IsKeyPressed(rl.KeySpace):
			win.running = !win.running
		case rl.IsKeyPressed(rl.KeyR):
			win.telemetry = win.telemetry[:0]
		}
		if win.running {
			if _, err := ind.Tick(clock.Millis()); err != nil {
				return err
			}
		}
		win.draw(w, h)
	}
	slog.Info("window closed", "ticks", ind.Ticks())
	return nil
}

func (win *Window) draw(w, h int32) {
	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(ColBg)

	s := win.lines.Style()
	card := win.layout.Card
	cardW, cardH := card.Dx(), card.Dy()
	outer := rl.NewRectangle(margin, margin, float32(cardW), float32(cardH))
	inner := rl.NewRectangle(margin+1, margin+1, float32(cardW-2), float32(cardH-2))
	rl.DrawRectangleRounded(outer, 0.1, 8, win.card.Border)
	rl.DrawRectangleRounded(inner, 0.1, 8, win.card.Background)
	rl.DrawText(win.card.Label, margin+10, margin+6, 10, ColTextDim)

	vp := win.layout.Viewport.Intersect(card)
	rl.BeginScissorMode(int32(vp.Min.X), int32(vp.Min.Y), int32(vp.Dx()), int32(vp.Dy()))
	for _, l := range win.lines.Lines() {
		rl.DrawLineEx(
			rl.NewVector2(float32(l.From.X), float32(l.From.Y)),
			rl.NewVector2(float32(l.To.X), float32(l.To.Y)),
			float32(s.Width), s.Color,
		)
	}
	rl.EndScissorMode()

	x := int32(margin + cardW + margin)
	for i, line := range win.readout.Lines() {
		rl.DrawText(line, x, int32(margin+i*22), 18, ColText)
	}
	status := "LIVE"
	if !win.running {
		status = "PAUSED"
	}
	rl.DrawText(status, x, int32(margin+cardH-14), 14, ColTextDim)

	win.drawTelemetry(margin, h-margin-chartHeight, w-2*margin, chartHeight)
	rl.DrawText(fmt.Sprintf("%d FPS  [SPACE] PAUSE  [R] RESET  [ESC] QUIT", rl.GetFPS()), margin, h-margin+4, 12, ColTextDim)
}

func (win *Window) drawTelemetry(x, y, width, height int32) {
	if len(win.telemetry) < 2 {
		return
	}
	lo, hi := win.telemetry[0], win.telemetry[0]
	for _, v := range win.telemetry {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	if hi == lo {
		hi = lo + 1
	}

	points := make([]rl.Vector2, len(win.telemetry))
	for i, v := range win.telemetry {
		px := float32(x) + float32(i)/float32(telemetryCap-1)*float32(width)
		py := float32(y+height) - float32((v-lo)/(hi-lo))*float32(height)
		points[i] = rl.NewVector2(px, py)
	}
	rl.DrawLineStrip(points, ColChart)
	rl.DrawText(fmt.Sprintf("roll %+.1f°", win.telemetry[len(win.telemetry)-1]), x+width-90, y-14, 12, ColTextDim)
}
