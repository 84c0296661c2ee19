package wireframe

import (
	"errors"
	"fmt"
	"math"
)

const (
	// radToDeg matches the constant the reference hull was tuned against.
	radToDeg = 57.2957795

	// perspectiveBias pushes the camera back by a fraction of the depth so
	// near vertices never approach the divide.
	perspectiveBias = 0.15
)

// Point is a projected vertex in integer pixels.
type Point struct {
	X, Y int
}

// Segment is one projected edge.
type Segment struct {
	A, B Point
}

// AxisMapping selects which input angle drives which rotation stage.
type AxisMapping int

const (
	// MapModelFrame feeds roll to the X-axis stage and pitch to the Z-axis
	// stage. The reference hull is authored in a frame where this swap
	// produces the expected on-screen motion.
	MapModelFrame AxisMapping = iota

	// MapLiteral feeds pitch to the X-axis stage and roll to the Z-axis stage.
	MapLiteral
)

func (m AxisMapping) String() string {
	switch m {
	case MapLiteral:
		return "literal"
	default:
		return "model_frame"
	}
}

// ParseAxisMapping accepts the names produced by AxisMapping.String.
func ParseAxisMapping(s string) (AxisMapping, error) {
	switch s {
	case "", "model_frame":
		return MapModelFrame, nil
	case "literal":
		return MapLiteral, nil
	}
	return 0, fmt.Errorf("unknown axis mapping: %s", s)
}

// Mode selects the projection pipeline.
type Mode int

const (
	// ModePerspective rotates in 3D and applies the perspective divide.
	ModePerspective Mode = iota

	// ModeAffine is the cheap fallback: a screen-plane rotation plus a
	// vertical foreshortening, no depth.
	ModeAffine
)

func (m Mode) String() string {
	switch m {
	case ModeAffine:
		return "affine"
	default:
		return "perspective"
	}
}

// ParseMode accepts the names produced by Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "perspective":
		return ModePerspective, nil
	case "affine":
		return ModeAffine, nil
	}
	return 0, fmt.Errorf("unknown projection mode: %s", s)
}

// Option configures a Projector.
type Option func(*Projector)

func WithAxisMapping(m AxisMapping) Option { return func(p *Projector) { p.mapping = m } }
func WithMode(m Mode) Option               { return func(p *Projector) { p.mode = m } }

// Projector re-projects one model into one viewport. Bounds and fit are
// fixed at construction; the point and segment buffers are sized once and
// overwritten by every Project call.
type Projector struct {
	model   *Model
	bounds  Bounds
	fit     FitParams
	width   int
	height  int
	mapping AxisMapping
	mode    Mode

	points   []Point
	segments []Segment
}

// NewProjector fits m to a width x height viewport.
func NewProjector(m *Model, width, height int, opts ...Option) (*Projector, error) {
	if m == nil {
		return nil, ErrInvalidModel
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidViewport, width, height)
	}
	b, err := ComputeBounds(m.vertices)
	if err != nil {
		return nil, &ModelError{Model: m.name, Wrapped: err}
	}
	fit, err := Fit(b, float64(width), float64(height))
	if err != nil {
		if errors.Is(err, ErrDegenerateModel) {
			return nil, &ModelError{Model: m.name, Wrapped: err}
		}
		return nil, err
	}

	p := &Projector{
		model:    m,
		bounds:   b,
		fit:      fit,
		width:    width,
		height:   height,
		points:   make([]Point, len(m.vertices)),
		segments: make([]Segment, len(m.edges)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

func (p *Projector) Model() *Model        { return p.model }
func (p *Projector) Bounds() Bounds       { return p.bounds }
func (p *Projector) Fit() FitParams       { return p.fit }
func (p *Projector) Size() (int, int)     { return p.width, p.height }
func (p *Projector) Mapping() AxisMapping { return p.mapping }
func (p *Projector) Mode() Mode           { return p.mode }

// Points returns the projected vertex buffer from the last Project call.
func (p *Projector) Points() []Point { return p.points }

// Segments returns the segment buffer from the last Project call.
func (p *Projector) Segments() []Segment { return p.segments }

type rotation struct {
	cosX, sinX float64
	cosZ, sinZ float64
}

func (p *Projector) rotation(rollDeg, pitchDeg float64) rotation {
	xDeg, zDeg := rollDeg, pitchDeg
	if p.mapping == MapLiteral {
		xDeg, zDeg = pitchDeg, rollDeg
	}
	xRad := xDeg / radToDeg
	zRad := zDeg / radToDeg
	return rotation{
		cosX: math.Cos(xRad), sinX: math.Sin(xRad),
		cosZ: math.Cos(zRad), sinZ: math.Sin(zRad),
	}
}

// Project rotates every vertex by the attitude, projects it, and rebuilds
// one segment per edge. The returned slice aliases the internal buffer.
func (p *Projector) Project(rollDeg, pitchDeg float64) []Segment {
	r := p.rotation(rollDeg, pitchDeg)
	for i, v := range p.model.vertices {
		p.points[i] = p.project(v, r)
	}
	for i, e := range p.model.edges {
		p.segments[i] = Segment{A: p.points[e.A], B: p.points[e.B]}
	}
	return p.segments
}

// ProjectPoint runs a single model-space point through the same pipeline
// without touching the buffers.
func (p *Projector) ProjectPoint(v Vec3, rollDeg, pitchDeg float64) Point {
	return p.project(v, p.rotation(rollDeg, pitchDeg))
}

func (p *Projector) project(v Vec3, r rotation) Point {
	c := v.Sub(p.fit.Center)
	f := p.fit

	if p.mode == ModeAffine {
		x2 := c.X*r.cosZ - c.Y*r.sinZ
		y2 := (c.X*r.sinZ + c.Y*r.cosZ) * r.cosX
		return Point{
			X: int(f.OriginX + x2*f.Scale),
			Y: int(f.OriginY - y2*f.Scale),
		}
	}

	// X axis first (Y-Z plane), then Z axis (X-Y plane).
	y1 := c.Y*r.cosX - c.Z*r.sinX
	z1 := c.Y*r.sinX + c.Z*r.cosX
	x1 := c.X

	x2 := x1*r.cosZ - y1*r.sinZ
	y2 := x1*r.sinZ + y1*r.cosZ
	z2 := z1

	perspective := f.Depth / (f.Depth + z2 + f.Depth*perspectiveBias)
	return Point{
		X: int(f.OriginX + x2*f.Scale*perspective),
		Y: int(f.OriginY - y2*f.Scale*perspective),
	}
}
