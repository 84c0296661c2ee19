package wireframe

import (
	"math"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// rotateZThenX composes the two stages in the opposite order to the
// projector.
func rotateZThenX(p *Projector, v Vec3, xDeg, zDeg float64) Point {
	c := v.Sub(p.fit.Center)
	xr, zr := xDeg/radToDeg, zDeg/radToDeg

	x1 := c.X*math.Cos(zr) - c.Y*math.Sin(zr)
	y1 := c.X*math.Sin(zr) + c.Y*math.Cos(zr)
	z1 := c.Z

	y2 := y1*math.Cos(xr) - z1*math.Sin(xr)
	z2 := y1*math.Sin(xr) + z1*math.Cos(xr)

	f := p.fit
	persp := f.Depth / (f.Depth + z2 + f.Depth*perspectiveBias)
	return Point{X: int(f.OriginX + x1*f.Scale*persp), Y: int(f.OriginY - y2*f.Scale*persp)}
}

var _ = Describe("Projector", func() {
	var (
		ship *Model
		p    *Projector
	)

	BeforeEach(func() {
		ship = MustLookup("ship")
		var err error
		p, err = NewProjector(ship, 170, 96)
		Expect(err).NotTo(HaveOccurred())
	})

	It("sizes its buffers to the model", func() {
		Expect(p.Points()).To(HaveLen(ship.VertexCount()))
		Expect(p.Segments()).To(HaveLen(ship.EdgeCount()))
		w, h := p.Size()
		Expect(w).To(Equal(170))
		Expect(h).To(Equal(96))
	})

	It("rejects bad viewports", func() {
		_, err := NewProjector(ship, 0, 96)
		Expect(err).To(MatchError(ErrInvalidViewport))
		_, err = NewProjector(ship, 170, -4)
		Expect(err).To(MatchError(ErrInvalidViewport))
	})

	It("rejects degenerate models with the model name attached", func() {
		m, err := NewModel("line", []Vec3{{0, 0, 0}, {0, 1, 0}}, []Edge{{0, 1}})
		Expect(err).NotTo(HaveOccurred())
		_, err = NewProjector(m, 170, 96)
		Expect(err).To(MatchError(ErrDegenerateModel))
		Expect(err.Error()).To(ContainSubstring(`"line"`))
	})

	It("maps the bounding-box center to the viewport origin when level", func() {
		pt := p.ProjectPoint(p.Bounds().Center(), 0, 0)
		Expect(math.Abs(float64(pt.X) - p.Fit().OriginX)).To(BeNumerically("<=", 1))
		Expect(math.Abs(float64(pt.Y) - p.Fit().OriginY)).To(BeNumerically("<=", 1))
	})

	It("is a pure function of the attitude", func() {
		first := append([]Segment(nil), p.Project(17.5, -42.25)...)
		p.Project(-80, 3)
		second := p.Project(17.5, -42.25)
		Expect(second).To(Equal(first))
	})

	It("reuses its buffers", func() {
		a := p.Project(5, 5)
		b := p.Project(-5, 12)
		Expect(&a[0]).To(BeIdenticalTo(&b[0]))
		Expect(testing.AllocsPerRun(50, func() { p.Project(33, -21) })).To(BeZero())
	})

	It("builds each segment from its edge's projected endpoints", func() {
		segs := p.Project(25, -10)
		pts := p.Points()
		for i, e := range ship.Edges() {
			Expect(segs[i]).To(Equal(Segment{A: pts[e.A], B: pts[e.B]}))
		}
	})

	It("agrees with ProjectPoint for every vertex", func() {
		p.Project(-12, 64)
		for i, v := range ship.Vertices() {
			Expect(p.ProjectPoint(v, -12, 64)).To(Equal(p.Points()[i]))
		}
	})

	It("rotates about X before Z", func() {
		differs := false
		p.Project(30, 30)
		for i, v := range ship.Vertices() {
			if rotateZThenX(p, v, 30, 30) != p.Points()[i] {
				differs = true
				break
			}
		}
		Expect(differs).To(BeTrue())
	})

	It("distinguishes roll from pitch", func() {
		p.Project(30, 0)
		rolled := append([]Point(nil), p.Points()...)
		p.Project(0, 30)
		Expect(p.Points()).NotTo(Equal(rolled))
	})

	It("swaps stage inputs under the literal mapping", func() {
		lit, err := NewProjector(ship, 170, 96, WithAxisMapping(MapLiteral))
		Expect(err).NotTo(HaveOccurred())
		Expect(lit.Mapping()).To(Equal(MapLiteral))

		want := append([]Segment(nil), p.Project(-7, 41)...)
		Expect(lit.Project(41, -7)).To(Equal(want))
	})

	It("dips the nose under positive roll input", func() {
		nose := Vec3{0, 0.180615, 5.383713}
		level := p.ProjectPoint(nose, 0, 0)
		tilted := p.ProjectPoint(nose, 20, 0)
		Expect(tilted.Y).To(BeNumerically(">", level.Y))
	})

	Describe("affine mode", func() {
		var a *Projector

		BeforeEach(func() {
			var err error
			a, err = NewProjector(ship, 170, 96, WithMode(ModeAffine))
			Expect(err).NotTo(HaveOccurred())
		})

		It("ignores depth", func() {
			c := a.Bounds().Center()
			near := a.ProjectPoint(Vec3{c.X + 1, c.Y + 0.5, -1}, 10, 20)
			far := a.ProjectPoint(Vec3{c.X + 1, c.Y + 0.5, 5}, 10, 20)
			Expect(near).To(Equal(far))
		})

		It("keeps the center at the origin", func() {
			pt := a.ProjectPoint(a.Bounds().Center(), 45, -30)
			Expect(pt).To(Equal(Point{X: 85, Y: 48}))
		})

		It("is deterministic", func() {
			first := append([]Segment(nil), a.Project(12, 34)...)
			Expect(a.Project(12, 34)).To(Equal(first))
		})
	})

	DescribeTable("parses option names",
		func(mode, mapping string, wantMode Mode, wantMapping AxisMapping) {
			m, err := ParseMode(mode)
			Expect(err).NotTo(HaveOccurred())
			Expect(m).To(Equal(wantMode))
			Expect(m.String()).To(Equal(wantMode.String()))
			am, err := ParseAxisMapping(mapping)
			Expect(err).NotTo(HaveOccurred())
			Expect(am).To(Equal(wantMapping))
		},
		Entry("defaults", "", "", ModePerspective, MapModelFrame),
		Entry("explicit", "perspective", "model_frame", ModePerspective, MapModelFrame),
		Entry("fallbacks", "affine", "literal", ModeAffine, MapLiteral),
	)

	It("rejects unknown option names", func() {
		_, err := ParseMode("orthographic")
		Expect(err).To(HaveOccurred())
		_, err = ParseAxisMapping("sideways")
		Expect(err).To(HaveOccurred())
	})
})
