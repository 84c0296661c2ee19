package wireframe

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Fit", func() {
	var ship Bounds

	BeforeEach(func() {
		var err error
		ship, err = ComputeBounds(shipVertices[:])
		Expect(err).NotTo(HaveOccurred())
	})

	It("fits the reference hull to the 170x96 panel", func() {
		fit, err := Fit(ship, 170, 96)
		Expect(err).NotTo(HaveOccurred())

		modelW := ship.MaxX - ship.MinX
		modelH := ship.MaxY - ship.MinY
		modelZ := ship.MaxZ - ship.MinZ
		Expect(fit.Scale).To(Equal(0.82 * math.Min(170/modelW, 96/modelH)))
		Expect(fit.Depth).To(Equal(2 * modelZ))
		Expect(fit.OriginX).To(Equal(85.0))
		Expect(fit.OriginY).To(Equal(48.0))
		Expect(fit.Center).To(Equal(ship.Center()))
	})

	It("is deterministic", func() {
		a, err := Fit(ship, 360, 220)
		Expect(err).NotTo(HaveOccurred())
		b, err := Fit(ship, 360, 220)
		Expect(err).NotTo(HaveOccurred())
		Expect(a).To(Equal(b))
	})

	It("keeps scale and depth positive", func() {
		fit, err := Fit(ship, 1, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(fit.Scale).To(BeNumerically(">", 0))
		Expect(fit.Depth).To(BeNumerically(">", 0))
	})

	It("falls back to unit depth for models flat in Z", func() {
		flat, err := ComputeBounds([]Vec3{{0, 0, 0}, {2, 1, 0}})
		Expect(err).NotTo(HaveOccurred())
		fit, err := Fit(flat, 100, 100)
		Expect(err).NotTo(HaveOccurred())
		Expect(fit.Depth).To(Equal(MinDepth))
	})

	DescribeTable("rejects collapsed silhouettes",
		func(vertices []Vec3) {
			b, err := ComputeBounds(vertices)
			Expect(err).NotTo(HaveOccurred())
			_, err = Fit(b, 170, 96)
			Expect(err).To(MatchError(ErrDegenerateModel))
		},
		Entry("flat in x", []Vec3{{1, 0, 0}, {1, 2, 3}}),
		Entry("flat in y", []Vec3{{0, 1, 0}, {2, 1, 3}}),
		Entry("single point", []Vec3{{1, 1, 1}}),
	)

	DescribeTable("rejects non-positive viewports",
		func(w, h float64) {
			_, err := Fit(ship, w, h)
			Expect(err).To(MatchError(ErrInvalidViewport))
		},
		Entry("zero width", 0.0, 96.0),
		Entry("zero height", 170.0, 0.0),
		Entry("negative", -1.0, -1.0),
		Entry("NaN", math.NaN(), 96.0),
	)

	It("checks the viewport before the model", func() {
		b, err := ComputeBounds([]Vec3{{1, 1, 1}})
		Expect(err).NotTo(HaveOccurred())
		_, err = Fit(b, 0, 0)
		Expect(err).To(MatchError(ErrInvalidViewport))
	})
})
