package wireframe

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ComputeBounds", func() {
	It("fails on an empty vertex set", func() {
		_, err := ComputeBounds(nil)
		Expect(err).To(MatchError(ErrInvalidModel))
	})

	It("matches the reference hull extents", func() {
		b, err := ComputeBounds(shipVertices[:])
		Expect(err).NotTo(HaveOccurred())
		Expect(b).To(Equal(Bounds{
			MinX: -3.457423, MaxX: 3.457423,
			MinY: -0.942804, MaxY: 0.986010,
			MinZ: -1.000000, MaxZ: 5.383713,
		}))
	})

	It("is invariant under vertex permutation", func() {
		want, err := ComputeBounds(shipVertices[:])
		Expect(err).NotTo(HaveOccurred())

		rng := rand.New(rand.NewSource(7))
		for i := 0; i < 20; i++ {
			shuffled := append([]Vec3(nil), shipVertices[:]...)
			rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
			got, err := ComputeBounds(shuffled)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		}
	})

	It("collapses a shared coordinate to min == max", func() {
		b, err := ComputeBounds([]Vec3{{0, 2, 1}, {3, 2, -1}, {-1, 2, 0}})
		Expect(err).NotTo(HaveOccurred())
		Expect(b.MinY).To(Equal(2.0))
		Expect(b.MaxY).To(Equal(2.0))
		Expect(b.Size()).To(Equal(Vec3{X: 4, Y: 0, Z: 2}))
	})

	It("handles a single vertex", func() {
		b, err := ComputeBounds([]Vec3{{1, 2, 3}})
		Expect(err).NotTo(HaveOccurred())
		Expect(b.Center()).To(Equal(Vec3{1, 2, 3}))
	})
})
