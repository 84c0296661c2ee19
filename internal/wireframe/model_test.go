package wireframe

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Model", func() {
	It("rejects an empty vertex set", func() {
		_, err := NewModel("empty", nil, nil)
		Expect(err).To(MatchError(ErrInvalidModel))
	})

	It("rejects edges that reference missing vertices", func() {
		v := []Vec3{{0, 0, 0}, {1, 0, 0}}
		_, err := NewModel("bad", v, []Edge{{0, 1}, {1, 2}})
		Expect(err).To(MatchError(ErrInvalidEdgeIndex))

		var me *ModelError
		Expect(errors.As(err, &me)).To(BeTrue())
		Expect(me.Model).To(Equal("bad"))
		Expect(me.Edge).To(Equal(1))
		Expect(me.Index).To(Equal(2))
	})

	It("accepts duplicate edges", func() {
		v := []Vec3{{0, 0, 0}, {1, 1, 0}}
		m, err := NewModel("dup", v, []Edge{{0, 1}, {0, 1}})
		Expect(err).NotTo(HaveOccurred())
		Expect(m.EdgeCount()).To(Equal(2))
	})

	It("ships the reference hull", func() {
		m, err := Lookup("ship")
		Expect(err).NotTo(HaveOccurred())
		Expect(m.Name()).To(Equal("ship"))
		Expect(m.VertexCount()).To(Equal(120))
		Expect(m.EdgeCount()).To(Equal(238))
	})

	DescribeTable("built-in models validate",
		func(name string) {
			m, err := Lookup(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(m.VertexCount()).To(BeNumerically(">", 0))
		},
		Entry("ship", "ship"),
		Entry("cube", "cube"),
		Entry("axes", "axes"),
	)

	It("reports unknown models", func() {
		_, err := Lookup("zeppelin")
		Expect(err).To(MatchError(ContainSubstring("unknown model")))
	})

	It("lists model names sorted", func() {
		Expect(ModelNames()).To(Equal([]string{"axes", "cube", "ship"}))
	})
})
