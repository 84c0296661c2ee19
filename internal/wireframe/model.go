package wireframe

import (
	"fmt"
	"sort"
)

// Vec3 is a point in model space.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Edge joins two vertices by index.
type Edge struct {
	A, B uint16
}

// Model is a validated, read-only wireframe.
type Model struct {
	name     string
	vertices []Vec3
	edges    []Edge
}

// NewModel validates the tables once so that projection never has to
// bounds-check edge indices. The slices are retained, not copied.
func NewModel(name string, vertices []Vec3, edges []Edge) (*Model, error) {
	if len(vertices) == 0 {
		return nil, &ModelError{Model: name, Wrapped: ErrInvalidModel}
	}
	n := len(vertices)
	for i, e := range edges {
		if int(e.A) >= n {
			return nil, &ModelError{Model: name, Edge: i, Index: int(e.A), Wrapped: ErrInvalidEdgeIndex}
		}
		if int(e.B) >= n {
			return nil, &ModelError{Model: name, Edge: i, Index: int(e.B), Wrapped: ErrInvalidEdgeIndex}
		}
	}
	return &Model{name: name, vertices: vertices, edges: edges}, nil
}

func (m *Model) Name() string     { return m.name }
func (m *Model) Vertices() []Vec3 { return m.vertices }
func (m *Model) Edges() []Edge    { return m.edges }
func (m *Model) VertexCount() int { return len(m.vertices) }
func (m *Model) EdgeCount() int   { return len(m.edges) }

var builtins = map[string]func() (*Model, error){
	"ship": func() (*Model, error) { return NewModel("ship", shipVertices[:], shipEdges[:]) },
	"cube": func() (*Model, error) { return NewCube(2) },
	"axes": func() (*Model, error) { return NewAxes(1) },
}

// Lookup returns a built-in model by name.
func Lookup(name string) (*Model, error) {
	build, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown model: %s (available: %v)", name, ModelNames())
	}
	return build()
}

// MustLookup is Lookup for package-level initialization of known-good names.
func MustLookup(name string) *Model {
	m, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return m
}

// ModelNames lists the built-in models in sorted order.
func ModelNames() []string {
	names := make([]string, 0, len(builtins))
	for k := range builtins {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
