package wireframe

// NewCube returns an axis-aligned cube of the given edge length centered on
// the origin.
func NewCube(size float64) (*Model, error) {
	s := size / 2
	v := []Vec3{{-s, -s, -s}, {s, -s, -s}, {s, s, -s}, {-s, s, -s}, {-s, -s, s}, {s, -s, s}, {s, s, s}, {-s, s, s}}
	e := []Edge{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {4, 5}, {5, 6}, {6, 7}, {7, 4}, {0, 4}, {1, 5}, {2, 6}, {3, 7}}
	return NewModel("cube", v, e)
}

// NewAxes returns a body-frame gizmo: three axis arms of length l from the
// origin plus a short tick on the +Y arm so up is distinguishable from down.
func NewAxes(l float64) (*Model, error) {
	t := l * 0.2
	v := []Vec3{{0, 0, 0}, {l, 0, 0}, {0, l, 0}, {0, 0, l}, {t, l - t, 0}, {-t, l - t, 0}}
	e := []Edge{{0, 1}, {0, 2}, {0, 3}, {2, 4}, {2, 5}}
	return NewModel("axes", v, e)
}
