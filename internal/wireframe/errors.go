package wireframe

import (
	"errors"
	"fmt"
)

// Construction errors. All of them are fatal to initialization.
var (
	// ErrInvalidModel indicates a model with no vertices.
	ErrInvalidModel = errors.New("wireframe: invalid model (no vertices)")

	// ErrInvalidEdgeIndex indicates an edge referencing a vertex that does not exist.
	ErrInvalidEdgeIndex = errors.New("wireframe: edge references out-of-range vertex")

	// ErrDegenerateModel indicates a model with zero width or height in the fitting plane.
	ErrDegenerateModel = errors.New("wireframe: degenerate model (zero width or height)")

	// ErrInvalidViewport indicates non-positive viewport dimensions.
	ErrInvalidViewport = errors.New("wireframe: viewport dimensions must be positive")
)

// ModelError wraps a construction error with the offending model data.
type ModelError struct {
	Model   string
	Edge    int
	Index   int
	Wrapped error
}

func (e *ModelError) Error() string {
	if errors.Is(e.Wrapped, ErrInvalidEdgeIndex) {
		return fmt.Sprintf("%s: model %q edge %d index %d", e.Wrapped, e.Model, e.Edge, e.Index)
	}
	return fmt.Sprintf("%s: model %q", e.Wrapped, e.Model)
}

func (e *ModelError) Unwrap() error {
	return e.Wrapped
}
