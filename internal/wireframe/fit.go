package wireframe

import (
	"fmt"
	"math"
)

const (
	// FillFactor is the share of the viewport the wider model dimension occupies.
	FillFactor = 0.82

	// MinDepth replaces the camera depth of models that are flat in Z.
	MinDepth = 1.0
)

// FitParams maps model space onto one viewport. It is computed once per
// viewport and never mutated.
type FitParams struct {
	Center  Vec3
	Scale   float64
	Depth   float64
	OriginX float64
	OriginY float64
}

// Fit computes the centering offset, uniform render scale and camera depth
// for a width x height pixel viewport.
func Fit(b Bounds, width, height float64) (FitParams, error) {
	if !(width > 0) || !(height > 0) {
		return FitParams{}, fmt.Errorf("%w: %gx%g", ErrInvalidViewport, width, height)
	}
	size := b.Size()
	if !(size.X > 0) || !(size.Y > 0) {
		return FitParams{}, fmt.Errorf("%w: %gx%g", ErrDegenerateModel, size.X, size.Y)
	}

	depth := size.Z * 2
	if depth <= 0 {
		depth = MinDepth
	}

	return FitParams{
		Center:  b.Center(),
		Scale:   FillFactor * math.Min(width/size.X, height/size.Y),
		Depth:   depth,
		OriginX: width * 0.5,
		OriginY: height * 0.5,
	}, nil
}
