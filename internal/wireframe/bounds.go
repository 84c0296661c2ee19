package wireframe

import "math"

// Bounds is the axis-aligned bounding box of a vertex set.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
	MinZ, MaxZ float64
}

// ComputeBounds scans the vertices once. The result does not depend on
// vertex order.
func ComputeBounds(vertices []Vec3) (Bounds, error) {
	if len(vertices) == 0 {
		return Bounds{}, ErrInvalidModel
	}
	first := vertices[0]
	b := Bounds{
		MinX: first.X, MaxX: first.X,
		MinY: first.Y, MaxY: first.Y,
		MinZ: first.Z, MaxZ: first.Z,
	}
	for _, v := range vertices[1:] {
		b.MinX = math.Min(b.MinX, v.X)
		b.MaxX = math.Max(b.MaxX, v.X)
		b.MinY = math.Min(b.MinY, v.Y)
		b.MaxY = math.Max(b.MaxY, v.Y)
		b.MinZ = math.Min(b.MinZ, v.Z)
		b.MaxZ = math.Max(b.MaxZ, v.Z)
	}
	return b, nil
}

// Center returns the per-axis midpoint.
func (b Bounds) Center() Vec3 {
	return Vec3{
		X: (b.MinX + b.MaxX) * 0.5,
		Y: (b.MinY + b.MaxY) * 0.5,
		Z: (b.MinZ + b.MaxZ) * 0.5,
	}
}

// Size returns the extent along each axis.
func (b Bounds) Size() Vec3 {
	return Vec3{X: b.MaxX - b.MinX, Y: b.MaxY - b.MinY, Z: b.MaxZ - b.MinZ}
}
