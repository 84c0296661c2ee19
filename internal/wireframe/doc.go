// Package wireframe projects a constant 3D line model into 2D pixel space.
//
// The package is the geometry core of the attitude indicator:
//
//   - [Model]: immutable vertex and edge tables, validated once
//   - [ComputeBounds]: axis-aligned bounding box of the vertices
//   - [Fit]: one-time mapping of model space onto a pixel viewport
//   - [Projector]: per-tick rotation and perspective projection
//
// # Example
//
//	m, _ := wireframe.Lookup("ship")
//	p, _ := wireframe.NewProjector(m, 170, 96)
//	segs := p.Project(rollDeg, pitchDeg)
//
// # Thread Safety
//
// Models and fit parameters are read-only and may be shared. A Projector
// owns its vertex and segment buffers and is NOT safe for concurrent use;
// the slice returned by Project is overwritten by the next call.
package wireframe
