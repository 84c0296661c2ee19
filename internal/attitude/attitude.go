package attitude

import "math"

// RadToDeg converts radians to degrees.
const RadToDeg = 180 / math.Pi

// Sample is one accelerometer reading in g.
type Sample struct {
	X float64 `json:"accel_x"`
	Y float64 `json:"accel_y"`
	Z float64 `json:"accel_z"`
}

// Attitude is the instantaneous tilt in degrees.
type Attitude struct {
	RollDeg  float64 `json:"roll_deg"`
	PitchDeg float64 `json:"pitch_deg"`
}

// Derive computes roll and pitch from the gravity vector alone:
//
//	roll  = atan2(y, z)
//	pitch = atan2(-x, sqrt(y² + z²))
//
// A zero vector (free fall) resolves to a finite angle through atan2's
// conventions rather than an error.
func Derive(s Sample) Attitude {
	return Attitude{
		RollDeg:  math.Atan2(s.Y, s.Z) * RadToDeg,
		PitchDeg: math.Atan2(-s.X, math.Sqrt(s.Y*s.Y+s.Z*s.Z)) * RadToDeg,
	}
}

// FromAttitude returns the 1 g gravity vector a level-mounted sensor reads
// at the given attitude. Derive(FromAttitude(a)) recovers a for roll in
// (-180, 180] and pitch in [-90, 90].
func FromAttitude(a Attitude) Sample {
	r := a.RollDeg / RadToDeg
	p := a.PitchDeg / RadToDeg
	return Sample{
		X: -math.Sin(p),
		Y: math.Sin(r) * math.Cos(p),
		Z: math.Cos(r) * math.Cos(p),
	}
}

// Magnitude returns the norm of the sample in g.
func (s Sample) Magnitude() float64 {
	return math.Sqrt(s.X*s.X + s.Y*s.Y + s.Z*s.Z)
}
