// Package attitude turns raw accelerometer samples into roll and pitch.
//
//   - [Sample]: one 3-axis acceleration reading in g
//   - [Derive]: accelerometer-only tilt sensing
//   - [Source]: anything that yields samples on demand
//   - [Throttle]: monotonic millisecond gate for the update tick
//
// No filtering or smoothing is applied; every tick uses the instantaneous
// angle.
package attitude
