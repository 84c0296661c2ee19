// Package display turns projected wireframe segments into something a host
// can show.
//
// A [Sink] receives one segment per model edge on every accepted tick. The
// slice it is handed aliases the projector's buffer and is overwritten on
// the next tick, so sinks copy what they keep. [LineSet] is the persistent
// set of line primitives most sinks build on: it is sized once for the
// model and updated in place.
//
// [Panel] is the reference sink: an RGBA framebuffer that satisfies the
// tinygo drivers.Displayer interface, draws the attitude card and renders
// the lines inside its viewport.
package display
