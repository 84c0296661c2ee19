// Package indicator wires an attitude source, a projector and a display
// sink into the tick loop of the attitude card.
//
// Every accepted tick reads one sample, derives roll and pitch, projects
// the model and pushes the segments to the sink. Ticks arriving sooner
// than the configured interval after the last accepted one are dropped
// without touching the source.
//
// # Thread Safety
//
// An Indicator is driven from a single goroutine. Observers run
// synchronously inside Tick and must not retain Frame.Segments.
package indicator
