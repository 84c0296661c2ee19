// Package viz renders the attitude indicator in the terminal.
//
//   - [Canvas]: braille dot matrix, one dot per viewport pixel
//   - [CanvasSink]: display sink drawing onto a Canvas
//   - [Model]: Bubble Tea live view with readouts and a roll/pitch chart
//   - [PlotAttitude]: asciigraph chart of recorded history
//
// # Key Bindings
//
//	Space - Pause/Resume sampling
//	R     - Clear history
//	T     - Cycle color themes
//	?     - Show help overlay
//	Q     - Quit
package viz
