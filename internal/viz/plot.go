package viz

import "github.com/guptarohit/asciigraph"

// PlotAttitude charts roll and pitch on shared axes. It returns an empty
// string for fewer than two points.
func PlotAttitude(roll, pitch []float64, width, height int, caption string) string {
	if len(roll) < 2 || len(pitch) < 2 {
		return ""
	}
	return asciigraph.PlotMany([][]float64{roll, pitch},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.SeriesColors(asciigraph.Cyan, asciigraph.Goldenrod),
		asciigraph.Caption(caption),
	)
}
