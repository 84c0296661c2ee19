package analysis

import "math"

type Stats struct {
	Count int
	Min   float64
	Max   float64
	Mean  float64
	RMS   float64
}

// Summarize returns the zero Stats for an empty series.
func Summarize(series []float64) Stats {
	if len(series) == 0 {
		return Stats{}
	}
	s := Stats{Count: len(series), Min: math.Inf(1), Max: math.Inf(-1)}
	var sum, sumSq float64
	for _, v := range series {
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
		sum += v
		sumSq += v * v
	}
	n := float64(len(series))
	s.Mean = sum / n
	s.RMS = math.Sqrt(sumSq / n)
	return s
}
