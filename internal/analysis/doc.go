// Package analysis characterizes recorded attitude series.
//
//   - [Spectrum]: single-sided magnitude spectrum of a uniformly sampled series
//   - [DominantFrequency]: strongest non-DC component
//   - [Summarize]: min, max, mean and RMS
//
// A host that wobbles at a steady rate shows up as one clear peak:
//
//	roll, _ := storage.Series(records)
//	peak, err := analysis.DominantFrequency(roll, 10)
package analysis
