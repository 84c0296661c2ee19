package analysis

import (
	"errors"
	"fmt"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

var ErrTooShort = errors.New("analysis: series too short")

// Bin is one frequency bin of a magnitude spectrum.
type Bin struct {
	Freq      float64
	Magnitude float64
}

// Spectrum returns bins 0..n/2 of the FFT of series, scaled so that a pure
// sine of amplitude A landing exactly on a bin reads A.
func Spectrum(series []float64, sampleRateHz float64) ([]Bin, error) {
	n := len(series)
	if n < 2 {
		return nil, fmt.Errorf("%w: %d samples", ErrTooShort, n)
	}
	if !(sampleRateHz > 0) {
		return nil, fmt.Errorf("analysis: sample rate must be positive, got %g", sampleRateHz)
	}

	coeffs := fft.FFTReal(series)
	bins := make([]Bin, n/2+1)
	for k := range bins {
		mag := cmplx.Abs(coeffs[k]) / float64(n)
		if k != 0 && !(n%2 == 0 && k == n/2) {
			mag *= 2
		}
		bins[k] = Bin{
			Freq:      float64(k) * sampleRateHz / float64(n),
			Magnitude: mag,
		}
	}
	return bins, nil
}

// DominantFrequency returns the non-DC bin with the largest magnitude.
func DominantFrequency(series []float64, sampleRateHz float64) (Bin, error) {
	bins, err := Spectrum(series, sampleRateHz)
	if err != nil {
		return Bin{}, err
	}
	best := bins[1]
	for _, b := range bins[2:] {
		if b.Magnitude > best.Magnitude {
			best = b
		}
	}
	return best, nil
}
