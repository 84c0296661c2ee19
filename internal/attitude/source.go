package attitude

import (
	"errors"
	"io"
	"math"
	"math/rand"
	"time"
)

// ErrNoSamples indicates a replay source built from an empty recording.
var ErrNoSamples = errors.New("attitude: replay has no samples")

// Source is polled synchronously once per update tick.
type Source interface {
	Read() (Sample, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func() (Sample, error)

func (f SourceFunc) Read() (Sample, error) { return f() }

// Static always returns the same sample.
type Static struct {
	Sample Sample
}

func (s Static) Read() (Sample, error) { return s.Sample, nil }

// Level is a sensor resting flat, gravity along +Z.
var Level = Static{Sample: Sample{Z: 1}}

// SweepConfig describes a synthetic rocking motion.
type SweepConfig struct {
	RollAmplitude  float64       // degrees
	PitchAmplitude float64       // degrees
	Period         time.Duration // roll period; pitch runs at 0.7x the rate
	Step           time.Duration // simulated time advanced per Read
	Noise          float64       // gaussian noise per axis, in g
	Seed           int64
}

func DefaultSweepConfig() SweepConfig {
	return SweepConfig{
		RollAmplitude:  20,
		PitchAmplitude: 15,
		Period:         6 * time.Second,
		Step:           DefaultInterval,
		Noise:          0.005,
		Seed:           1,
	}
}

// Sweep synthesizes accelerometer readings for a sensor rocking through
// sinusoidal roll and pitch. Time advances by Step per Read, so output is
// reproducible for a given seed regardless of wall-clock jitter.
type Sweep struct {
	cfg SweepConfig
	rng *rand.Rand
	t   time.Duration
}

func NewSweep(cfg SweepConfig) *Sweep {
	if cfg.Period <= 0 {
		cfg.Period = DefaultSweepConfig().Period
	}
	if cfg.Step <= 0 {
		cfg.Step = DefaultInterval
	}
	return &Sweep{cfg: cfg, rng: rand.New(rand.NewSource(cfg.Seed))}
}

// Truth returns the attitude the sweep is generating at its current time.
func (s *Sweep) Truth() Attitude {
	w := 2 * math.Pi * s.t.Seconds() / s.cfg.Period.Seconds()
	return Attitude{
		RollDeg:  s.cfg.RollAmplitude * math.Sin(w),
		PitchDeg: s.cfg.PitchAmplitude * math.Cos(w*0.7),
	}
}

func (s *Sweep) Read() (Sample, error) {
	out := FromAttitude(s.Truth())
	if s.cfg.Noise > 0 {
		out.X += s.rng.NormFloat64() * s.cfg.Noise
		out.Y += s.rng.NormFloat64() * s.cfg.Noise
		out.Z += s.rng.NormFloat64() * s.cfg.Noise
	}
	s.t += s.cfg.Step
	return out, nil
}

// Replay plays back recorded samples in order.
type Replay struct {
	samples []Sample
	loop    bool
	pos     int
}

// NewReplay returns a replay source; with loop set it wraps around instead
// of returning io.EOF after the last sample.
func NewReplay(samples []Sample, loop bool) (*Replay, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	return &Replay{samples: samples, loop: loop}, nil
}

func (r *Replay) Read() (Sample, error) {
	if r.pos >= len(r.samples) {
		if !r.loop {
			return Sample{}, io.EOF
		}
		r.pos = 0
	}
	s := r.samples[r.pos]
	r.pos++
	return s, nil
}

func (r *Replay) Len() int { return len(r.samples) }
