package indicator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/san-kum/attiview/internal/attitude"
	"github.com/san-kum/attiview/internal/display"
	"github.com/san-kum/attiview/internal/wireframe"
)

var ErrNotConfigured = errors.New("indicator: source, projector and sink are required")

// Frame is the result of one accepted tick. Segments aliases the
// projector's buffer and is only valid until the next tick.
type Frame struct {
	Tick     uint64
	TMs      uint64
	Sample   attitude.Sample
	Attitude attitude.Attitude
	Segments []wireframe.Segment
}

type Observer interface {
	Observe(f Frame)
}

type ObserverFunc func(f Frame)

func (fn ObserverFunc) Observe(f Frame) { fn(f) }

type Option func(*Indicator)

func WithInterval(d time.Duration) Option {
	return func(i *Indicator) {
		i.interval = d
		i.throttle = attitude.NewThrottle(d)
	}
}

func WithObserver(o Observer) Option {
	return func(i *Indicator) { i.observers = append(i.observers, o) }
}

func WithLogger(l *slog.Logger) Option {
	return func(i *Indicator) { i.logger = l }
}

// WithClock replaces the monotonic clock Run reads timestamps from.
func WithClock(now func() uint64) Option {
	return func(i *Indicator) { i.now = now }
}

type Indicator struct {
	source    attitude.Source
	projector *wireframe.Projector
	sink      display.Sink
	readout   display.ReadoutSink

	interval  time.Duration
	throttle  *attitude.Throttle
	observers []Observer
	logger    *slog.Logger
	now       func() uint64

	ticks uint64
	last  Frame
}

func New(src attitude.Source, proj *wireframe.Projector, sink display.Sink, opts ...Option) (*Indicator, error) {
	if src == nil || proj == nil || sink == nil {
		return nil, ErrNotConfigured
	}
	i := &Indicator{
		source:    src,
		projector: proj,
		sink:      sink,
		interval:  attitude.DefaultInterval,
		throttle:  attitude.NewThrottle(attitude.DefaultInterval),
		logger:    slog.Default(),
	}
	i.readout, _ = sink.(display.ReadoutSink)
	for _, opt := range opts {
		opt(i)
	}
	if i.now == nil {
		i.now = attitude.NewClock().Millis
	}
	i.logger = i.logger.With("component", "indicator", "model", proj.Model().Name())
	return i, nil
}

func (i *Indicator) Interval() time.Duration         { return i.interval }
func (i *Indicator) Ticks() uint64                   { return i.ticks }
func (i *Indicator) Projector() *wireframe.Projector { return i.projector }

// Last returns the most recent accepted frame. Its segments are only valid
// until the next tick.
func (i *Indicator) Last() Frame { return i.last }

// Tick runs one iteration at host time nowMs. It reports whether the tick
// was accepted.
func (i *Indicator) Tick(nowMs uint64) (bool, error) {
	if !i.throttle.Allow(nowMs) {
		return false, nil
	}
	if err := i.accept(nowMs); err != nil {
		return false, err
	}
	return true, nil
}

// accept reads, derives, projects and publishes one frame. Nothing is
// published and no state changes unless the sink takes the update.
func (i *Indicator) accept(nowMs uint64) error {
	n := i.ticks + 1

	s, err := i.source.Read()
	if err != nil {
		return fmt.Errorf("tick %d: read sample: %w", n, err)
	}
	a := attitude.Derive(s)
	segs := i.projector.Project(a.RollDeg, a.PitchDeg)

	if err := i.sink.Update(segs); err != nil {
		return fmt.Errorf("tick %d: update sink: %w", n, err)
	}
	if i.readout != nil {
		i.readout.SetReadout(display.Readout{Attitude: a, Sample: s})
	}

	i.ticks = n
	i.last = Frame{Tick: n, TMs: nowMs, Sample: s, Attitude: a, Segments: segs}
	for _, o := range i.observers {
		o.Observe(i.last)
	}
	i.logger.Debug("tick", "n", n, "t_ms", nowMs, "roll", a.RollDeg, "pitch", a.PitchDeg)
	return nil
}

// Step drives n accepted ticks on a simulated clock spaced one interval
// apart, continuing from the last accepted timestamp. It stops early when
// the source is exhausted and returns the number of ticks accepted.
func (i *Indicator) Step(n int) (int, error) {
	step := uint64(i.interval.Milliseconds())
	t := uint64(0)
	if i.ticks > 0 {
		t = i.last.TMs + step
	}
	accepted := 0
	for accepted < n {
		ok, err := i.Tick(t)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return accepted, nil
			}
			return accepted, err
		}
		if ok {
			accepted++
		}
		t += step
	}
	return accepted, nil
}

// Run ticks on a wall-clock ticker until ctx is cancelled or the source
// is exhausted. Both end the loop without error.
//
// The ticker is the rate gate here. Each delivery is accepted and marked
// on the throttle, since truncating wall time to whole milliseconds makes
// a delivery that lands a fraction early read as interval-1.
func (i *Indicator) Run(ctx context.Context) error {
	period := i.interval
	if period <= 0 {
		period = time.Millisecond
	}
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	i.logger.Info("running", "interval", i.interval)
	for {
		if ctx.Err() != nil {
			i.logger.Info("stopped", "ticks", i.ticks)
			return nil
		}
		now := i.now()
		i.throttle.Mark(now)
		if err := i.accept(now); err != nil {
			if errors.Is(err, io.EOF) {
				i.logger.Info("source exhausted", "ticks", i.ticks)
				return nil
			}
			i.logger.Error("tick failed", "err", err)
			return err
		}
		select {
		case <-ctx.Done():
		case <-ticker.C:
		}
	}
}
