package attitude

import "time"

// DefaultInterval is the minimum spacing between accepted update ticks.
const DefaultInterval = 100 * time.Millisecond

// Throttle admits a tick only when at least Interval has elapsed on a
// monotonic millisecond clock since the last admitted tick. The first tick
// is always admitted.
type Throttle struct {
	interval uint64
	last     uint64
	primed   bool
}

func NewThrottle(interval time.Duration) *Throttle {
	if interval < 0 {
		interval = 0
	}
	return &Throttle{interval: uint64(interval / time.Millisecond)}
}

// Allow reports whether a tick at nowMs should run and records it if so.
func (t *Throttle) Allow(nowMs uint64) bool {
	if t.primed && nowMs-t.last < t.interval {
		return false
	}
	t.last = nowMs
	t.primed = true
	return true
}

// Mark records a tick at nowMs that was admitted by some other gate.
func (t *Throttle) Mark(nowMs uint64) {
	t.last = nowMs
	t.primed = true
}

func (t *Throttle) Reset() { t.primed = false }

// Clock yields monotonic milliseconds since it was created.
type Clock struct {
	start time.Time
}

func NewClock() *Clock { return &Clock{start: time.Now()} }

func (c *Clock) Millis() uint64 {
	return uint64(time.Since(c.start) / time.Millisecond)
}
