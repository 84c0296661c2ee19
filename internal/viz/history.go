package viz

import "github.com/san-kum/attiview/internal/indicator"

// History keeps the most recent roll, pitch and acceleration magnitude
// values for charting.
type History struct {
	capacity int
	roll     []float64
	pitch    []float64
	accel    []float64
}

func NewHistory(capacity int) *History {
	return &History{
		capacity: capacity,
		roll:     make([]float64, 0, capacity),
		pitch:    make([]float64, 0, capacity),
		accel:    make([]float64, 0, capacity),
	}
}

func (h *History) Observe(f indicator.Frame) {
	h.roll = push(h.roll, f.Attitude.RollDeg, h.capacity)
	h.pitch = push(h.pitch, f.Attitude.PitchDeg, h.capacity)
	h.accel = push(h.accel, f.Sample.Magnitude(), h.capacity)
}

func push(s []float64, v float64, capacity int) []float64 {
	if len(s) == capacity && capacity > 0 {
		copy(s, s[1:])
		s[len(s)-1] = v
		return s
	}
	return append(s, v)
}

func (h *History) Roll() []float64  { return h.roll }
func (h *History) Pitch() []float64 { return h.pitch }
func (h *History) Accel() []float64 { return h.accel }
func (h *History) Len() int         { return len(h.roll) }

func (h *History) Reset() {
	h.roll = h.roll[:0]
	h.pitch = h.pitch[:0]
	h.accel = h.accel[:0]
}
