package core

import "time"

// MaxFrameDelta caps a single simulation step after a stall.
const MaxFrameDelta = 0.1

// FrameClock turns wall-clock frame boundaries into capped delta times.
type FrameClock struct {
	maxDelta float64
	last     time.Time
	now      func() time.Time
}

// NewFrameClock constructs a FrameClock capping deltas at maxDelta seconds.
func NewFrameClock(maxDelta float64) *FrameClock {
	if maxDelta <= 0 {
		maxDelta = MaxFrameDelta
	}
	return &FrameClock{maxDelta: maxDelta, now: time.Now}
}

// Tick returns the seconds elapsed since the previous Tick, capped at the
// configured maximum. The first call returns zero.
func (f *FrameClock) Tick() float32 {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
		return 0
	}
	delta := now.Sub(f.last).Seconds()
	f.last = now
	return float32(ClampDelta(delta, f.maxDelta))
}

// Reset forgets the previous frame so the next Tick returns zero.
func (f *FrameClock) Reset() {
	f.last = time.Time{}
}

// ClampDelta bounds dt to [0, max].
func ClampDelta(dt, max float64) float64 {
	if dt < 0 {
		return 0
	}
	if dt > max {
		return max
	}
	return dt
}
