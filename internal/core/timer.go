package core

import "time"

// FrameClock measures the elapsed time between frames so painting stays
// frame-rate independent.
type FrameClock struct {
	maxStep time.Duration
	last    time.Time
	now     func() time.Time
}

// NewFrameClock constructs a clock that never reports more than maxStep per
// tick. A non-positive maxStep defaults to a quarter second.
func NewFrameClock(maxStep time.Duration) *FrameClock {
	if maxStep <= 0 {
		maxStep = 250 * time.Millisecond
	}
	return &FrameClock{maxStep: maxStep, now: time.Now}
}

// NewFrameClockWithSource is like NewFrameClock but reads time from now.
func NewFrameClockWithSource(maxStep time.Duration, now func() time.Time) *FrameClock {
	fc := NewFrameClock(maxStep)
	if now != nil {
		fc.now = now
	}
	return fc
}

// Tick returns the time since the previous Tick. The first call returns zero.
func (f *FrameClock) Tick() time.Duration {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
		return 0
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta < 0 {
		return 0
	}
	if delta > f.maxStep {
		return f.maxStep
	}
	return delta
}

// Seconds is Tick expressed in seconds.
func (f *FrameClock) Seconds() float64 {
	return f.Tick().Seconds()
}
