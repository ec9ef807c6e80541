package core

import "time"

// FixedStep paces simulation updates at a steady rate independent of the
// frame rate. At most one step is released per call and missed steps are
// not replayed.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting rate steps per
// second. The first poll always fires.
func NewFixedStep(rate float64) *FixedStep {
	fs := &FixedStep{}
	fs.SetRate(rate)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the step rate. Non-positive rates fall back to 10/s.
func (f *FixedStep) SetRate(rate float64) {
	if rate <= 0 {
		rate = 10
	}
	f.step = time.Duration(float64(time.Second) / rate)
	if f.step <= 0 {
		f.step = time.Nanosecond
	}
}

// Interval returns the time between steps.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Restart forgets elapsed time so the next step is a full interval after now.
func (f *FixedStep) Restart(now time.Time) {
	f.last = now
	f.accumulator = 0
}

// Poll reports whether the simulation should advance by one tick at now.
func (f *FixedStep) Poll(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	if delta < 0 {
		delta = 0
	}
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
