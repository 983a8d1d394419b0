package core

import "time"

// FixedStep paces simulation frames at a steady rate independent of the
// display refresh. At most one step is reported per call; a long stall drops
// the missed frames instead of replaying them.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given frames
// per second. The first call to ShouldStep always reports true.
func NewFixedStep(fps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetRate(fps)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the frame rate. Non-positive values fall back to 60.
func (f *FixedStep) SetRate(fps int) {
	if fps <= 0 {
		fps = 60
	}
	f.step = time.Second / time.Duration(fps)
}

// Step returns the duration of one frame.
func (f *FixedStep) Step() time.Duration { return f.step }

// ShouldStep reports whether a frame is due at now.
func (f *FixedStep) ShouldStep(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta > 0 {
		f.accumulator += delta
	}
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
