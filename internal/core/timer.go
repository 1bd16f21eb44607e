package core

import "time"

// FixedStep paces simulation updates at a steady rate of simulated hours
// per wall-clock second, independent of how often the host loop polls it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given hourly
// tick rate.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 4
	}
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 4
	}
	f.step = time.Second / time.Duration(tps)
}

// ShouldStep reports whether enough wall-clock time has accumulated for the
// simulation to advance by one hour.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
