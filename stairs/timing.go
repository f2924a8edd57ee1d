package stairs

import "time"

// now is the clock used by Timing, overridden in tests.
var now = time.Now

// Timing records the start and end of one measured operation.
type Timing struct {
	Start time.Time
	End   time.Time
}

// StartTiming returns a Timing started at the current time.
func StartTiming() *Timing {
	return &Timing{Start: now()}
}

// Stop records the end time. Only the first call has an effect.
func (t *Timing) Stop() {
	if t.End.IsZero() {
		t.End = now()
	}
}

// Duration returns End-Start, or the time since Start while still running.
func (t *Timing) Duration() time.Duration {
	if t.End.IsZero() {
		return now().Sub(t.Start)
	}
	return t.End.Sub(t.Start)
}

// Measure runs fn and returns how long it took.
//
// The end time is taken in a deferred call, so it is recorded even when fn
// panics. The panic is not recovered.
func Measure(fn func()) (elapsed time.Duration) {
	t := StartTiming()
	defer func() {
		t.Stop()
		elapsed = t.Duration()
	}()
	fn()
	return
}

// Timed runs fn and returns its result along with the elapsed time.
func Timed[T any](fn func() T) (T, time.Duration) {
	var v T
	d := Measure(func() { v = fn() })
	return v, d
}
