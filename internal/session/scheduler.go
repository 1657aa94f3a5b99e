package session

import "time"

// CancelFunc stops a scheduled call. It returns true when the call was
// prevented from running, false when it already ran or was stopped before.
type CancelFunc func() bool

// Scheduler defers a function call by a duration. Implementations must run
// fn at most once.
//
// The engine schedules two kinds of work through this interface: applying a
// toggle after its simulated latency window and promoting the checkout
// button once its settling delay elapses. Tests substitute a manual
// implementation to drive both deterministically.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) CancelFunc
}

// TimerScheduler runs scheduled calls on real timers.
type TimerScheduler struct{}

// Schedule implements Scheduler via time.AfterFunc.
func (TimerScheduler) Schedule(d time.Duration, fn func()) CancelFunc {
	timer := time.AfterFunc(d, fn)
	return timer.Stop
}
