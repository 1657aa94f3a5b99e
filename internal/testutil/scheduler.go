// Package testutil provides deterministic test doubles for the timing and
// rendering boundaries of a bundle session.
package testutil

import (
	"sync"
	"time"

	"github.com/guttosm/bundle-service/internal/session"
)

// scheduledTask is one deferred call registered with the ManualScheduler.
type scheduledTask struct {
	delay     time.Duration
	fn        func()
	cancelled bool
	fired     bool
}

// ManualScheduler implements session.Scheduler without real timers. Tests
// control exactly when scheduled work runs, which makes the latency window
// and the button settling delay fully deterministic.
type ManualScheduler struct {
	mu    sync.Mutex
	tasks []*scheduledTask
}

// NewManualScheduler returns an empty manual scheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Schedule records the call instead of arming a timer. The returned cancel
// reports true when it prevented the call from running.
func (m *ManualScheduler) Schedule(d time.Duration, fn func()) session.CancelFunc {
	m.mu.Lock()
	defer m.mu.Unlock()

	task := &scheduledTask{delay: d, fn: fn}
	m.tasks = append(m.tasks, task)

	return func() bool {
		m.mu.Lock()
		defer m.mu.Unlock()
		if task.fired || task.cancelled {
			return false
		}
		task.cancelled = true
		return true
	}
}

// FireNext runs the oldest pending task. Returns false when nothing is
// pending. The task runs outside the scheduler lock, mirroring how a real
// timer callback executes on its own goroutine.
func (m *ManualScheduler) FireNext() bool {
	m.mu.Lock()
	var next *scheduledTask
	for _, task := range m.tasks {
		if !task.fired && !task.cancelled {
			next = task
			break
		}
	}
	if next == nil {
		m.mu.Unlock()
		return false
	}
	next.fired = true
	fn := next.fn
	m.mu.Unlock()

	fn()
	return true
}

// FireAll runs every pending task in registration order, including tasks
// scheduled by the tasks it runs. Returns the number of tasks fired.
func (m *ManualScheduler) FireAll() int {
	fired := 0
	for m.FireNext() {
		fired++
	}
	return fired
}

// Pending returns the number of tasks that have neither fired nor been
// cancelled.
func (m *ManualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	pending := 0
	for _, task := range m.tasks {
		if !task.fired && !task.cancelled {
			pending++
		}
	}
	return pending
}

// Cancelled returns the number of tasks that were cancelled before firing.
func (m *ManualScheduler) Cancelled() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cancelled := 0
	for _, task := range m.tasks {
		if task.cancelled {
			cancelled++
		}
	}
	return cancelled
}
