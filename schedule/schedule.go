// Package schedule models deferred work as explicit tasks with cancellation
// handles. Controllers never sleep or start goroutines themselves; they ask
// a Scheduler to run a Task later and keep the Handle so that a newer
// trigger can cancel work that is no longer relevant.
package schedule

import (
	"sync/atomic"
	"time"
)

// Task is a unit of deferred work. Tasks always run on the loop that owns
// the scheduler.
type Task func()

// Handle refers to one scheduled task.
type Handle interface {
	// Cancel prevents the task from running. It reports whether the task was
	// still pending.
	Cancel() bool
	// Pending reports whether the task has neither run nor been cancelled.
	Pending() bool
}

// Scheduler runs tasks after a delay.
type Scheduler interface {
	After(d time.Duration, task Task) Handle
}

const (
	statePending int32 = iota
	stateDone
	stateCancelled
)

// handle is shared by the scheduler implementations. The state transitions
// pending->done and pending->cancelled are exclusive.
type handle struct {
	state atomic.Int32
}

func (h *handle) Cancel() bool {
	return h.state.CompareAndSwap(statePending, stateCancelled)
}

func (h *handle) Pending() bool {
	return h.state.Load() == statePending
}

// claim marks the task as run; false means it was cancelled first.
func (h *handle) claim() bool {
	return h.state.CompareAndSwap(statePending, stateDone)
}

// Stagger returns the delay for the item at index in a staggered sequence.
func Stagger(base, step time.Duration, index int) time.Duration {
	return base + time.Duration(index)*step
}
