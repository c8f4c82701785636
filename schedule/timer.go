package schedule

import "time"

// Timer is a Scheduler backed by time.AfterFunc. Fired tasks are handed to
// dispatch, which is expected to run them on the owning event loop. A nil
// dispatch runs tasks directly on the timer goroutine.
type Timer struct {
	dispatch func(Task)
}

// NewTimer creates a wall-clock scheduler.
func NewTimer(dispatch func(Task)) *Timer {
	return &Timer{dispatch: dispatch}
}

type timerHandle struct {
	handle
	timer *time.Timer
}

func (h *timerHandle) Cancel() bool {
	if !h.handle.Cancel() {
		return false
	}
	h.timer.Stop()
	return true
}

// After schedules task to run after d.
func (s *Timer) After(d time.Duration, task Task) Handle {
	h := &timerHandle{}
	// claim happens when the task actually runs so that a Cancel issued on
	// the loop between dispatch and execution still wins.
	run := func() {
		if h.claim() {
			task()
		}
	}
	h.timer = time.AfterFunc(d, func() {
		if !h.Pending() {
			return
		}
		if s.dispatch == nil {
			run()
			return
		}
		s.dispatch(run)
	})
	return h
}
