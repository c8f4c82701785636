package schedule

import (
	"sort"
	"time"
)

// Manual is a Scheduler driven by an explicit virtual clock. Nothing runs
// until Advance is called, which makes timing behaviour deterministic in
// tests and in headless renderers.
type Manual struct {
	now   time.Duration
	seq   uint64
	tasks []*manualTask
}

type manualTask struct {
	handle
	due  time.Duration
	seq  uint64
	task Task
}

// NewManual returns a manual scheduler at virtual time zero.
func NewManual() *Manual {
	return &Manual{}
}

// After schedules task to run once the clock has advanced by d.
func (m *Manual) After(d time.Duration, task Task) Handle {
	if d < 0 {
		d = 0
	}
	m.seq++
	t := &manualTask{due: m.now + d, seq: m.seq, task: task}
	m.tasks = append(m.tasks, t)
	return t
}

// Now returns the elapsed virtual time.
func (m *Manual) Now() time.Duration {
	return m.now
}

// Advance moves the clock forward by d and runs every task that falls due,
// in due-time order. Tasks scheduled by running tasks are honoured when they
// fall inside the window. It returns the number of tasks run.
func (m *Manual) Advance(d time.Duration) int {
	target := m.now + d
	ran := 0
	for {
		next := m.nextDue(target)
		if next == nil {
			break
		}
		m.now = next.due
		if next.claim() {
			next.task()
			ran++
		}
	}
	m.now = target
	m.prune()
	return ran
}

// Flush runs every pending task regardless of its delay.
func (m *Manual) Flush() int {
	ran := 0
	for {
		m.prune()
		if len(m.tasks) == 0 {
			return ran
		}
		latest := m.now
		for _, t := range m.tasks {
			if t.due > latest {
				latest = t.due
			}
		}
		ran += m.Advance(latest - m.now)
	}
}

// Pending returns the number of tasks still waiting to run.
func (m *Manual) Pending() int {
	n := 0
	for _, t := range m.tasks {
		if t.Pending() {
			n++
		}
	}
	return n
}

func (m *Manual) nextDue(target time.Duration) *manualTask {
	candidates := make([]*manualTask, 0, len(m.tasks))
	for _, t := range m.tasks {
		if t.Pending() && t.due <= target {
			candidates = append(candidates, t)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].due == candidates[j].due {
			return candidates[i].seq < candidates[j].seq
		}
		return candidates[i].due < candidates[j].due
	})
	return candidates[0]
}

func (m *Manual) prune() {
	kept := m.tasks[:0]
	for _, t := range m.tasks {
		if t.Pending() {
			kept = append(kept, t)
		}
	}
	m.tasks = kept
}
