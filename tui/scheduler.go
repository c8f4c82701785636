package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/widgets/schedule"
)

// TaskMsg tells the model that owns a Scheduler that one of its tasks is
// due. Pass it to Scheduler.Handle from Update.
type TaskMsg struct {
	owner *Scheduler
	id    uint64
}

// Scheduler is a schedule.Scheduler for bubbletea programs. Each task is
// backed by a tea.Tick command and runs inside Update, on the program's
// event loop, so controllers never see concurrent calls.
//
// Commands for newly scheduled tasks accumulate until Cmd is called; models
// return that command from Init and Update.
type Scheduler struct {
	next   uint64
	tasks  map[uint64]*teaTask
	queued []tea.Cmd
}

type teaTask struct {
	fn        schedule.Task
	done      bool
	cancelled bool
}

func (t *teaTask) Cancel() bool {
	if t.done || t.cancelled {
		return false
	}
	t.cancelled = true
	return true
}

func (t *teaTask) Pending() bool {
	return !t.done && !t.cancelled
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{tasks: make(map[uint64]*teaTask)}
}

// After implements schedule.Scheduler.
func (s *Scheduler) After(d time.Duration, fn schedule.Task) schedule.Handle {
	s.next++
	id := s.next
	t := &teaTask{fn: fn}
	s.tasks[id] = t

	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return TaskMsg{owner: s, id: id}
	}))
	return t
}

// Cmd returns the ticks queued since the last call, or nil.
func (s *Scheduler) Cmd() tea.Cmd {
	cmds := s.queued
	s.queued = nil
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

// Handle runs the task behind msg unless it was cancelled. It reports
// whether msg belonged to this scheduler.
func (s *Scheduler) Handle(msg TaskMsg) bool {
	if msg.owner != s {
		return false
	}
	t, ok := s.tasks[msg.id]
	if !ok {
		return true
	}
	delete(s.tasks, msg.id)
	if t.Pending() {
		t.done = true
		t.fn()
	}
	return true
}

// Pending returns the number of tasks that are neither run nor cancelled.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if t.Pending() {
			n++
		}
	}
	return n
}
