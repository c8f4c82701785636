package schedule

import "time"

// Group tracks handles under string keys so that a new trigger can cancel
// whatever is still pending for the same purpose (last trigger wins).
// A Group is owned by a single event loop and is not safe for concurrent use.
type Group struct {
	scheduler Scheduler
	handles   map[string][]Handle
}

// NewGroup creates a group scheduling through s.
func NewGroup(s Scheduler) *Group {
	return &Group{
		scheduler: s,
		handles:   make(map[string][]Handle),
	}
}

// Schedule adds a task under key without touching existing tasks.
func (g *Group) Schedule(key string, d time.Duration, task Task) Handle {
	h := g.scheduler.After(d, task)
	g.handles[key] = append(g.live(key), h)
	return h
}

// Replace cancels every pending task under key, then schedules task.
func (g *Group) Replace(key string, d time.Duration, task Task) Handle {
	g.Cancel(key)
	return g.Schedule(key, d, task)
}

// Cancel cancels the pending tasks under key and returns how many were
// still pending.
func (g *Group) Cancel(key string) int {
	n := 0
	for _, h := range g.handles[key] {
		if h.Cancel() {
			n++
		}
	}
	delete(g.handles, key)
	return n
}

// CancelAll cancels every pending task in the group.
func (g *Group) CancelAll() int {
	n := 0
	for key := range g.handles {
		n += g.Cancel(key)
	}
	return n
}

// Pending returns the number of pending tasks under key.
func (g *Group) Pending(key string) int {
	return len(g.live(key))
}

func (g *Group) live(key string) []Handle {
	hs := g.handles[key]
	kept := hs[:0]
	for _, h := range hs {
		if h.Pending() {
			kept = append(kept, h)
		}
	}
	return kept
}
