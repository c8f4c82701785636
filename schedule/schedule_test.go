package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestManualRunsTasksInDueOrder(t *testing.T) {
	m := NewManual()
	var order []string

	m.After(30*time.Millisecond, func() { order = append(order, "c") })
	m.After(10*time.Millisecond, func() { order = append(order, "a") })
	m.After(10*time.Millisecond, func() { order = append(order, "b") })

	assert.Equal(t, 0, m.Advance(5*time.Millisecond))
	assert.Empty(t, order)

	assert.Equal(t, 3, m.Advance(25*time.Millisecond))
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, 30*time.Millisecond, m.Now())
	assert.Equal(t, 0, m.Pending())
}

func TestManualNestedScheduling(t *testing.T) {
	m := NewManual()
	var fired []time.Duration

	m.After(10*time.Millisecond, func() {
		fired = append(fired, m.Now())
		m.After(10*time.Millisecond, func() { fired = append(fired, m.Now()) })
		m.After(100*time.Millisecond, func() { fired = append(fired, m.Now()) })
	})

	m.Advance(50 * time.Millisecond)
	assert.Equal(t, []time.Duration{10 * time.Millisecond, 20 * time.Millisecond}, fired)
	assert.Equal(t, 1, m.Pending())

	assert.Equal(t, 1, m.Flush())
	assert.Equal(t, 110*time.Millisecond, m.Now())
}

func TestManualCancel(t *testing.T) {
	m := NewManual()
	ran := false
	h := m.After(time.Second, func() { ran = true })

	require.True(t, h.Pending())
	assert.True(t, h.Cancel())
	assert.False(t, h.Cancel(), "second cancel reports nothing pending")
	assert.False(t, h.Pending())

	m.Advance(2 * time.Second)
	assert.False(t, ran)
}

func TestGroupReplaceIsLastTriggerWins(t *testing.T) {
	m := NewManual()
	g := NewGroup(m)
	var got []int

	for i := 0; i < 3; i++ {
		i := i
		g.Schedule("dim", time.Duration(i)*50*time.Millisecond, func() { got = append(got, i) })
	}
	assert.Equal(t, 3, g.Pending("dim"))

	g.Replace("dim", 10*time.Millisecond, func() { got = append(got, 99) })
	assert.Equal(t, 1, g.Pending("dim"))

	m.Advance(time.Second)
	// index 0 was due at 0 but never advanced past before Replace
	assert.Equal(t, []int{99}, got)
	assert.Equal(t, 0, g.Pending("dim"))
}

func TestGroupCancelAll(t *testing.T) {
	m := NewManual()
	g := NewGroup(m)
	g.Schedule("a", time.Millisecond, func() { t.Fatal("a should not run") })
	g.Schedule("b", time.Millisecond, func() { t.Fatal("b should not run") })

	assert.Equal(t, 2, g.CancelAll())
	assert.Equal(t, 0, m.Advance(time.Second))
}

func TestStagger(t *testing.T) {
	assert.Equal(t, 500*time.Millisecond, Stagger(500*time.Millisecond, 100*time.Millisecond, 0))
	assert.Equal(t, 800*time.Millisecond, Stagger(500*time.Millisecond, 100*time.Millisecond, 3))
	assert.Equal(t, 100*time.Millisecond, Stagger(0, 50*time.Millisecond, 2))
}

func TestTimerDispatchesOnLoop(t *testing.T) {
	loop := make(chan Task, 1)
	s := NewTimer(func(task Task) { loop <- task })

	done := make(chan struct{})
	h := s.After(time.Millisecond, func() { close(done) })

	select {
	case task := <-loop:
		task()
	case <-time.After(time.Second):
		t.Fatal("task was not dispatched")
	}

	<-done
	assert.False(t, h.Pending())
}

func TestTimerCancelBeforeRun(t *testing.T) {
	loop := make(chan Task, 1)
	s := NewTimer(func(task Task) { loop <- task })

	ran := false
	h := s.After(time.Millisecond, func() { ran = true })

	task := <-loop
	// cancelled after dispatch, before the loop got to it
	assert.True(t, h.Cancel())
	task()
	assert.False(t, ran)
}

func TestTimerStopOnCancel(t *testing.T) {
	s := NewTimer(nil)
	h := s.After(time.Hour, func() { t.Fatal("should not run") })
	assert.True(t, h.Cancel())
}
