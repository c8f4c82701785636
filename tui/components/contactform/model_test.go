package contactform

import (
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/widgets/config"
	"github.com/grovetools/widgets/form"
	"github.com/grovetools/widgets/schedule"
)

type harness struct {
	m     *Model
	clock *schedule.Manual
}

func newHarness(t *testing.T, success bool) *harness {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	clock := schedule.NewManual()
	m, err := New(Options{
		Scheduler: clock,
		Outcome:   form.FixedOutcome(success),
		Logger:    logrus.NewEntry(logger),
	})
	require.NoError(t, err)
	t.Cleanup(m.Close)
	return &harness{m: m, clock: clock}
}

func (h *harness) send(msg tea.Msg) {
	h.m.Update(msg)
}

func (h *harness) typeText(s string) {
	for _, r := range s {
		h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func (h *harness) fillValid() {
	h.typeText("Jane Doe")
	h.send(tea.KeyMsg{Type: tea.KeyTab})
	h.typeText("jane@example.com")
	h.send(tea.KeyMsg{Type: tea.KeyTab})
	h.typeText("Hello there")
	h.send(tea.KeyMsg{Type: tea.KeyTab})
	h.typeText("This is a long enough message.")
}

func TestTypingValidatesThroughController(t *testing.T) {
	h := newHarness(t, true)

	h.typeText("J")
	view := h.m.pres.Fields[form.FieldFullName]
	assert.True(t, view.Errored)
	assert.Equal(t, "Name must be at least 2 characters", view.Message)
	assert.True(t, view.Shake)

	h.typeText("o")
	assert.False(t, h.m.pres.Fields[form.FieldFullName].Errored)

	h.clock.Advance(500 * time.Millisecond)
	assert.False(t, h.m.pres.Fields[form.FieldFullName].Shake)
}

func TestTabBlursAndMovesFocus(t *testing.T) {
	h := newHarness(t, true)
	assert.Equal(t, form.FieldFullName, h.m.focusedField())

	h.send(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, form.FieldEmail, h.m.focusedField())
	assert.True(t, h.m.pres.Fields[form.FieldFullName].Errored, "blur validates the empty name")
	assert.Equal(t, "Full name is required", h.m.pres.Fields[form.FieldFullName].Message)

	h.send(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, form.FieldFullName, h.m.focusedField())

	h.send(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, form.FieldMessage, h.m.focusedField(), "focus wraps")
}

func TestArrowKeysStayInsideMessage(t *testing.T) {
	h := newHarness(t, true)

	h.send(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, form.FieldEmail, h.m.focusedField(), "arrows move between single-line inputs")
	h.send(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, form.FieldFullName, h.m.focusedField())

	h.send(tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, form.FieldMessage, h.m.focusedField())
	h.typeText("first line")
	h.send(tea.KeyMsg{Type: tea.KeyEnter})
	h.typeText("second line")
	require.Equal(t, 1, h.m.message.Line())

	h.send(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, form.FieldMessage, h.m.focusedField())
	assert.Equal(t, 0, h.m.message.Line())

	h.send(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, form.FieldMessage, h.m.focusedField())
	assert.Equal(t, 1, h.m.message.Line())
	assert.Equal(t, "first line\nsecond line", h.m.message.Value())
}

func TestMessageCounter(t *testing.T) {
	h := newHarness(t, true)
	h.m.setFocus(3)

	h.typeText("hello")
	assert.Equal(t, "5 / 1000 characters", h.m.pres.Counter.Text())
	assert.Contains(t, h.m.View(), "5 / 1000 characters")
}

func TestSubmitInvalidShowsNoticeAndFocusesFirstError(t *testing.T) {
	h := newHarness(t, true)
	h.m.setFocus(2)

	h.send(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.Len(t, h.m.pres.Notices, 1)
	assert.Equal(t, "Please fix the errors above before submitting", h.m.pres.Notices[0].Message)
	assert.Equal(t, form.FieldFullName, h.m.focusedField())
	assert.False(t, h.m.pres.Submitting)

	h.send(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, h.m.pres.Notices)
}

func TestSubmitSuccessReloads(t *testing.T) {
	h := newHarness(t, true)
	h.fillValid()

	_, cmd := h.m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.NotNil(t, cmd, "spinner starts ticking")
	assert.True(t, h.m.pres.Submitting)
	assert.True(t, h.m.pres.SubmitDisabled)
	assert.Contains(t, h.m.View(), "Sending...")

	h.clock.Advance(2 * time.Second)
	assert.Equal(t, 1, h.m.Reloads())
	assert.False(t, h.m.pres.Submitting)
	assert.Empty(t, h.m.value(form.FieldFullName))
	assert.Empty(t, h.m.value(form.FieldMessage))
	assert.Equal(t, form.FieldFullName, h.m.focusedField())
}

func TestSubmitFailureKeepsValues(t *testing.T) {
	h := newHarness(t, false)
	h.fillValid()

	h.send(tea.KeyMsg{Type: tea.KeyEnter, Alt: true})
	require.True(t, h.m.pres.Submitting)

	h.clock.Advance(2 * time.Second)
	assert.False(t, h.m.pres.Submitting)
	require.Len(t, h.m.pres.Notices, 1)
	assert.Equal(t, form.NoticeSubmitFailed, h.m.pres.Notices[0].Kind)
	assert.Equal(t, "Jane Doe", h.m.value(form.FieldFullName))
	assert.Equal(t, 0, h.m.Reloads())

	h.clock.Advance(5 * time.Second)
	assert.Empty(t, h.m.pres.Notices)
}

func TestResetClearsEverything(t *testing.T) {
	h := newHarness(t, true)
	h.typeText("J")
	require.True(t, h.m.pres.Fields[form.FieldFullName].Errored)

	h.send(tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.False(t, h.m.pres.Fields[form.FieldFullName].Errored)
	assert.Empty(t, h.m.value(form.FieldFullName))
	assert.Equal(t, 0, h.m.Reloads())
}

func TestQuit(t *testing.T) {
	h := newHarness(t, true)
	_, cmd := h.m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, h.m.View())
}

func TestConfigConversion(t *testing.T) {
	cfg, err := config.LoadFromBytes([]byte(`
form:
  message: {min: 1, max: 20}
  submit_delay: 100ms
`), config.FormatYAML)
	require.NoError(t, err)

	rules := RulesFromConfig(cfg.Form)
	assert.Equal(t, form.Bounds{Min: 1, Max: 20}, rules.Message)
	assert.Equal(t, 75, rules.NearLimitPercent)

	timing := TimingFromConfig(cfg.Form)
	assert.Equal(t, 100*time.Millisecond, timing.SubmitDelay)
	assert.Equal(t, 5*time.Second, timing.NoticeTTL)
}
