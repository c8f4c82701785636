package contactform

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/grovetools/widgets/errors"
	"github.com/grovetools/widgets/form"
	"github.com/grovetools/widgets/tui"
)

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	wasSubmitting := m.pres.Submitting
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tui.TaskMsg:
		if m.sched != nil {
			m.sched.Handle(msg)
		}

	case spinner.TickMsg:
		if m.pres.SpinnerVisible {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.KeyMsg:
		cmd, quit := m.handleKey(msg)
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		cmds = append(cmds, cmd)

	default:
		cmds = append(cmds, m.updateFocused(msg))
	}

	if m.pres.Submitting && !wasSubmitting {
		cmds = append(cmds, m.spinner.Tick)
	}
	cmds = append(cmds, m.schedCmd())
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	// Up and down move between lines of the message, not between fields.
	if m.focusedField() == form.FieldMessage && (msg.Type == tea.KeyUp || msg.Type == tea.KeyDown) {
		return m.updateFocused(msg), false
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return nil, true

	case key.Matches(msg, m.keys.Submit):
		m.submit()
		return nil, false

	case key.Matches(msg, m.keys.NextField):
		m.ctl.Blur(m.focusedField())
		m.setFocus(m.focus + 1)
		return nil, false

	case key.Matches(msg, m.keys.PrevField):
		m.ctl.Blur(m.focusedField())
		m.setFocus(m.focus - 1)
		return nil, false

	case key.Matches(msg, m.keys.Reset):
		m.ctl.Reset()
		m.clearInputs()
		return nil, false

	case key.Matches(msg, m.keys.Dismiss):
		m.dismissLatest()
		return nil, false

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil, false
	}

	// Alt+Enter and any other accelerator the controller understands.
	if m.ctl.HandleKey(tui.KeyEvent(msg)) {
		return nil, false
	}
	return m.updateFocused(msg), false
}

// updateFocused forwards msg to the focused widget and reports changed
// values to the controller.
func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	f := m.focusedField()
	before := m.value(f)

	var cmd tea.Cmd
	if f == form.FieldMessage {
		m.message, cmd = m.message.Update(msg)
	} else {
		in := m.inputs[f]
		*in, cmd = in.Update(msg)
	}

	if after := m.value(f); after != before {
		m.ctl.Input(f, after)
	}
	return cmd
}

func (m *Model) submit() {
	err := m.ctl.Submit()
	switch {
	case err == nil:
	case errors.Is(err, errors.ErrCodeValidation):
		m.focusFirstInvalid()
	default:
		m.logger.WithError(err).Debug("Submit rejected")
	}
}

func (m *Model) focusFirstInvalid() {
	for i, f := range form.Fields {
		if m.pres.Fields[f].Errored {
			m.setFocus(i)
			return
		}
	}
}

func (m *Model) dismissLatest() {
	if n := len(m.pres.Notices); n > 0 {
		m.ctl.DismissNotice(m.pres.Notices[n-1].ID)
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return
	}
	switch id := m.zoneAt(msg); {
	case id == zoneSubmit:
		m.submit()
	case id == zoneNotice:
		m.dismissLatest()
	case strings.HasPrefix(id, zoneField):
		field := form.Field(strings.TrimPrefix(id, zoneField))
		for i, f := range form.Fields {
			if f == field {
				if i != m.focus {
					m.ctl.Blur(m.focusedField())
				}
				m.setFocus(i)
			}
		}
	}
}

func (m *Model) zoneAt(msg tea.MouseMsg) string {
	ids := []string{zoneSubmit, zoneNotice}
	for _, f := range form.Fields {
		ids = append(ids, zoneField+string(f))
	}
	for _, id := range ids {
		if z := m.zones.Get(id); z != nil && z.InBounds(msg) {
			return id
		}
	}
	return ""
}
