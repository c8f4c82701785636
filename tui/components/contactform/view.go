package contactform

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/grovetools/widgets/form"
	"github.com/grovetools/widgets/tui/theme"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	t := m.theme
	var b strings.Builder

	b.WriteString(t.Title.Render("Contact us"))
	b.WriteString("\n")

	for _, n := range m.pres.Notices {
		style := t.Notice
		icon := theme.Icons.Warning
		if n.Kind == form.NoticeSubmitFailed {
			style, icon = t.NoticeFailure, theme.Icons.Error
		}
		b.WriteString(m.zones.Mark(zoneNotice, style.Render(icon+" "+n.Message)))
		b.WriteString("\n")
	}

	for i, f := range form.Fields {
		b.WriteString(m.zones.Mark(zoneField+string(f), m.renderField(i, f)))
		b.WriteString("\n")
	}

	b.WriteString(m.renderSubmit())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return m.zones.Scan(b.String())
}

func (m *Model) renderField(i int, f form.Field) string {
	t := m.theme
	view := m.pres.Fields[f]

	style := t.Input
	switch {
	case view.Errored:
		style = t.InputErrored
	case i == m.focus:
		style = t.InputFocused
	}
	if view.Shake {
		style = style.MarginLeft(1)
	}

	var input string
	if f == form.FieldMessage {
		input = m.message.View()
	} else {
		input = m.inputs[f].View()
	}

	lines := []string{t.Label.Render(fieldLabels[f]), style.Render(input)}
	if f == form.FieldMessage {
		lines = append(lines, counterStyle(t, m.pres.Counter.Level).Render(m.pres.Counter.Text()))
	}
	if view.Errored {
		lines = append(lines, t.FieldError.Render(theme.Icons.Error+" "+view.Message))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) renderSubmit() string {
	t := m.theme
	if m.pres.SubmitDisabled {
		button := t.ButtonDisabled.Render("Sending...")
		if m.pres.SpinnerVisible {
			return m.zones.Mark(zoneSubmit, fmt.Sprintf("%s %s", button, m.spinner.View()))
		}
		return m.zones.Mark(zoneSubmit, button)
	}
	return m.zones.Mark(zoneSubmit, t.Button.Render("Send message"))
}

func counterStyle(t *theme.Theme, level form.CounterLevel) lipgloss.Style {
	switch level {
	case form.CounterAtLimit:
		return t.CounterAt
	case form.CounterNearLimit:
		return t.CounterNear
	default:
		return t.CounterNormal
	}
}
