package sidenav

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/grovetools/widgets/sidebar"
	"github.com/grovetools/widgets/tui/theme"
)

const (
	collapsedWidth = 5
	expandedWidth  = 22
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch {
	case !m.sp.Mobile:
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderPanel(), m.renderMain(false))
	case m.sp.Mode == sidebar.ModeOpen:
		// The overlay dims the page once it has faded in.
		main := m.renderMain(m.sp.Overlay.Present && m.sp.Overlay.Opacity > 0)
		if m.sp.Overlay.Present {
			main = m.zones.Mark(zoneOverlay, main)
		}
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderPanel(), main)
	default:
		body = m.renderMain(false)
	}

	out := lipgloss.JoinVertical(lipgloss.Left, body, "", m.help.View(m.keys))
	return m.zones.Scan(out)
}

func (m *Model) renderPanel() string {
	t := m.theme
	width := collapsedWidth
	if m.sp.Panel.Expanded || m.sp.Mobile {
		width = expandedWidth
	}

	var rows []string
	if !m.sp.Mobile {
		rows = append(rows, m.zones.Mark(zoneToggle, m.renderToggle(m.sp.Toggle, width > collapsedWidth)), "")
	}
	for i := range m.np.Links {
		rows = append(rows, m.zones.Mark(linkZone(i), m.renderLink(i, width)))
	}

	style := t.Panel
	if m.sp.Panel.Shadow {
		style = t.PanelShadow
	}
	return style.Width(width).Render(strings.Join(rows, "\n"))
}

func (m *Model) renderLink(i, width int) string {
	t := m.theme
	lv := m.np.Links[i]
	item := sidebar.ItemView{Opacity: 1, Scale: 1}
	if i < len(m.sp.Items) {
		item = m.sp.Items[i]
	}

	// Items still waiting for their entrance keep their row but draw nothing.
	if item.Opacity == 0 {
		return strings.Repeat(" ", width)
	}

	text := lv.Text
	if width == collapsedWidth {
		text = firstRune(text)
	}
	marker := " "
	if i == m.cursor {
		marker = theme.Icons.Arrow
	}
	indent := ""
	if lv.OffsetX > 0 {
		indent = " "
	}

	style := t.Link
	switch {
	case lv.Active:
		style = t.LinkActive
	case lv.Hovered:
		style = t.LinkHovered
	case item.Opacity < 1:
		style = t.LinkDimmed
	}
	return marker + indent + style.Render(text)
}

func (m *Model) renderToggle(v sidebar.ToggleView, withLabel bool) string {
	s := theme.Icons.ToggleIcon(v.Icon)
	if withLabel {
		s += " " + v.Label
	}
	return m.theme.Toggle.Render(s)
}

func (m *Model) renderMain(dimmed bool) string {
	t := m.theme
	styled := func(st lipgloss.Style, text string) string {
		if dimmed {
			return text
		}
		return st.Render(text)
	}
	var rows []string

	if m.sp.Mobile {
		toggle, id := m.sp.MobileToggle, zoneMobileToggle
		if toggle == nil {
			// Without a mobile toggle the main toggle reflects the mobile state.
			v := sidebar.ToggleView{Icon: sidebar.IconBars, Label: "Open sidebar"}
			if m.sp.Mode == sidebar.ModeOpen {
				v = sidebar.ToggleView{Icon: sidebar.IconTimes, Label: "Close sidebar"}
			}
			toggle, id = &v, zoneToggle
		}
		label := theme.Icons.ToggleIcon(toggle.Icon) + " " + toggle.Label
		rows = append(rows, m.zones.Mark(id, styled(t.Toggle, label)))
	}

	header := t.Header
	if m.np.Header.Highlighted {
		header = t.HeaderHighlighted
	}
	rows = append(rows, styled(header, m.np.Header.Text), "")

	axis := "desktop"
	if m.sp.Mobile {
		axis = "mobile"
	}
	rows = append(rows,
		fmt.Sprintf("You are viewing %s.", m.nav.CurrentPage()),
		"",
		styled(t.Muted, fmt.Sprintf("sidebar %s · %s viewport %d (breakpoint %d)",
			m.sp.Mode, axis, m.viewport(), m.side.Breakpoint())),
	)

	style := lipgloss.NewStyle().Padding(0, 2)
	if dimmed {
		style = t.Overlay.Padding(0, 2)
	}
	return style.Render(strings.Join(rows, "\n"))
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}
