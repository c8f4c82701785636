package sidenav

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/grovetools/widgets/page"
	"github.com/grovetools/widgets/tui"
)

// Zone ids for mouse hit testing.
const (
	zoneToggle       = "sidenav:toggle"
	zoneMobileToggle = "sidenav:mobile-toggle"
	zoneOverlay      = "sidenav:overlay"
	zoneLink         = "sidenav:link:"
)

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tui.TaskMsg:
		if m.sched != nil {
			m.sched.Handle(msg)
		}

	case tea.WindowSizeMsg:
		m.columns, m.rows = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.side.Resize(m.viewport())

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.KeyMsg:
		if m.handleKey(msg) {
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, m.schedCmd()
}

func (m *Model) handleKey(msg tea.KeyMsg) (quit bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return true
	case key.Matches(msg, m.keys.Toggle):
		m.side.Toggle()
	case key.Matches(msg, m.keys.Close):
		m.side.HandleKey(page.KeyEvent{Key: "escape"})
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Select):
		m.click(m.cursor)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	default:
		// Alt+B and anything else the sidebar handles itself.
		m.side.HandleKey(tui.KeyEvent(msg))
	}
	return false
}

func (m *Model) moveCursor(delta int) {
	n := len(m.np.Links)
	if n == 0 {
		return
	}
	m.nav.Leave(m.cursor)
	m.cursor = ((m.cursor+delta)%n + n) % n
	m.nav.Hover(m.cursor)
}

func (m *Model) click(i int) {
	if err := m.nav.Click(i); err != nil {
		m.logger.WithError(err).Debug("Navigation click ignored")
		return
	}
	m.cursor = i
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	id := m.zoneAt(msg)

	if msg.Action == tea.MouseActionMotion {
		if i, ok := linkIndex(id); ok {
			if i != m.cursor {
				m.nav.Leave(m.cursor)
				m.cursor = i
			}
			m.nav.Hover(i)
		} else {
			m.nav.Leave(m.cursor)
		}
		return
	}

	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return
	}
	switch id {
	case zoneToggle, zoneMobileToggle:
		m.side.Toggle()
	case zoneOverlay:
		m.side.ClickOverlay()
	default:
		if i, ok := linkIndex(id); ok {
			m.click(i)
		}
	}
}

func (m *Model) zoneAt(msg tea.MouseMsg) string {
	// Links and toggles sit on top of the overlay, so check them first.
	ids := make([]string, 0, len(m.np.Links)+3)
	for i := range m.np.Links {
		ids = append(ids, linkZone(i))
	}
	ids = append(ids, zoneToggle, zoneMobileToggle, zoneOverlay)
	for _, id := range ids {
		if z := m.zones.Get(id); z != nil && z.InBounds(msg) {
			return id
		}
	}
	return ""
}

func linkZone(i int) string {
	return zoneLink + strconv.Itoa(i)
}

func linkIndex(id string) (int, bool) {
	if !strings.HasPrefix(id, zoneLink) {
		return 0, false
	}
	i, err := strconv.Atoi(strings.TrimPrefix(id, zoneLink))
	return i, err == nil
}
