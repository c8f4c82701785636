package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/widgets/page"
)

// KeyEvent converts a bubbletea key message into the surface-neutral form
// the controllers understand. Alt is reported as Meta, and "esc" as
// "escape".
func KeyEvent(msg tea.KeyMsg) page.KeyEvent {
	var e page.KeyEvent
	s := msg.String()
	for {
		switch {
		case strings.HasPrefix(s, "ctrl+") && len(s) > len("ctrl+"):
			e.Ctrl = true
			s = strings.TrimPrefix(s, "ctrl+")
			continue
		case strings.HasPrefix(s, "alt+") && len(s) > len("alt+"):
			e.Meta = true
			s = strings.TrimPrefix(s, "alt+")
			continue
		case strings.HasPrefix(s, "shift+") && len(s) > len("shift+"):
			e.Shift = true
			s = strings.TrimPrefix(s, "shift+")
			continue
		}
		break
	}
	if s == "esc" {
		s = "escape"
	}
	e.Key = s
	return e
}
