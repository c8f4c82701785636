// Package tui hosts the bubbletea plumbing shared by the widget renderers.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// InitializeTUI picks the lipgloss color profile from the environment.
// CLICOLOR_FORCE=1 or COLORTERM=truecolor force true color, which keeps
// output styled when widgets run under a pty recorder or in CI. NO_COLOR
// disables styling. Call it once before starting a program.
func InitializeTUI() {
	if profile, ok := colorProfile(os.Getenv); ok {
		lipgloss.SetColorProfile(profile)
	}
}

func colorProfile(getenv func(string) string) (termenv.Profile, bool) {
	switch {
	case getenv("NO_COLOR") != "":
		return termenv.Ascii, true
	case getenv("CLICOLOR_FORCE") == "1", getenv("COLORTERM") == "truecolor":
		return termenv.TrueColor, true
	}
	return 0, false
}
