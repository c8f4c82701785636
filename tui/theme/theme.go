package theme

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const defaultThemeName = "kanagawa"

// Colors encapsulates the palette used by a theme. lipgloss.TerminalColor
// allows a mix of adaptive and static colors.
type Colors struct {
	Green              lipgloss.TerminalColor
	Yellow             lipgloss.TerminalColor
	Red                lipgloss.TerminalColor
	Orange             lipgloss.TerminalColor
	Cyan               lipgloss.TerminalColor
	Violet             lipgloss.TerminalColor
	LightText          lipgloss.TerminalColor
	MutedText          lipgloss.TerminalColor
	Border             lipgloss.TerminalColor
	SelectedBackground lipgloss.TerminalColor
	SubtleBackground   lipgloss.TerminalColor
}

// Theme holds the styles used by the widget renderers.
type Theme struct {
	Name   string
	Colors Colors

	Title lipgloss.Style
	Muted lipgloss.Style
	Help  lipgloss.Style

	// Status
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Accent  lipgloss.Style

	// Form
	Label          lipgloss.Style
	Input          lipgloss.Style
	InputFocused   lipgloss.Style
	InputErrored   lipgloss.Style
	FieldError     lipgloss.Style
	CounterNormal  lipgloss.Style
	CounterNear    lipgloss.Style
	CounterAt      lipgloss.Style
	Notice         lipgloss.Style
	NoticeFailure  lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	Spinner        lipgloss.Style

	// Sidebar and navigation
	Panel             lipgloss.Style
	PanelShadow       lipgloss.Style
	Overlay           lipgloss.Style
	Toggle            lipgloss.Style
	Link              lipgloss.Style
	LinkDimmed        lipgloss.Style
	LinkActive        lipgloss.Style
	LinkHovered       lipgloss.Style
	Header            lipgloss.Style
	HeaderHighlighted lipgloss.Style
}

var themeRegistry = map[string]func() Colors{
	"kanagawa": newKanagawaColors,
	"gruvbox":  newGruvboxColors,
	"terminal": newTerminalColors,
}

var themeAliases = map[string]string{
	"kanagawa-dark":   "kanagawa",
	"kanagawa-dragon": "kanagawa",
	"kanagawa-wave":   "kanagawa",
	"gruvbox-dark":    "gruvbox",
	"gruvbox-light":   "gruvbox",
}

// DefaultTheme is used where no theme has been chosen explicitly, such as
// log formatting. WIDGETS_THEME selects its palette.
var DefaultTheme = NewThemeWithName(os.Getenv("WIDGETS_THEME"))

// NewThemeWithName constructs a theme from a palette name. Unknown names
// fall back to kanagawa.
func NewThemeWithName(name string) *Theme {
	key := resolveName(name)
	return newThemeFromColors(themeRegistry[key](), key)
}

// Names lists the registered palettes.
func Names() []string {
	return []string{"kanagawa", "gruvbox", "terminal"}
}

func resolveName(name string) string {
	key := normalizeThemeName(name)
	if alias, ok := themeAliases[key]; ok {
		key = alias
	}
	if _, ok := themeRegistry[key]; !ok {
		return defaultThemeName
	}
	return key
}

func normalizeThemeName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, " ", "-")
	normalized = strings.ReplaceAll(normalized, "_", "-")
	return normalized
}

func newThemeFromColors(c Colors, name string) *Theme {
	input := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c.Border).
		Padding(0, 1)

	return &Theme{
		Name:   name,
		Colors: c,

		Title: lipgloss.NewStyle().Bold(true).Underline(true).MarginBottom(1),
		Muted: lipgloss.NewStyle().Faint(true),
		Help:  lipgloss.NewStyle().Foreground(c.MutedText),

		Success: lipgloss.NewStyle().Foreground(c.Green).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(c.Red).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(c.Yellow).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(c.Cyan).Bold(true),
		Accent:  lipgloss.NewStyle().Foreground(c.Violet).Bold(true),

		Label:        lipgloss.NewStyle().Bold(true),
		Input:        input,
		InputFocused: input.BorderForeground(c.Cyan),
		InputErrored: input.BorderForeground(c.Red),
		FieldError:   lipgloss.NewStyle().Foreground(c.Red),

		CounterNormal: lipgloss.NewStyle().Foreground(c.MutedText),
		CounterNear:   lipgloss.NewStyle().Foreground(c.Yellow),
		CounterAt:     lipgloss.NewStyle().Foreground(c.Red).Bold(true),

		Notice: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.Yellow).
			Foreground(c.Yellow).
			Padding(0, 1),
		NoticeFailure: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.Red).
			Foreground(c.Red).
			Padding(0, 1),

		Button: lipgloss.NewStyle().
			Background(c.Cyan).
			Foreground(c.SubtleBackground).
			Bold(true).
			Padding(0, 2),
		ButtonDisabled: lipgloss.NewStyle().
			Background(c.Border).
			Foreground(c.MutedText).
			Padding(0, 2),
		Spinner: lipgloss.NewStyle().Foreground(c.Orange),

		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(c.Border).
			Padding(0, 1),
		PanelShadow: lipgloss.NewStyle().
			BorderStyle(lipgloss.ThickBorder()).
			BorderRight(true).
			BorderForeground(c.MutedText).
			Padding(0, 1),
		Overlay: lipgloss.NewStyle().Foreground(c.MutedText).Faint(true),
		Toggle:  lipgloss.NewStyle().Foreground(c.Cyan).Bold(true),

		Link:        lipgloss.NewStyle().Foreground(c.LightText),
		LinkDimmed:  lipgloss.NewStyle().Foreground(c.MutedText),
		LinkActive:  lipgloss.NewStyle().Foreground(c.Orange).Background(c.SelectedBackground).Bold(true),
		LinkHovered: lipgloss.NewStyle().Foreground(c.Cyan).Underline(true),

		Header:            lipgloss.NewStyle().Bold(true),
		HeaderHighlighted: lipgloss.NewStyle().Bold(true).Foreground(c.SubtleBackground).Background(c.Green),
	}
}

func newKanagawaColors() Colors {
	return Colors{
		Green:              lipgloss.AdaptiveColor{Light: "#4E7C5A", Dark: "#98BB6C"},
		Yellow:             lipgloss.AdaptiveColor{Light: "#A68A64", Dark: "#FF9E3B"},
		Red:                lipgloss.AdaptiveColor{Light: "#C34043", Dark: "#FF5D62"},
		Orange:             lipgloss.AdaptiveColor{Light: "#CC6B4E", Dark: "#FFA066"},
		Cyan:               lipgloss.AdaptiveColor{Light: "#5B8BBE", Dark: "#7E9CD8"},
		Violet:             lipgloss.AdaptiveColor{Light: "#674D7A", Dark: "#957FB8"},
		LightText:          lipgloss.AdaptiveColor{Light: "#2B2F42", Dark: "#DCD7BA"},
		MutedText:          lipgloss.AdaptiveColor{Light: "#6C7086", Dark: "#727169"},
		Border:             lipgloss.AdaptiveColor{Light: "#B5BDC5", Dark: "#363646"},
		SelectedBackground: lipgloss.AdaptiveColor{Light: "#E2E6F3", Dark: "#223249"},
		SubtleBackground:   lipgloss.AdaptiveColor{Light: "#F7F7FB", Dark: "#1F1F28"},
	}
}

func newGruvboxColors() Colors {
	return Colors{
		Green:              lipgloss.AdaptiveColor{Light: "#98971A", Dark: "#B8BB26"},
		Yellow:             lipgloss.AdaptiveColor{Light: "#D79921", Dark: "#FABD2F"},
		Red:                lipgloss.AdaptiveColor{Light: "#CC241D", Dark: "#FB4934"},
		Orange:             lipgloss.AdaptiveColor{Light: "#D65D0E", Dark: "#FE8019"},
		Cyan:               lipgloss.AdaptiveColor{Light: "#458588", Dark: "#83A598"},
		Violet:             lipgloss.AdaptiveColor{Light: "#8F3F71", Dark: "#B16286"},
		LightText:          lipgloss.AdaptiveColor{Light: "#3C3836", Dark: "#EBDBB2"},
		MutedText:          lipgloss.AdaptiveColor{Light: "#928374", Dark: "#BDAE93"},
		Border:             lipgloss.AdaptiveColor{Light: "#D5C4A1", Dark: "#504945"},
		SelectedBackground: lipgloss.AdaptiveColor{Light: "#F2E5BC", Dark: "#32302F"},
		SubtleBackground:   lipgloss.AdaptiveColor{Light: "#FBF1C7", Dark: "#282828"},
	}
}

// newTerminalColors uses ANSI indexes so the user's terminal palette applies.
func newTerminalColors() Colors {
	return Colors{
		Green:              lipgloss.Color("2"),
		Yellow:             lipgloss.Color("3"),
		Red:                lipgloss.Color("1"),
		Orange:             lipgloss.Color("208"),
		Cyan:               lipgloss.Color("6"),
		Violet:             lipgloss.Color("5"),
		LightText:          lipgloss.Color("7"),
		MutedText:          lipgloss.Color("8"),
		Border:             lipgloss.Color("8"),
		SelectedBackground: lipgloss.Color("8"),
		SubtleBackground:   lipgloss.Color("0"),
	}
}
