package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/grovetools/widgets/config"
)

// Base holds the bindings every widget view shares.
type Base struct {
	Help key.Binding
	Quit key.Binding
}

// NewBase returns the shared bindings.
func NewBase() Base {
	return Base{
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "quit"),
		),
	}
}

// FormKeyMap drives the contact form view. Terminals report Ctrl+Enter
// inconsistently, so Submit also answers to ctrl+s.
type FormKeyMap struct {
	Base
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	Reset     key.Binding
	Dismiss   key.Binding
}

// NewFormKeyMap returns the default form bindings. Help moves to F1 so
// that "?" can be typed into the fields.
func NewFormKeyMap() FormKeyMap {
	base := NewBase()
	base.Help = key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("F1", "toggle help"),
	)
	return FormKeyMap{
		Base: base,
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("S-tab", "prev field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s", "ctrl+enter", "alt+enter"),
			key.WithHelp("C-s", "submit"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("C-r", "reset"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss notice"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k FormKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Submit, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k FormKeyMap) FullHelp() [][]key.Binding {
	return FullHelp(k)
}

// Sections implements SectionedKeyMap.
func (k FormKeyMap) Sections() []Section {
	return []Section{
		NewSection(SectionNavigation, k.NextField, k.PrevField),
		NewSection(SectionActions, k.Submit, k.Reset, k.Dismiss),
		NewSection(SectionSystem, k.Help, k.Quit),
	}
}

// SidebarKeyMap drives the sidebar view.
type SidebarKeyMap struct {
	Base
	Toggle key.Binding
	Close  key.Binding
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
}

// NewSidebarKeyMap returns the default sidebar bindings.
func NewSidebarKeyMap() SidebarKeyMap {
	base := NewBase()
	base.Quit = key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	)
	return SidebarKeyMap{
		Base: base,
		Toggle: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("C-b", "toggle sidebar"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close sidebar"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "open page"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k SidebarKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Select, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k SidebarKeyMap) FullHelp() [][]key.Binding {
	return FullHelp(k)
}

// Sections implements SectionedKeyMap.
func (k SidebarKeyMap) Sections() []Section {
	return []Section{
		NewSection(SectionNavigation, k.Up, k.Down, k.Select),
		NewSection(SectionActions, k.Toggle, k.Close),
		NewSection(SectionSystem, k.Help, k.Quit),
	}
}

// LoadForm returns the form bindings with overrides from cfg applied.
func LoadForm(cfg *config.Config) FormKeyMap {
	km := NewFormKeyMap()
	if kb := keybindings(cfg); kb != nil {
		ApplyOverrides(&km, kb.Form)
	}
	return km
}

// LoadSidebar returns the sidebar bindings with overrides from cfg applied.
func LoadSidebar(cfg *config.Config) SidebarKeyMap {
	km := NewSidebarKeyMap()
	if kb := keybindings(cfg); kb != nil {
		ApplyOverrides(&km, kb.Sidebar)
	}
	return km
}

func keybindings(cfg *config.Config) *config.KeybindingsConfig {
	if cfg == nil {
		return nil
	}
	return cfg.TUI.Keybindings
}
