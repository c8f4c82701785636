package keymap

import "github.com/charmbracelet/bubbles/key"

// Standard section names shared by the widget help views.
const (
	SectionNavigation = "Navigation"
	SectionActions    = "Actions"
	SectionSystem     = "System"
)

// Section groups bindings under a heading for help display.
type Section struct {
	Name     string
	Bindings []key.Binding
}

// SectionedKeyMap is implemented by keymaps that organize their bindings
// into sections.
type SectionedKeyMap interface {
	Sections() []Section
}

// NewSection creates a section with a custom name.
func NewSection(name string, bindings ...key.Binding) Section {
	return Section{Name: name, Bindings: bindings}
}

// FilterEnabled returns a new slice containing only enabled bindings.
func (s Section) FilterEnabled() []key.Binding {
	var result []key.Binding
	for _, b := range s.Bindings {
		if b.Enabled() {
			result = append(result, b)
		}
	}
	return result
}

// IsEmpty returns true if the section has no enabled bindings.
func (s Section) IsEmpty() bool {
	return len(s.FilterEnabled()) == 0
}

// FullHelp converts sections into the column layout used by bubbles/help.
func FullHelp(km SectionedKeyMap) [][]key.Binding {
	var groups [][]key.Binding
	for _, s := range km.Sections() {
		if bindings := s.FilterEnabled(); len(bindings) > 0 {
			groups = append(groups, bindings)
		}
	}
	return groups
}
