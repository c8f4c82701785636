package config

import (
	"fmt"
	"time"

	"github.com/invopop/jsonschema"
	"github.com/mitchellh/mapstructure"
)

// Duration is a time.Duration written as a Go duration string ("500ms").
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	*d = Duration(v)
	return nil
}

// MarshalText renders the duration string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// JSONSchema describes durations as strings in the generated schema.
func (Duration) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Pattern:     `^([0-9]+(\.[0-9]+)?(ns|us|µs|ms|s|m|h))+$`,
		Description: "Go duration string, e.g. 500ms or 2s",
	}
}

// LengthBounds is an inclusive character range.
type LengthBounds struct {
	Min int `yaml:"min" toml:"min" json:"min" jsonschema:"minimum=0"`
	Max int `yaml:"max" toml:"max" json:"max" jsonschema:"minimum=1"`
}

// FormConfig tunes the contact form.
type FormConfig struct {
	FullName         LengthBounds `yaml:"full_name,omitempty" toml:"full_name,omitempty" json:"full_name,omitempty" jsonschema:"description=Length limits for the full name"`
	Subject          LengthBounds `yaml:"subject,omitempty" toml:"subject,omitempty" json:"subject,omitempty" jsonschema:"description=Length limits for the subject"`
	Message          LengthBounds `yaml:"message,omitempty" toml:"message,omitempty" json:"message,omitempty" jsonschema:"description=Length limits for the message body"`
	NearLimitPercent int          `yaml:"near_limit_percent,omitempty" toml:"near_limit_percent,omitempty" json:"near_limit_percent,omitempty" jsonschema:"minimum=1,maximum=100"`
	AtLimitPercent   int          `yaml:"at_limit_percent,omitempty" toml:"at_limit_percent,omitempty" json:"at_limit_percent,omitempty" jsonschema:"minimum=1,maximum=100"`
	SubmitDelay      Duration     `yaml:"submit_delay,omitempty" toml:"submit_delay,omitempty" json:"submit_delay,omitempty"`
	NoticeTTL        Duration     `yaml:"notice_ttl,omitempty" toml:"notice_ttl,omitempty" json:"notice_ttl,omitempty"`
	Shake            Duration     `yaml:"shake,omitempty" toml:"shake,omitempty" json:"shake,omitempty"`
	// SuccessRate is the probability that a simulated submission succeeds.
	SuccessRate *float64 `yaml:"success_rate,omitempty" toml:"success_rate,omitempty" json:"success_rate,omitempty" jsonschema:"minimum=0,maximum=1"`
}

// SidebarConfig tunes the sidebar.
type SidebarConfig struct {
	// Breakpoint is the widest viewport, in units, treated as mobile.
	Breakpoint int `yaml:"breakpoint,omitempty" toml:"breakpoint,omitempty" json:"breakpoint,omitempty" jsonschema:"minimum=1"`
	// CellWidth converts terminal columns into viewport units.
	CellWidth      int      `yaml:"cell_width,omitempty" toml:"cell_width,omitempty" json:"cell_width,omitempty" jsonschema:"minimum=1"`
	MobileToggle   *bool    `yaml:"mobile_toggle,omitempty" toml:"mobile_toggle,omitempty" json:"mobile_toggle,omitempty"`
	CollapseStep   Duration `yaml:"collapse_step,omitempty" toml:"collapse_step,omitempty" json:"collapse_step,omitempty"`
	ExpandStep     Duration `yaml:"expand_step,omitempty" toml:"expand_step,omitempty" json:"expand_step,omitempty"`
	EntranceDelay  Duration `yaml:"entrance_delay,omitempty" toml:"entrance_delay,omitempty" json:"entrance_delay,omitempty"`
	EntranceStep   Duration `yaml:"entrance_step,omitempty" toml:"entrance_step,omitempty" json:"entrance_step,omitempty"`
	OverlayFadeIn  Duration `yaml:"overlay_fade_in,omitempty" toml:"overlay_fade_in,omitempty" json:"overlay_fade_in,omitempty"`
	OverlayFadeOut Duration `yaml:"overlay_fade_out,omitempty" toml:"overlay_fade_out,omitempty" json:"overlay_fade_out,omitempty"`
}

// LinkConfig is one navigation entry.
type LinkConfig struct {
	ID   string `yaml:"id" toml:"id" json:"id" jsonschema:"required,minLength=1"`
	Text string `yaml:"text" toml:"text" json:"text" jsonschema:"required,minLength=1"`
}

// NavigationConfig lists the navigation links.
type NavigationConfig struct {
	Links     []LinkConfig `yaml:"links,omitempty" toml:"links,omitempty" json:"links,omitempty"`
	Highlight Duration     `yaml:"highlight,omitempty" toml:"highlight,omitempty" json:"highlight,omitempty"`
}

// KeybindingSectionConfig maps snake_case action names to key strings.
type KeybindingSectionConfig map[string][]string

// KeybindingsConfig overrides the default key bindings per widget.
type KeybindingsConfig struct {
	Form    KeybindingSectionConfig `yaml:"form,omitempty" toml:"form,omitempty" json:"form,omitempty" jsonschema:"description=Form keybindings (next_field, prev_field, submit, reset, quit)"`
	Sidebar KeybindingSectionConfig `yaml:"sidebar,omitempty" toml:"sidebar,omitempty" json:"sidebar,omitempty" jsonschema:"description=Sidebar keybindings (toggle, close, up, down, select, quit)"`
}

// TUIConfig controls the terminal renderer.
type TUIConfig struct {
	Theme string `yaml:"theme,omitempty" toml:"theme,omitempty" json:"theme,omitempty" jsonschema:"enum=kanagawa,enum=gruvbox,enum=terminal"`

	// Icons selects nerd font glyphs or plain ASCII.
	Icons string `yaml:"icons,omitempty" toml:"icons,omitempty" json:"icons,omitempty" jsonschema:"enum=nerd,enum=ascii"`

	// Mouse enables click and hover handling.
	Mouse *bool `yaml:"mouse,omitempty" toml:"mouse,omitempty" json:"mouse,omitempty"`

	Keybindings *KeybindingsConfig `yaml:"keybindings,omitempty" toml:"keybindings,omitempty" json:"keybindings,omitempty"`
}

// Config is the contents of widgets.yml.
type Config struct {
	Version    string           `yaml:"version,omitempty" toml:"version,omitempty" json:"version,omitempty" jsonschema:"oneof_type=string;number"`
	Form       FormConfig       `yaml:"form,omitempty" toml:"form,omitempty" json:"form,omitempty"`
	Sidebar    SidebarConfig    `yaml:"sidebar,omitempty" toml:"sidebar,omitempty" json:"sidebar,omitempty"`
	Navigation NavigationConfig `yaml:"navigation,omitempty" toml:"navigation,omitempty" json:"navigation,omitempty"`
	TUI        TUIConfig        `yaml:"tui,omitempty" toml:"tui,omitempty" json:"tui,omitempty"`

	// Extensions holds top-level sections not described above, such as
	// "logging". Decode them with UnmarshalExtension.
	Extensions map[string]interface{} `yaml:"-" toml:"-" json:"-"`
}

var knownSections = map[string]bool{
	"version":    true,
	"form":       true,
	"sidebar":    true,
	"navigation": true,
	"tui":        true,
}

// DefaultLinks is the navigation shown when none is configured.
func DefaultLinks() []LinkConfig {
	return []LinkConfig{
		{ID: "nav-home", Text: "Home"},
		{ID: "nav-dashboard", Text: "Dashboard"},
		{ID: "nav-projects", Text: "Projects"},
		{ID: "nav-messages", Text: "Messages"},
		{ID: "nav-settings", Text: "Settings"},
	}
}

// SetDefaults fills every unset value.
func (c *Config) SetDefaults() {
	if c.Version == "" {
		c.Version = "1.0"
	}

	f := &c.Form
	setBounds(&f.FullName, 2, 50)
	setBounds(&f.Subject, 5, 100)
	setBounds(&f.Message, 10, 1000)
	setInt(&f.NearLimitPercent, 75)
	setInt(&f.AtLimitPercent, 90)
	setDuration(&f.SubmitDelay, 2*time.Second)
	setDuration(&f.NoticeTTL, 5*time.Second)
	setDuration(&f.Shake, 500*time.Millisecond)
	if f.SuccessRate == nil {
		rate := 0.9
		f.SuccessRate = &rate
	}

	s := &c.Sidebar
	setInt(&s.Breakpoint, 768)
	setInt(&s.CellWidth, 8)
	if s.MobileToggle == nil {
		on := true
		s.MobileToggle = &on
	}
	setDuration(&s.CollapseStep, 50*time.Millisecond)
	setDuration(&s.ExpandStep, 30*time.Millisecond)
	setDuration(&s.EntranceDelay, 500*time.Millisecond)
	setDuration(&s.EntranceStep, 100*time.Millisecond)
	setDuration(&s.OverlayFadeIn, 10*time.Millisecond)
	setDuration(&s.OverlayFadeOut, 300*time.Millisecond)

	if len(c.Navigation.Links) == 0 {
		c.Navigation.Links = DefaultLinks()
	}
	setDuration(&c.Navigation.Highlight, 2*time.Second)

	if c.TUI.Theme == "" {
		c.TUI.Theme = "kanagawa"
	}
	if c.TUI.Icons == "" {
		c.TUI.Icons = "nerd"
	}
	if c.TUI.Mouse == nil {
		on := true
		c.TUI.Mouse = &on
	}
}

func setBounds(b *LengthBounds, min, max int) {
	if b.Min == 0 && b.Max == 0 {
		b.Min, b.Max = min, max
	}
}

func setInt(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}

func setDuration(d *Duration, def time.Duration) {
	if *d == 0 {
		*d = Duration(def)
	}
}

// UnmarshalExtension decodes a specific extension's configuration from the
// loaded widgets.yml into the provided target struct. The target must be a
// pointer. A missing section leaves the target untouched.
//
// Example:
//
//	var logCfg logging.Config
//	err := cfg.UnmarshalExtension("logging", &logCfg)
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "yaml",
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}
