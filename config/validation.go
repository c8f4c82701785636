package config

import (
	"fmt"

	"github.com/grovetools/widgets/errors"
)

// Validate checks that the configuration values are consistent.
func (c *Config) Validate() error {
	f := c.Form
	for name, b := range map[string]LengthBounds{
		"form.full_name": f.FullName,
		"form.subject":   f.Subject,
		"form.message":   f.Message,
	} {
		if b.Min < 0 || b.Max < 1 || b.Min > b.Max {
			return errors.ConfigInvalid(fmt.Sprintf("%s: min %d and max %d are not a valid range", name, b.Min, b.Max)).
				WithDetail("field", name)
		}
	}

	if f.NearLimitPercent < 1 || f.AtLimitPercent > 100 || f.NearLimitPercent > f.AtLimitPercent {
		return errors.ConfigInvalid(fmt.Sprintf("form: near_limit_percent (%d) must not exceed at_limit_percent (%d) and both must be within 1-100",
			f.NearLimitPercent, f.AtLimitPercent))
	}

	if f.SuccessRate != nil && (*f.SuccessRate < 0 || *f.SuccessRate > 1) {
		return errors.ConfigInvalid(fmt.Sprintf("form.success_rate must be between 0 and 1, got %v", *f.SuccessRate))
	}

	for name, d := range map[string]Duration{
		"form.submit_delay":        f.SubmitDelay,
		"form.notice_ttl":          f.NoticeTTL,
		"form.shake":               f.Shake,
		"sidebar.collapse_step":    c.Sidebar.CollapseStep,
		"sidebar.expand_step":      c.Sidebar.ExpandStep,
		"sidebar.entrance_delay":   c.Sidebar.EntranceDelay,
		"sidebar.entrance_step":    c.Sidebar.EntranceStep,
		"sidebar.overlay_fade_in":  c.Sidebar.OverlayFadeIn,
		"sidebar.overlay_fade_out": c.Sidebar.OverlayFadeOut,
		"navigation.highlight":     c.Navigation.Highlight,
	} {
		if d < 0 {
			return errors.ConfigInvalid(fmt.Sprintf("%s must not be negative", name)).WithDetail("field", name)
		}
	}

	if c.Sidebar.Breakpoint < 1 {
		return errors.ConfigInvalid("sidebar.breakpoint must be positive")
	}
	if c.Sidebar.CellWidth < 1 {
		return errors.ConfigInvalid("sidebar.cell_width must be positive")
	}

	if len(c.Navigation.Links) == 0 {
		return errors.ConfigInvalid("navigation.links must contain at least one link")
	}
	seen := make(map[string]bool, len(c.Navigation.Links))
	for i, l := range c.Navigation.Links {
		if l.ID == "" || l.Text == "" {
			return errors.ConfigInvalid(fmt.Sprintf("navigation.links[%d] requires id and text", i))
		}
		if seen[l.ID] {
			return errors.ConfigInvalid(fmt.Sprintf("navigation.links: duplicate id %q", l.ID)).
				WithDetail("id", l.ID)
		}
		seen[l.ID] = true
	}

	switch c.TUI.Theme {
	case "", "kanagawa", "gruvbox", "terminal":
	default:
		return errors.ConfigInvalid(fmt.Sprintf("tui.theme %q is not a known theme", c.TUI.Theme))
	}
	switch c.TUI.Icons {
	case "", "nerd", "ascii":
	default:
		return errors.ConfigInvalid(fmt.Sprintf("tui.icons must be nerd or ascii, got %q", c.TUI.Icons))
	}

	return nil
}
