package config

// mergeConfigs overlays the set values of override onto base and returns
// the result. Neither input is modified.
func mergeConfigs(base, override *Config) *Config {
	out := *base

	if override.Version != "" {
		out.Version = override.Version
	}

	// Form
	of, bf := override.Form, &out.Form
	mergeBounds(&bf.FullName, of.FullName)
	mergeBounds(&bf.Subject, of.Subject)
	mergeBounds(&bf.Message, of.Message)
	mergeInt(&bf.NearLimitPercent, of.NearLimitPercent)
	mergeInt(&bf.AtLimitPercent, of.AtLimitPercent)
	mergeDuration(&bf.SubmitDelay, of.SubmitDelay)
	mergeDuration(&bf.NoticeTTL, of.NoticeTTL)
	mergeDuration(&bf.Shake, of.Shake)
	if of.SuccessRate != nil {
		rate := *of.SuccessRate
		bf.SuccessRate = &rate
	}

	// Sidebar
	os, bs := override.Sidebar, &out.Sidebar
	mergeInt(&bs.Breakpoint, os.Breakpoint)
	mergeInt(&bs.CellWidth, os.CellWidth)
	if os.MobileToggle != nil {
		on := *os.MobileToggle
		bs.MobileToggle = &on
	}
	mergeDuration(&bs.CollapseStep, os.CollapseStep)
	mergeDuration(&bs.ExpandStep, os.ExpandStep)
	mergeDuration(&bs.EntranceDelay, os.EntranceDelay)
	mergeDuration(&bs.EntranceStep, os.EntranceStep)
	mergeDuration(&bs.OverlayFadeIn, os.OverlayFadeIn)
	mergeDuration(&bs.OverlayFadeOut, os.OverlayFadeOut)

	// Navigation: a configured link list replaces the base list wholesale
	if len(override.Navigation.Links) > 0 {
		out.Navigation.Links = append([]LinkConfig(nil), override.Navigation.Links...)
	} else {
		out.Navigation.Links = append([]LinkConfig(nil), base.Navigation.Links...)
	}
	mergeDuration(&out.Navigation.Highlight, override.Navigation.Highlight)

	if override.TUI.Theme != "" {
		out.TUI.Theme = override.TUI.Theme
	}
	if override.TUI.Icons != "" {
		out.TUI.Icons = override.TUI.Icons
	}
	if override.TUI.Keybindings != nil {
		out.TUI.Keybindings = override.TUI.Keybindings
	}
	if override.TUI.Mouse != nil {
		on := *override.TUI.Mouse
		out.TUI.Mouse = &on
	}

	// Extensions merge per top-level key
	if len(base.Extensions) > 0 || len(override.Extensions) > 0 {
		out.Extensions = make(map[string]interface{}, len(base.Extensions)+len(override.Extensions))
		for k, v := range base.Extensions {
			out.Extensions[k] = v
		}
		for k, v := range override.Extensions {
			out.Extensions[k] = v
		}
	}

	return &out
}

func mergeBounds(dst *LengthBounds, src LengthBounds) {
	if src != (LengthBounds{}) {
		*dst = src
	}
}

func mergeInt(dst *int, src int) {
	if src != 0 {
		*dst = src
	}
}

func mergeDuration(dst *Duration, src Duration) {
	if src != 0 {
		*dst = src
	}
}
