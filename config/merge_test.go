package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMergeConfigs(t *testing.T) {
	rate := 0.25
	base := &Config{
		Form: FormConfig{
			Message:     LengthBounds{Min: 1, Max: 10},
			SubmitDelay: Duration(time.Second),
		},
		Navigation: NavigationConfig{Links: []LinkConfig{{ID: "a", Text: "A"}}},
		TUI:        TUIConfig{Theme: "gruvbox"},
		Extensions: map[string]interface{}{"logging": "base", "other": 1},
	}
	override := &Config{
		Form: FormConfig{
			SubmitDelay: Duration(3 * time.Second),
			SuccessRate: &rate,
		},
		Extensions: map[string]interface{}{"logging": "override"},
	}

	merged := mergeConfigs(base, override)

	assert.Equal(t, LengthBounds{Min: 1, Max: 10}, merged.Form.Message)
	assert.Equal(t, 3*time.Second, merged.Form.SubmitDelay.Std())
	assert.Same(t, &rate, override.Form.SuccessRate)
	assert.NotSame(t, &rate, merged.Form.SuccessRate)
	assert.InDelta(t, 0.25, *merged.Form.SuccessRate, 1e-9)
	assert.Equal(t, []LinkConfig{{ID: "a", Text: "A"}}, merged.Navigation.Links)
	assert.Equal(t, "gruvbox", merged.TUI.Theme)
	assert.Equal(t, "override", merged.Extensions["logging"])
	assert.Equal(t, 1, merged.Extensions["other"])

	assert.Equal(t, time.Second, base.Form.SubmitDelay.Std(), "base is not modified")
	assert.Equal(t, "base", base.Extensions["logging"])
}

func TestMergeConfigsReplacesLinks(t *testing.T) {
	base := &Config{Navigation: NavigationConfig{Links: DefaultLinks()}}
	override := &Config{Navigation: NavigationConfig{Links: []LinkConfig{{ID: "x", Text: "X"}}}}

	merged := mergeConfigs(base, override)
	assert.Equal(t, []LinkConfig{{ID: "x", Text: "X"}}, merged.Navigation.Links)
}
