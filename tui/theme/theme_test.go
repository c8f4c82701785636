package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewThemeWithName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"kanagawa", "kanagawa"},
		{"Gruvbox Dark", "gruvbox"},
		{"kanagawa_wave", "kanagawa"},
		{"terminal", "terminal"},
		{"", "kanagawa"},
		{"unknown", "kanagawa"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NewThemeWithName(tt.in).Name)
		})
	}
}

func TestIcons(t *testing.T) {
	defer UseIcons("nerd")

	UseIcons("ascii")
	assert.Equal(t, "=", Icons.ToggleIcon("bars"))
	assert.Equal(t, "x", Icons.ToggleIcon("times"))

	UseIcons("nerd")
	assert.Equal(t, nerdIcons.Times, Icons.ToggleIcon("times"))
	assert.Equal(t, nerdIcons.Bars, Icons.ToggleIcon("anything else"))
}
