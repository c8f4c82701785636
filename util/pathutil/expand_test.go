package pathutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	cwd, err := os.Getwd()
	require.NoError(t, err)
	t.Setenv("WIDGETS_TEST_DIR", "/var/log/widgets")

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/logs/form.log", filepath.Join(home, "logs", "form.log")},
		{"$WIDGETS_TEST_DIR/form.log", "/var/log/widgets/form.log"},
		{"logs/../form.log", filepath.Join(cwd, "form.log")},
		{"/abs/path.log", "/abs/path.log"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Expand(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
