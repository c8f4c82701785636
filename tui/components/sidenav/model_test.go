package sidenav

import (
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/widgets/config"
	"github.com/grovetools/widgets/errors"
	"github.com/grovetools/widgets/schedule"
	"github.com/grovetools/widgets/sidebar"
)

func newModel(t *testing.T, columns int, yml string) (*Model, *schedule.Manual) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg, err := config.LoadFromBytes([]byte(yml), config.FormatYAML)
	require.NoError(t, err)

	clock := schedule.NewManual()
	m, err := New(Options{
		Config:    cfg,
		Columns:   columns,
		Scheduler: clock,
		Logger:    logrus.NewEntry(logger),
	})
	require.NoError(t, err)
	t.Cleanup(m.Close)
	return m, clock
}

func TestDesktopToggleWithKeyboard(t *testing.T) {
	m, clock := newModel(t, 120, "")
	assert.False(t, m.sp.Mobile, "120 columns x 8 = 960 units")
	assert.Equal(t, sidebar.ModeCollapsed, m.sp.Mode)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	assert.Equal(t, sidebar.ModeExpanded, m.sp.Mode)
	assert.Equal(t, "Close sidebar", m.sp.Toggle.Label)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	assert.Equal(t, sidebar.ModeCollapsed, m.sp.Mode)
	clock.Flush()
	for _, item := range m.sp.Items {
		assert.InDelta(t, 0.7, item.Opacity, 1e-9)
	}
}

func TestEntranceAnimation(t *testing.T) {
	m, clock := newModel(t, 120, "")
	m.Init()
	for _, item := range m.sp.Items {
		assert.Zero(t, item.Opacity)
	}

	clock.Advance(500 * time.Millisecond)
	assert.Equal(t, 1.0, m.sp.Items[0].Opacity)
	assert.Zero(t, m.sp.Items[1].Opacity)

	clock.Flush()
	for _, item := range m.sp.Items {
		assert.Equal(t, 1.0, item.Opacity)
	}
}

func TestResizeCrossesBreakpoint(t *testing.T) {
	m, _ := newModel(t, 120, "")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	require.Equal(t, sidebar.ModeExpanded, m.sp.Mode)

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.True(t, m.sp.Mobile, "80 x 8 = 640 units")
	assert.Equal(t, sidebar.ModeClosed, m.sp.Mode)

	m.Update(tea.WindowSizeMsg{Width: 96, Height: 24})
	assert.True(t, m.sp.Mobile, "768 units is still mobile")

	m.Update(tea.WindowSizeMsg{Width: 97, Height: 24})
	assert.False(t, m.sp.Mobile)
	assert.Equal(t, sidebar.ModeCollapsed, m.sp.Mode)
}

func TestMobileOpenAndEscape(t *testing.T) {
	m, clock := newModel(t, 60, "")
	require.True(t, m.sp.Mobile)
	require.NotNil(t, m.sp.MobileToggle)
	assert.Contains(t, m.View(), "Open sidebar")

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	assert.Equal(t, sidebar.ModeOpen, m.sp.Mode)
	assert.True(t, m.sp.Overlay.Present)
	clock.Advance(10 * time.Millisecond)
	assert.Equal(t, 1.0, m.sp.Overlay.Opacity)
	assert.Contains(t, m.View(), "Close sidebar")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, sidebar.ModeClosed, m.sp.Mode)
	assert.True(t, m.sp.Overlay.Present, "overlay fades out first")
	clock.Advance(300 * time.Millisecond)
	assert.False(t, m.sp.Overlay.Present)
}

func TestMobileWithoutDedicatedToggle(t *testing.T) {
	m, _ := newModel(t, 60, "sidebar:\n  mobile_toggle: false\n")
	assert.Nil(t, m.sp.MobileToggle)
	assert.Contains(t, m.View(), "Open sidebar")
}

func TestNavigationKeys(t *testing.T) {
	m, clock := newModel(t, 120, "")
	assert.Equal(t, "Current Page: Home", m.np.Header.Text)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.True(t, m.np.Links[1].Hovered)
	assert.Equal(t, 8, m.np.Links[1].OffsetX)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.np.Links[1].Active)
	assert.False(t, m.np.Links[0].Active)
	assert.Equal(t, "Current Page: Dashboard", m.np.Header.Text)
	assert.True(t, m.np.Header.Highlighted)

	clock.Advance(2 * time.Second)
	assert.False(t, m.np.Header.Highlighted)

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, len(m.np.Links)-1, m.cursor, "cursor wraps")
	assert.False(t, m.np.Links[1].Hovered)
}

func TestConfiguredLinks(t *testing.T) {
	m, _ := newModel(t, 120, `
navigation:
  links:
    - {id: docs, text: Docs}
    - {id: blog, text: Blog}
`)
	require.Len(t, m.np.Links, 2)
	assert.Equal(t, "Current Page: Docs", m.np.Header.Text)
	assert.Len(t, m.sp.Items, 2)

	err := m.nav.Click(5)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestLinkZones(t *testing.T) {
	i, ok := linkIndex(linkZone(3))
	assert.True(t, ok)
	assert.Equal(t, 3, i)

	_, ok = linkIndex(zoneOverlay)
	assert.False(t, ok)
}

func TestQuit(t *testing.T) {
	m, _ := newModel(t, 120, "")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
