package navigation

import (
	"io"
	"testing"
	"time"

	"github.com/grovetools/widgets/errors"
	"github.com/grovetools/widgets/page"
	"github.com/grovetools/widgets/schedule"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLinks = []Link{
	{ID: "nav-home", Text: "Home"},
	{ID: "nav-projects", Text: "Projects"},
	{ID: "nav-settings", Text: "Settings"},
}

func quietLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func newController(t *testing.T) (*Controller, *schedule.Manual) {
	t.Helper()
	clock := schedule.NewManual()
	c, err := New(Options{
		Links:     testLinks,
		Header:    "pageHeader",
		Page:      page.NewSet("pageHeader", "nav-home", "nav-projects", "nav-settings"),
		Scheduler: clock,
		Logger:    quietLogger(),
	})
	require.NoError(t, err)
	return c, clock
}

func activeCount(p Presentation) int {
	n := 0
	for _, l := range p.Links {
		if l.Active {
			n++
		}
	}
	return n
}

func TestNewRequiresLinksAndHeader(t *testing.T) {
	_, err := New(Options{Header: "pageHeader", Page: page.NewSet("pageHeader"), Scheduler: schedule.NewManual()})
	assert.True(t, errors.Is(err, errors.ErrCodeElementMissing))

	_, err = New(Options{Links: testLinks, Page: page.NewSet("nav-home", "nav-projects", "nav-settings"), Scheduler: schedule.NewManual(), Logger: quietLogger()})
	assert.True(t, errors.Is(err, errors.ErrCodeElementMissing))
}

func TestFirstLinkActiveByDefault(t *testing.T) {
	c, _ := newController(t)
	p := c.Presentation()
	assert.Equal(t, 0, c.Active())
	assert.Equal(t, 1, activeCount(p))
	assert.True(t, p.Links[0].Active)
	assert.Equal(t, "Home", c.CurrentPage())
	assert.False(t, p.Header.Highlighted)
}

func TestClickActivatesExactlyOne(t *testing.T) {
	c, _ := newController(t)

	for i, l := range testLinks {
		require.NoError(t, c.Click(i))
		p := c.Presentation()
		assert.Equal(t, 1, activeCount(p))
		assert.True(t, p.Links[i].Active)
		assert.Equal(t, l.Text, c.CurrentPage())
		assert.Equal(t, "Current Page: "+l.Text, p.Header.Text)
	}
}

func TestClickOutOfRange(t *testing.T) {
	c, _ := newController(t)
	require.NoError(t, c.Click(1))

	err := c.Click(3)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
	assert.Equal(t, 1, c.Active(), "state unchanged")

	assert.Error(t, c.Click(-1))
}

func TestSelectByID(t *testing.T) {
	c, _ := newController(t)
	require.NoError(t, c.Select("nav-settings"))
	assert.Equal(t, 2, c.Active())
	assert.True(t, errors.Is(c.Select("nope"), errors.ErrCodeInvalidInput))
}

func TestHeaderHighlightReverts(t *testing.T) {
	c, clock := newController(t)

	require.NoError(t, c.Click(1))
	assert.True(t, c.Presentation().Header.Highlighted)

	clock.Advance(1500 * time.Millisecond)
	require.NoError(t, c.Click(2))

	clock.Advance(1500 * time.Millisecond)
	assert.True(t, c.Presentation().Header.Highlighted, "second click restarted the highlight")

	clock.Advance(500 * time.Millisecond)
	assert.False(t, c.Presentation().Header.Highlighted)
}

func TestHoverAffordance(t *testing.T) {
	c, _ := newController(t)

	c.Hover(1)
	p := c.Presentation()
	assert.True(t, p.Links[1].Hovered)
	assert.Equal(t, 8, p.Links[1].OffsetX)
	assert.Equal(t, 1.02, p.Links[1].Scale)
	assert.Equal(t, 0, c.Active(), "hover does not change selection")

	c.Leave(0)
	assert.True(t, c.Presentation().Links[1].Hovered, "leaving another link is a no-op")

	c.Leave(1)
	p = c.Presentation()
	assert.False(t, p.Links[1].Hovered)
	assert.Equal(t, 1.0, p.Links[1].Scale)
	assert.Equal(t, 0, p.Links[1].OffsetX)
}
