// Package navigation tracks the active link of a navigation list and the
// page header that names it.
package navigation

import (
	"fmt"
	"time"

	"github.com/grovetools/widgets/errors"
	"github.com/grovetools/widgets/logging"
	"github.com/grovetools/widgets/page"
	"github.com/grovetools/widgets/schedule"
	"github.com/sirupsen/logrus"
)

const taskHighlight = "highlight"

// DefaultHighlight is how long the header stays highlighted after a click.
const DefaultHighlight = 2 * time.Second

// Link is one navigation entry. ID must resolve on the page.
type Link struct {
	ID   string
	Text string
}

// LinkView is the visual state of a link.
type LinkView struct {
	Link
	Active  bool
	Hovered bool
	OffsetX int
	Scale   float64
}

// HeaderView is the visual state of the page header.
type HeaderView struct {
	Text        string
	Highlighted bool
}

// Presentation is a declarative snapshot of the navigation.
type Presentation struct {
	Links  []LinkView
	Header HeaderView
}

// Renderer receives a new presentation after every state change.
type Renderer interface {
	Render(Presentation)
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func(Presentation)

// Render calls f.
func (f RenderFunc) Render(p Presentation) { f(p) }

// Options configures a Controller.
type Options struct {
	Links     []Link
	Header    string
	Page      page.Page
	Scheduler schedule.Scheduler
	Highlight time.Duration
	Renderer  Renderer
	Logger    *logrus.Entry
}

// Controller keeps exactly one link active.
type Controller struct {
	links     []Link
	highlight time.Duration
	renderer  Renderer
	tasks     *schedule.Group
	logger    *logrus.Entry

	active      int
	hovered     int
	current     string
	highlighted bool
}

// New validates the options and activates the first link.
func New(opts Options) (*Controller, error) {
	if len(opts.Links) == 0 {
		return nil, errors.ElementMissing("navigation", "links", "")
	}
	bindings := []page.Binding{{Role: "page header", ID: opts.Header}}
	for _, l := range opts.Links {
		bindings = append(bindings, page.Binding{Role: "navigation link", ID: l.ID})
	}
	if err := page.Require("navigation", opts.Page, bindings...); err != nil {
		return nil, err
	}
	if opts.Scheduler == nil {
		return nil, errors.New(errors.ErrCodeInternal, "navigation: scheduler is required")
	}

	highlight := opts.Highlight
	if highlight <= 0 {
		highlight = DefaultHighlight
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewLogger("navigation")
	}

	c := &Controller{
		links:     append([]Link(nil), opts.Links...),
		highlight: highlight,
		renderer:  opts.Renderer,
		tasks:     schedule.NewGroup(opts.Scheduler),
		logger:    logger,
		hovered:   -1,
		current:   opts.Links[0].Text,
	}
	c.render()
	return c, nil
}

// Links returns the navigation links in order.
func (c *Controller) Links() []Link {
	return append([]Link(nil), c.links...)
}

// Active returns the index of the active link.
func (c *Controller) Active() int { return c.active }

// CurrentPage returns the text of the active link.
func (c *Controller) CurrentPage() string { return c.current }

// HeaderText returns the page header label.
func (c *Controller) HeaderText() string {
	return fmt.Sprintf("Current Page: %s", c.current)
}

// Click activates the link at index i, updates the header and highlights it
// for the configured duration.
func (c *Controller) Click(i int) error {
	if i < 0 || i >= len(c.links) {
		return errors.InvalidInput(fmt.Sprintf("navigation: link index %d out of range", i)).
			WithDetail("index", i).
			WithDetail("count", len(c.links))
	}

	c.active = i
	c.current = c.links[i].Text
	c.highlighted = true
	c.tasks.Replace(taskHighlight, c.highlight, func() {
		c.highlighted = false
		c.render()
	})
	c.logger.WithField("page", c.current).Debug("Navigated")
	c.render()
	return nil
}

// Select activates the link with the given id.
func (c *Controller) Select(id string) error {
	for i, l := range c.links {
		if l.ID == id {
			return c.Click(i)
		}
	}
	return errors.InvalidInput(fmt.Sprintf("navigation: unknown link %q", id)).WithDetail("id", id)
}

// Hover applies the pointer-enter affordance to link i.
func (c *Controller) Hover(i int) {
	if i < 0 || i >= len(c.links) || c.hovered == i {
		return
	}
	c.hovered = i
	c.render()
}

// Leave reverts the pointer-enter affordance of link i.
func (c *Controller) Leave(i int) {
	if c.hovered != i {
		return
	}
	c.hovered = -1
	c.render()
}

// Presentation returns the current declarative view.
func (c *Controller) Presentation() Presentation {
	p := Presentation{
		Links: make([]LinkView, len(c.links)),
		Header: HeaderView{
			Text:        c.HeaderText(),
			Highlighted: c.highlighted,
		},
	}
	for i, l := range c.links {
		v := LinkView{Link: l, Active: i == c.active, Scale: 1}
		if i == c.hovered {
			v.Hovered = true
			v.OffsetX = 8
			v.Scale = 1.02
		}
		p.Links[i] = v
	}
	return p
}

func (c *Controller) render() {
	if c.renderer != nil {
		c.renderer.Render(c.Presentation())
	}
}
