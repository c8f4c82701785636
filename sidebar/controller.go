// Package sidebar implements the collapsible sidebar state machine.
//
// The sidebar has two independent axes selected by the viewport width: on
// desktop it is collapsed or expanded, on mobile it is closed or open with
// a dismissible overlay. Crossing the breakpoint is a hard reset to the
// default state of the new axis.
package sidebar

import (
	"time"

	"github.com/grovetools/widgets/errors"
	"github.com/grovetools/widgets/logging"
	"github.com/grovetools/widgets/page"
	"github.com/grovetools/widgets/schedule"
	"github.com/sirupsen/logrus"
)

// DefaultBreakpoint is the widest viewport treated as mobile.
const DefaultBreakpoint = 768

const (
	taskItems    = "items"
	taskEntrance = "entrance"
	taskOverlay  = "overlay"
)

// Elements names the page elements the sidebar binds to.
type Elements struct {
	Sidebar string
	Toggle  string
	// MobileToggle is optional.
	MobileToggle string
	// Items are the navigation items animated by the sidebar.
	Items []string
}

// DefaultElements returns the identifiers used by the stock page, with
// navigation item ids supplied by the caller.
func DefaultElements(items ...string) Elements {
	return Elements{
		Sidebar:      "sidebar",
		Toggle:       "toggleBtn",
		MobileToggle: "mobileToggle",
		Items:        items,
	}
}

// IDs returns every identifier that is set.
func (e Elements) IDs() []string {
	var ids []string
	for _, b := range e.bindings() {
		if b.ID != "" {
			ids = append(ids, b.ID)
		}
	}
	return ids
}

func (e Elements) bindings() []page.Binding {
	bindings := []page.Binding{
		{Role: "sidebar", ID: e.Sidebar},
		{Role: "toggle", ID: e.Toggle},
		{Role: "mobile toggle", ID: e.MobileToggle, Optional: true},
	}
	for _, id := range e.Items {
		bindings = append(bindings, page.Binding{Role: "navigation item", ID: id})
	}
	return bindings
}

// Timing holds animation delays.
type Timing struct {
	CollapseStep   time.Duration
	ExpandStep     time.Duration
	EntranceDelay  time.Duration
	EntranceStep   time.Duration
	OverlayFadeIn  time.Duration
	OverlayFadeOut time.Duration
}

// DefaultTiming returns the stock animation delays.
func DefaultTiming() Timing {
	return Timing{
		CollapseStep:   50 * time.Millisecond,
		ExpandStep:     30 * time.Millisecond,
		EntranceDelay:  500 * time.Millisecond,
		EntranceStep:   100 * time.Millisecond,
		OverlayFadeIn:  10 * time.Millisecond,
		OverlayFadeOut: 300 * time.Millisecond,
	}
}

// Options configures a Controller.
type Options struct {
	Elements   Elements
	Page       page.Page
	Scheduler  schedule.Scheduler
	Width      int
	Breakpoint int
	Timing     Timing
	Renderer   Renderer
	Logger     *logrus.Entry
}

// Controller owns the sidebar state. It is driven from a single event loop.
type Controller struct {
	elements   Elements
	breakpoint int
	timing     Timing
	renderer   Renderer
	tasks      *schedule.Group
	logger     *logrus.Entry

	mobile  bool
	mode    Mode
	items   []ItemView
	overlay OverlayView
}

// New validates the options and returns a controller in the default state
// for the given viewport width.
func New(opts Options) (*Controller, error) {
	if err := page.Require("sidebar", opts.Page, opts.Elements.bindings()...); err != nil {
		return nil, err
	}
	if opts.Scheduler == nil {
		return nil, errors.New(errors.ErrCodeInternal, "sidebar: scheduler is required")
	}

	breakpoint := opts.Breakpoint
	if breakpoint <= 0 {
		breakpoint = DefaultBreakpoint
	}
	timing := opts.Timing
	if timing == (Timing{}) {
		timing = DefaultTiming()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewLogger("sidebar")
	}

	c := &Controller{
		elements:   opts.Elements,
		breakpoint: breakpoint,
		timing:     timing,
		renderer:   opts.Renderer,
		tasks:      schedule.NewGroup(opts.Scheduler),
		logger:     logger,
		items:      make([]ItemView, len(opts.Elements.Items)),
	}
	c.mobile = c.isMobile(opts.Width)
	c.reset()
	c.render()
	return c, nil
}

// Mode returns the current state on the active axis.
func (c *Controller) Mode() Mode { return c.mode }

// Mobile reports whether the mobile axis is active.
func (c *Controller) Mobile() bool { return c.mobile }

// Breakpoint returns the widest viewport treated as mobile.
func (c *Controller) Breakpoint() int { return c.breakpoint }

// Start plays the entrance animation: every item starts hidden and fades
// in, staggered by index.
func (c *Controller) Start() {
	c.tasks.Cancel(taskEntrance)
	for i := range c.items {
		i := i
		c.items[i] = itemEntering
		c.tasks.Schedule(taskEntrance, schedule.Stagger(c.timing.EntranceDelay, c.timing.EntranceStep, i), func() {
			c.items[i] = itemRest
			c.render()
		})
	}
	c.render()
}

// Toggle flips the sidebar on the active axis.
func (c *Controller) Toggle() {
	c.settleEntrance()
	if c.mobile {
		c.toggleMobile()
	} else {
		c.toggleDesktop()
	}
	c.logger.WithFields(logrus.Fields{"mode": c.mode, "mobile": c.mobile}).Debug("Sidebar toggled")
	c.render()
}

// ClickOverlay dismisses the open mobile sidebar.
func (c *Controller) ClickOverlay() {
	if !c.overlay.Present || !c.mobile || c.mode != ModeOpen {
		return
	}
	c.Toggle()
}

// Resize updates the viewport width. Crossing the breakpoint cancels all
// pending animations and resets to the default state of the new axis. It
// reports whether the axis changed.
func (c *Controller) Resize(width int) bool {
	mobile := c.isMobile(width)
	if mobile == c.mobile {
		return false
	}
	c.mobile = mobile
	c.tasks.CancelAll()
	c.reset()
	c.logger.WithFields(logrus.Fields{"width": width, "mobile": mobile}).Debug("Sidebar viewport class changed")
	c.render()
	return true
}

// HandleKey handles Escape (close an open mobile sidebar) and Ctrl/Cmd+B
// (toggle). It reports whether the key was consumed.
func (c *Controller) HandleKey(e page.KeyEvent) bool {
	switch {
	case e.Accelerator("b"):
		c.Toggle()
		return true
	case e.Is("escape") || e.Is("esc"):
		if c.mobile && c.mode == ModeOpen {
			c.Toggle()
			return true
		}
	}
	return false
}

// Presentation returns the current declarative view of the sidebar.
func (c *Controller) Presentation() Presentation {
	p := Presentation{
		Mode:    c.mode,
		Mobile:  c.mobile,
		Overlay: c.overlay,
		Items:   append([]ItemView(nil), c.items...),
		Toggle:  toggleFor(!c.mobile && c.mode == ModeExpanded),
	}
	switch c.mode {
	case ModeExpanded:
		p.Panel = PanelView{Expanded: true}
	case ModeOpen:
		p.Panel = PanelView{Shadow: true}
	case ModeClosed:
		p.Panel = PanelView{OffsetPercent: -100}
	}
	if c.elements.MobileToggle != "" {
		t := toggleFor(c.mobile && c.mode == ModeOpen)
		p.MobileToggle = &t
	}
	return p
}

func (c *Controller) isMobile(width int) bool {
	return width <= c.breakpoint
}

func (c *Controller) reset() {
	if c.mobile {
		c.mode = ModeClosed
	} else {
		c.mode = ModeCollapsed
	}
	c.overlay = OverlayView{}
	for i := range c.items {
		c.items[i] = itemRest
	}
}

// settleEntrance finishes a still-running entrance animation at once so
// that a toggle never leaves items hidden.
func (c *Controller) settleEntrance() {
	if c.tasks.Cancel(taskEntrance) == 0 {
		return
	}
	for i := range c.items {
		c.items[i] = itemRest
	}
}

func (c *Controller) toggleDesktop() {
	if c.mode == ModeExpanded {
		c.mode = ModeCollapsed
		c.animateItems(itemDimmed, c.timing.CollapseStep)
		return
	}
	c.mode = ModeExpanded
	c.animateItems(itemRest, c.timing.ExpandStep)
}

func (c *Controller) animateItems(target ItemView, step time.Duration) {
	c.tasks.Cancel(taskItems)
	for i := range c.items {
		i := i
		c.tasks.Schedule(taskItems, schedule.Stagger(0, step, i), func() {
			c.items[i] = target
			c.render()
		})
	}
}

func (c *Controller) toggleMobile() {
	if c.mode == ModeOpen {
		c.mode = ModeClosed
		c.overlay.Opacity = 0
		c.tasks.Replace(taskOverlay, c.timing.OverlayFadeOut, func() {
			c.overlay = OverlayView{}
			c.render()
		})
		return
	}

	c.mode = ModeOpen
	if !c.overlay.Present {
		c.overlay = OverlayView{Present: true}
	}
	c.tasks.Replace(taskOverlay, c.timing.OverlayFadeIn, func() {
		c.overlay.Opacity = 1
		c.render()
	})
}

func (c *Controller) render() {
	if c.renderer != nil {
		c.renderer.Render(c.Presentation())
	}
}
