package sidebar

// Mode is the sidebar state on its current axis.
type Mode string

const (
	// Desktop axis
	ModeCollapsed Mode = "collapsed"
	ModeExpanded  Mode = "expanded"
	// Mobile axis
	ModeClosed Mode = "closed"
	ModeOpen   Mode = "open"
)

// Icon names used by the toggle controls.
const (
	IconBars  = "bars"
	IconTimes = "times"
)

// ItemView is the visual state of one navigation item.
type ItemView struct {
	Opacity float64
	Scale   float64
	OffsetX int
}

var (
	itemRest     = ItemView{Opacity: 1, Scale: 1}
	itemDimmed   = ItemView{Opacity: 0.7, Scale: 0.95}
	itemEntering = ItemView{Opacity: 0, Scale: 1, OffsetX: -20}
)

// OverlayView describes the mobile backdrop.
type OverlayView struct {
	Present bool
	Opacity float64
}

// PanelView describes the sidebar container.
type PanelView struct {
	Expanded bool
	// OffsetPercent is the horizontal slide, -100 meaning fully off-screen.
	OffsetPercent int
	Shadow        bool
}

// ToggleView is the icon and accessible label of a toggle control.
type ToggleView struct {
	Icon  string
	Label string
}

func toggleFor(open bool) ToggleView {
	if open {
		return ToggleView{Icon: IconTimes, Label: "Close sidebar"}
	}
	return ToggleView{Icon: IconBars, Label: "Open sidebar"}
}

// Presentation is a declarative snapshot of the sidebar.
type Presentation struct {
	Mode    Mode
	Mobile  bool
	Panel   PanelView
	Overlay OverlayView
	Items   []ItemView
	Toggle  ToggleView
	// MobileToggle is nil when the page has no mobile toggle control.
	MobileToggle *ToggleView
}

// Renderer receives a new presentation after every state change.
type Renderer interface {
	Render(Presentation)
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func(Presentation)

// Render calls f.
func (f RenderFunc) Render(p Presentation) { f(p) }
