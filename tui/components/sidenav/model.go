// Package sidenav renders the sidebar and navigation controllers as one
// bubbletea program.
package sidenav

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/sirupsen/logrus"

	"github.com/grovetools/widgets/config"
	"github.com/grovetools/widgets/logging"
	"github.com/grovetools/widgets/navigation"
	"github.com/grovetools/widgets/page"
	"github.com/grovetools/widgets/schedule"
	"github.com/grovetools/widgets/sidebar"
	"github.com/grovetools/widgets/tui"
	"github.com/grovetools/widgets/tui/keymap"
	"github.com/grovetools/widgets/tui/theme"
)

// HeaderID is the element id of the page header.
const HeaderID = "pageTitle"

// Options configures the model.
type Options struct {
	Config *config.Config
	Theme  *theme.Theme
	Keys   *keymap.SidebarKeyMap
	// Columns is the terminal width before the first resize message.
	Columns int
	// Scheduler overrides the bubbletea scheduler, for tests.
	Scheduler schedule.Scheduler
	Logger    *logrus.Entry
}

// Model is the bubbletea model of the sidebar page.
type Model struct {
	side  *sidebar.Controller
	nav   *navigation.Controller
	sched *tui.Scheduler
	sp    sidebar.Presentation
	np    navigation.Presentation

	theme  *theme.Theme
	keys   keymap.SidebarKeyMap
	help   help.Model
	zones  *zone.Manager
	logger *logrus.Entry

	cellWidth int
	columns   int
	rows      int
	cursor    int
	quitting  bool
}

// New builds both controllers against a page holding the sidebar, its
// toggles, the header and one element per configured link.
func New(opts Options) (*Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = &config.Config{}
		cfg.SetDefaults()
	}
	m := &Model{
		theme:     opts.Theme,
		logger:    opts.Logger,
		zones:     zone.New(),
		cellWidth: cfg.Sidebar.CellWidth,
		columns:   opts.Columns,
	}
	if m.theme == nil {
		m.theme = theme.NewThemeWithName(cfg.TUI.Theme)
	}
	if opts.Keys != nil {
		m.keys = *opts.Keys
	} else {
		m.keys = keymap.LoadSidebar(cfg)
	}
	if m.logger == nil {
		m.logger = logging.NewLogger("sidenav")
	}
	if m.cellWidth <= 0 {
		m.cellWidth = 8
	}

	sched := opts.Scheduler
	if sched == nil {
		m.sched = tui.NewScheduler()
		sched = m.sched
	}

	links := make([]navigation.Link, len(cfg.Navigation.Links))
	ids := make([]string, len(cfg.Navigation.Links))
	for i, l := range cfg.Navigation.Links {
		links[i] = navigation.Link{ID: l.ID, Text: l.Text}
		ids[i] = l.ID
	}

	elements := sidebar.DefaultElements(ids...)
	if cfg.Sidebar.MobileToggle != nil && !*cfg.Sidebar.MobileToggle {
		elements.MobileToggle = ""
	}
	pg := page.NewSet(elements.IDs()...)
	pg.Add(HeaderID)

	side, err := sidebar.New(sidebar.Options{
		Elements:   elements,
		Page:       pg,
		Scheduler:  sched,
		Width:      m.viewport(),
		Breakpoint: cfg.Sidebar.Breakpoint,
		Timing:     TimingFromConfig(cfg.Sidebar),
		Renderer:   sidebar.RenderFunc(func(p sidebar.Presentation) { m.sp = p }),
		Logger:     m.logger,
	})
	if err != nil {
		m.zones.Close()
		return nil, err
	}
	nav, err := navigation.New(navigation.Options{
		Links:     links,
		Header:    HeaderID,
		Page:      pg,
		Scheduler: sched,
		Highlight: cfg.Navigation.Highlight.Std(),
		Renderer:  navigation.RenderFunc(func(p navigation.Presentation) { m.np = p }),
		Logger:    m.logger,
	})
	if err != nil {
		m.zones.Close()
		return nil, err
	}

	m.side, m.nav = side, nav
	m.sp, m.np = side.Presentation(), nav.Presentation()
	m.help = help.New()
	return m, nil
}

// TimingFromConfig converts the sidebar delays of widgets.yml.
func TimingFromConfig(c config.SidebarConfig) sidebar.Timing {
	return sidebar.Timing{
		CollapseStep:   c.CollapseStep.Std(),
		ExpandStep:     c.ExpandStep.Std(),
		EntranceDelay:  c.EntranceDelay.Std(),
		EntranceStep:   c.EntranceStep.Std(),
		OverlayFadeIn:  c.OverlayFadeIn.Std(),
		OverlayFadeOut: c.OverlayFadeOut.Std(),
	}
}

// Sidebar exposes the sidebar controller.
func (m *Model) Sidebar() *sidebar.Controller { return m.side }

// Navigation exposes the navigation controller.
func (m *Model) Navigation() *navigation.Controller { return m.nav }

// Close releases the zone manager.
func (m *Model) Close() { m.zones.Close() }

// viewport converts terminal columns into viewport units.
func (m *Model) viewport() int {
	return m.columns * m.cellWidth
}

// Init starts the entrance animation.
func (m *Model) Init() tea.Cmd {
	m.side.Start()
	return m.schedCmd()
}

func (m *Model) schedCmd() tea.Cmd {
	if m.sched == nil {
		return nil
	}
	return m.sched.Cmd()
}
