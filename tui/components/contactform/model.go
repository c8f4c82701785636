// Package contactform renders the contact form controller as a bubbletea
// program.
package contactform

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/sirupsen/logrus"

	"github.com/grovetools/widgets/config"
	"github.com/grovetools/widgets/form"
	"github.com/grovetools/widgets/logging"
	"github.com/grovetools/widgets/page"
	"github.com/grovetools/widgets/schedule"
	"github.com/grovetools/widgets/tui"
	"github.com/grovetools/widgets/tui/keymap"
	"github.com/grovetools/widgets/tui/theme"
)

// Zone ids for mouse hit testing.
const (
	zoneSubmit = "contactform:submit"
	zoneField  = "contactform:field:"
	zoneNotice = "contactform:notice"
)

var fieldLabels = map[form.Field]string{
	form.FieldFullName: "Full name",
	form.FieldEmail:    "Email",
	form.FieldSubject:  "Subject",
	form.FieldMessage:  "Message",
}

// Options configures the model.
type Options struct {
	Config *config.Config
	Theme  *theme.Theme
	Keys   *keymap.FormKeyMap
	// Outcome overrides the random submission outcome.
	Outcome form.OutcomeProvider
	// Scheduler overrides the bubbletea scheduler, for tests.
	Scheduler schedule.Scheduler
	Logger    *logrus.Entry
}

// Model is the bubbletea model of the contact form.
type Model struct {
	ctl    *form.Controller
	sched  *tui.Scheduler
	pres   form.Presentation
	theme  *theme.Theme
	keys   keymap.FormKeyMap
	help   help.Model
	zones  *zone.Manager
	logger *logrus.Entry

	inputs  map[form.Field]*textinput.Model
	message textarea.Model
	spinner spinner.Model
	focus   int

	width    int
	reloads  int
	quitting bool
}

// New builds the controller and the widgets that render it.
func New(opts Options) (*Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = &config.Config{}
		cfg.SetDefaults()
	}
	m := &Model{
		theme:  opts.Theme,
		logger: opts.Logger,
		zones:  zone.New(),
		inputs: make(map[form.Field]*textinput.Model),
	}
	if m.theme == nil {
		m.theme = theme.NewThemeWithName(cfg.TUI.Theme)
	}
	if opts.Keys != nil {
		m.keys = *opts.Keys
	} else {
		m.keys = keymap.LoadForm(cfg)
	}
	if m.logger == nil {
		m.logger = logging.NewLogger("contactform")
	}

	sched := opts.Scheduler
	if sched == nil {
		m.sched = tui.NewScheduler()
		sched = m.sched
	}

	outcome := opts.Outcome
	if outcome == nil {
		rate := form.DefaultSuccessRate
		if cfg.Form.SuccessRate != nil {
			rate = *cfg.Form.SuccessRate
		}
		outcome = form.NewRandomOutcome(rate)
	}

	elements := form.DefaultElements()
	ctl, err := form.New(form.Options{
		Elements:  elements,
		Page:      page.NewSet(elements.IDs()...),
		Scheduler: sched,
		Rules:     RulesFromConfig(cfg.Form),
		Timing:    TimingFromConfig(cfg.Form),
		Outcome:   outcome,
		Renderer:  form.RenderFunc(func(p form.Presentation) { m.pres = p }),
		Reload:    m.reload,
		Logger:    m.logger,
	})
	if err != nil {
		m.zones.Close()
		return nil, err
	}
	m.ctl = ctl
	m.pres = ctl.Presentation()

	m.help = help.New()
	m.spinner = spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(m.theme.Spinner))
	m.buildInputs()
	m.setFocus(0)
	return m, nil
}

// RulesFromConfig converts the form section of widgets.yml.
func RulesFromConfig(c config.FormConfig) form.Rules {
	return form.Rules{
		FullName:         form.Bounds{Min: c.FullName.Min, Max: c.FullName.Max},
		Subject:          form.Bounds{Min: c.Subject.Min, Max: c.Subject.Max},
		Message:          form.Bounds{Min: c.Message.Min, Max: c.Message.Max},
		NearLimitPercent: c.NearLimitPercent,
		AtLimitPercent:   c.AtLimitPercent,
	}
}

// TimingFromConfig converts the form delays of widgets.yml.
func TimingFromConfig(c config.FormConfig) form.Timing {
	return form.Timing{
		SubmitDelay: c.SubmitDelay.Std(),
		NoticeTTL:   c.NoticeTTL.Std(),
		Shake:       c.Shake.Std(),
	}
}

// Controller exposes the underlying form controller.
func (m *Model) Controller() *form.Controller { return m.ctl }

// Reloads counts successful submissions.
func (m *Model) Reloads() int { return m.reloads }

// Close releases the zone manager.
func (m *Model) Close() { m.zones.Close() }

func (m *Model) buildInputs() {
	rules := m.ctl.Rules()
	limits := map[form.Field]int{
		form.FieldFullName: rules.FullName.Max,
		form.FieldEmail:    254,
		form.FieldSubject:  rules.Subject.Max,
	}
	placeholders := map[form.Field]string{
		form.FieldFullName: "Jane Doe",
		form.FieldEmail:    "jane@example.com",
		form.FieldSubject:  "What is this about?",
	}
	for _, f := range []form.Field{form.FieldFullName, form.FieldEmail, form.FieldSubject} {
		ti := textinput.New()
		ti.Placeholder = placeholders[f]
		// Leave room past the maximum so the too-long error can appear.
		ti.CharLimit = limits[f] + 10
		ti.Prompt = ""
		ti.Width = 48
		m.inputs[f] = &ti
	}

	ta := textarea.New()
	ta.Placeholder = "Your message"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(50)
	ta.SetHeight(5)
	m.message = ta
}

func (m *Model) focusedField() form.Field {
	return form.Fields[m.focus]
}

func (m *Model) setFocus(i int) {
	n := len(form.Fields)
	m.focus = ((i % n) + n) % n
	for f, in := range m.inputs {
		if f == m.focusedField() {
			in.Focus()
		} else {
			in.Blur()
		}
	}
	if m.focusedField() == form.FieldMessage {
		m.message.Focus()
	} else {
		m.message.Blur()
	}
}

func (m *Model) value(f form.Field) string {
	if f == form.FieldMessage {
		return m.message.Value()
	}
	return m.inputs[f].Value()
}

// reload mirrors a page reload after a successful submission.
func (m *Model) reload() {
	m.reloads++
	m.clearInputs()
}

func (m *Model) clearInputs() {
	for _, in := range m.inputs {
		in.Reset()
	}
	m.message.Reset()
	m.setFocus(0)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.schedCmd())
}

func (m *Model) schedCmd() tea.Cmd {
	if m.sched == nil {
		return nil
	}
	return m.sched.Cmd()
}
