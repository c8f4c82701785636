// Package form implements the contact form controller: per-field
// validation, the message character counter and a simulated asynchronous
// submission.
package form

import (
	"time"

	"github.com/google/uuid"
	"github.com/grovetools/widgets/errors"
	"github.com/grovetools/widgets/logging"
	"github.com/grovetools/widgets/page"
	"github.com/grovetools/widgets/schedule"
	"github.com/sirupsen/logrus"
)

const (
	msgFixErrors    = "Please fix the errors above before submitting"
	msgSubmitFailed = "Something went wrong. Please try again."
)

const (
	taskSubmit = "submit"
	taskNotice = "notice"
)

// Elements names the page elements the form binds to.
type Elements struct {
	Form          string
	Submit        string
	Spinner       string
	FullName      string
	Email         string
	Subject       string
	Message       string
	FullNameError string
	EmailError    string
	SubjectError  string
	MessageError  string
	Counter       string
}

// DefaultElements returns the identifiers used by the stock contact page.
func DefaultElements() Elements {
	return Elements{
		Form:          "contactForm",
		Submit:        "submitBtn",
		Spinner:       "loadingSpinner",
		FullName:      "fullName",
		Email:         "email",
		Subject:       "subject",
		Message:       "message",
		FullNameError: "fullNameError",
		EmailError:    "emailError",
		SubjectError:  "subjectError",
		MessageError:  "messageError",
		Counter:       "charCounter",
	}
}

// IDs returns every identifier, in binding order.
func (e Elements) IDs() []string {
	bindings := e.bindings()
	ids := make([]string, 0, len(bindings))
	for _, b := range bindings {
		ids = append(ids, b.ID)
	}
	return ids
}

func (e Elements) bindings() []page.Binding {
	return []page.Binding{
		{Role: "form", ID: e.Form},
		{Role: "submit", ID: e.Submit},
		{Role: "spinner", ID: e.Spinner},
		{Role: "full name input", ID: e.FullName},
		{Role: "email input", ID: e.Email},
		{Role: "subject input", ID: e.Subject},
		{Role: "message input", ID: e.Message},
		{Role: "full name error", ID: e.FullNameError},
		{Role: "email error", ID: e.EmailError},
		{Role: "subject error", ID: e.SubjectError},
		{Role: "message error", ID: e.MessageError},
		{Role: "character counter", ID: e.Counter},
	}
}

// Timing holds the delays used by the form.
type Timing struct {
	SubmitDelay time.Duration
	NoticeTTL   time.Duration
	Shake       time.Duration
}

// DefaultTiming returns the stock delays.
func DefaultTiming() Timing {
	return Timing{
		SubmitDelay: 2 * time.Second,
		NoticeTTL:   5 * time.Second,
		Shake:       500 * time.Millisecond,
	}
}

// Options configures a Controller. Page and Scheduler are required.
type Options struct {
	Elements  Elements
	Page      page.Page
	Scheduler schedule.Scheduler
	Rules     Rules
	Timing    Timing
	Outcome   OutcomeProvider
	Renderer  Renderer
	// Reload is called after a successful submission, once the form state
	// has been discarded.
	Reload func()
	Logger *logrus.Entry
}

// Controller owns the form state. It is driven from a single event loop.
type Controller struct {
	elements Elements
	rules    Rules
	timing   Timing
	outcome  OutcomeProvider
	renderer Renderer
	reload   func()
	tasks    *schedule.Group
	logger   *logrus.Entry

	state    FormState
	shaking  map[Field]bool
	notices  []Notice
	noticeID int
	attempt  string
	lastErr  error
}

// New validates the options and returns a controller.
func New(opts Options) (*Controller, error) {
	if err := page.Require("form", opts.Page, opts.Elements.bindings()...); err != nil {
		return nil, err
	}
	if opts.Scheduler == nil {
		return nil, errors.New(errors.ErrCodeInternal, "form: scheduler is required")
	}

	rules := opts.Rules
	if rules == (Rules{}) {
		rules = DefaultRules()
	}
	timing := opts.Timing
	if timing == (Timing{}) {
		timing = DefaultTiming()
	}
	outcome := opts.Outcome
	if outcome == nil {
		outcome = NewRandomOutcome(DefaultSuccessRate)
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewLogger("form")
	}

	c := &Controller{
		elements: opts.Elements,
		rules:    rules,
		timing:   timing,
		outcome:  outcome,
		renderer: opts.Renderer,
		reload:   opts.Reload,
		tasks:    schedule.NewGroup(opts.Scheduler),
		logger:   logger,
		state:    newFormState(),
		shaking:  make(map[Field]bool),
	}
	c.render()
	return c, nil
}

// Elements returns the bound element identifiers.
func (c *Controller) Elements() Elements { return c.elements }

// Rules returns the validation limits in use.
func (c *Controller) Rules() Rules { return c.rules }

// State returns a copy of the form state.
func (c *Controller) State() FormState {
	fields := make(map[Field]FieldState, len(c.state.Fields))
	for f, s := range c.state.Fields {
		fields[f] = s
	}
	return FormState{Fields: fields, Submitting: c.state.Submitting}
}

// LastError returns the error of the most recent failed submission.
func (c *Controller) LastError() error { return c.lastErr }

// Input records a new value for f and validates it.
func (c *Controller) Input(f Field, text string) Result {
	c.state.set(f, text)
	r := c.validate(f)
	c.render()
	return r
}

// Blur validates f with its current value.
func (c *Controller) Blur(f Field) Result {
	r := c.validate(f)
	c.render()
	return r
}

// HandleKey runs the submit accelerator (Ctrl/Cmd+Enter). It reports
// whether the key was consumed.
func (c *Controller) HandleKey(e page.KeyEvent) bool {
	if !e.Accelerator("enter") {
		return false
	}
	if err := c.Submit(); err != nil {
		c.logger.WithError(err).Debug("Submit via keyboard rejected")
	}
	return true
}

// Submit validates every field and, when all pass, starts the simulated
// submission.
func (c *Controller) Submit() error {
	if c.state.Submitting {
		return errors.SubmitInProgress(c.attempt)
	}

	var invalid []string
	for _, f := range Fields {
		if r := c.validate(f); !r.Valid {
			invalid = append(invalid, string(f))
		}
	}
	if len(invalid) > 0 {
		c.showNotice(NoticeInvalid, msgFixErrors)
		c.render()
		return errors.ValidationFailed(invalid)
	}

	c.state.Submitting = true
	c.attempt = uuid.NewString()
	c.lastErr = nil
	attempt := c.attempt
	c.tasks.Replace(taskSubmit, c.timing.SubmitDelay, func() { c.finishSubmit(attempt) })
	c.logger.WithField("attempt", attempt).Info("Submitting contact form")
	c.render()
	return nil
}

func (c *Controller) finishSubmit(attempt string) {
	if !c.state.Submitting || attempt != c.attempt {
		return
	}
	log := c.logger.WithField("attempt", attempt)

	if err := c.outcome.Outcome(); err != nil {
		c.state.Submitting = false
		c.lastErr = errors.SubmitFailed(attempt, err)
		log.WithError(err).Warn("Contact form submission failed")
		c.showNotice(NoticeSubmitFailed, msgSubmitFailed)
		c.render()
		return
	}

	log.Info("Contact form submitted")
	c.Reset()
	if c.reload != nil {
		c.reload()
	}
}

// Reset discards all state and pending tasks, as a page reload would.
func (c *Controller) Reset() {
	c.tasks.CancelAll()
	c.state = newFormState()
	c.shaking = make(map[Field]bool)
	c.notices = nil
	c.attempt = ""
	c.render()
}

// DismissNotice removes a notice before its timeout.
func (c *Controller) DismissNotice(id int) {
	c.removeNotice(id)
	c.render()
}

// Presentation returns the current declarative view of the form.
func (c *Controller) Presentation() Presentation {
	p := Presentation{
		Fields:         make(map[Field]FieldView, len(Fields)),
		Counter:        c.rules.Count(c.state.Fields[FieldMessage].Raw),
		Notices:        append([]Notice(nil), c.notices...),
		Submitting:     c.state.Submitting,
		SubmitDisabled: c.state.Submitting,
		SpinnerVisible: c.state.Submitting,
	}
	for _, f := range Fields {
		s := c.state.Fields[f]
		msg := s.ErrorMessage()
		p.Fields[f] = FieldView{
			Value:   s.Raw,
			Errored: msg != "",
			Message: msg,
			Shake:   c.shaking[f],
		}
	}
	return p
}

func (c *Controller) validate(f Field) Result {
	r := c.rules.Validate(f, c.state.Fields[f].Raw)
	c.state.record(f, r)
	if r.Valid {
		return r
	}

	c.shaking[f] = true
	c.tasks.Replace("shake:"+string(f), c.timing.Shake, func() {
		delete(c.shaking, f)
		c.render()
	})
	return r
}

func (c *Controller) showNotice(kind NoticeKind, message string) {
	c.noticeID++
	id := c.noticeID
	c.notices = append(c.notices, Notice{ID: id, Kind: kind, Message: message})
	// Notices stack; each expires on its own.
	c.tasks.Schedule(taskNotice, c.timing.NoticeTTL, func() {
		c.removeNotice(id)
		c.render()
	})
}

func (c *Controller) removeNotice(id int) {
	for i, n := range c.notices {
		if n.ID == id {
			c.notices = append(c.notices[:i], c.notices[i+1:]...)
			return
		}
	}
}

func (c *Controller) render() {
	if c.renderer != nil {
		c.renderer.Render(c.Presentation())
	}
}
