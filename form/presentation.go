package form

// NoticeKind distinguishes the transient banners shown above the form.
type NoticeKind string

const (
	NoticeInvalid      NoticeKind = "invalid"
	NoticeSubmitFailed NoticeKind = "submit-failed"
)

// Notice is a dismissible banner.
type Notice struct {
	ID      int
	Kind    NoticeKind
	Message string
}

// FieldView is what a renderer shows for one input and its error slot.
type FieldView struct {
	Value   string
	Errored bool
	Message string
	Shake   bool
}

// Presentation is a declarative snapshot of the form.
type Presentation struct {
	Fields         map[Field]FieldView
	Counter        Counter
	Notices        []Notice
	Submitting     bool
	SubmitDisabled bool
	SpinnerVisible bool
}

// Renderer receives a new presentation after every state change.
type Renderer interface {
	Render(Presentation)
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func(Presentation)

// Render calls f.
func (f RenderFunc) Render(p Presentation) { f(p) }
