package form

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Field identifies one of the validated contact form inputs.
type Field string

const (
	FieldFullName Field = "fullName"
	FieldEmail    Field = "email"
	FieldSubject  Field = "subject"
	FieldMessage  Field = "message"
)

// Fields lists the form inputs in display order.
var Fields = []Field{FieldFullName, FieldEmail, FieldSubject, FieldMessage}

// Reason classifies a validation failure.
type Reason string

const (
	ReasonNone                  Reason = ""
	ReasonRequired              Reason = "required"
	ReasonTooShort              Reason = "too_short"
	ReasonTooLong               Reason = "too_long"
	ReasonInvalidCharacters     Reason = "invalid_characters"
	ReasonConsecutiveSpaces     Reason = "consecutive_spaces"
	ReasonInvalidFormat         Reason = "invalid_format"
	ReasonSurroundingWhitespace Reason = "surrounding_whitespace"
)

// Result is the outcome of validating a single value.
type Result struct {
	Valid   bool   `json:"valid"`
	Reason  Reason `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
}

func ok() Result {
	return Result{Valid: true}
}

func fail(reason Reason, format string, args ...interface{}) Result {
	return Result{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// Bounds is an inclusive length range measured in characters.
type Bounds struct {
	Min int `yaml:"min" toml:"min" json:"min"`
	Max int `yaml:"max" toml:"max" json:"max"`
}

// Rules holds the limits used by the validators.
type Rules struct {
	FullName Bounds
	Subject  Bounds
	Message  Bounds
	// NearLimitPercent and AtLimitPercent drive the character counter.
	NearLimitPercent int
	AtLimitPercent   int
}

// DefaultRules returns the stock contact form limits.
func DefaultRules() Rules {
	return Rules{
		FullName:         Bounds{Min: 2, Max: 50},
		Subject:          Bounds{Min: 5, Max: 100},
		Message:          Bounds{Min: 10, Max: 1000},
		NearLimitPercent: 75,
		AtLimitPercent:   90,
	}
}

var (
	nameCharsRegex   = regexp.MustCompile(`^[a-zA-Z\s\-']+$`)
	repeatSpaceRegex = regexp.MustCompile(`\s{2,}`)
	emailRegex       = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// Validate dispatches to the validator for f.
func (r Rules) Validate(f Field, text string) Result {
	switch f {
	case FieldFullName:
		return r.Name(text)
	case FieldEmail:
		return r.Email(text)
	case FieldSubject:
		return r.SubjectLine(text)
	case FieldMessage:
		return r.MessageText(text)
	}
	return fail(ReasonInvalidFormat, "Unknown field %q", string(f))
}

// Name validates a person's full name.
func (r Rules) Name(text string) Result {
	value := strings.TrimSpace(text)
	n := utf8.RuneCountInString(value)

	switch {
	case value == "":
		return fail(ReasonRequired, "Full name is required")
	case n < r.FullName.Min:
		return fail(ReasonTooShort, "Name must be at least %d characters", r.FullName.Min)
	case n > r.FullName.Max:
		return fail(ReasonTooLong, "Name must be less than %d characters", r.FullName.Max)
	case !nameCharsRegex.MatchString(value):
		return fail(ReasonInvalidCharacters, "Name can only contain letters, spaces, hyphens, and apostrophes")
	case repeatSpaceRegex.MatchString(value):
		return fail(ReasonConsecutiveSpaces, "Name cannot contain consecutive spaces")
	}
	return ok()
}

// Email validates an email address.
func (r Rules) Email(text string) Result {
	value := strings.TrimSpace(text)
	if value == "" {
		return fail(ReasonRequired, "Email address is required")
	}
	if !emailRegex.MatchString(value) ||
		strings.Contains(value, "..") ||
		strings.HasPrefix(value, ".") ||
		strings.HasSuffix(value, ".") {
		return fail(ReasonInvalidFormat, "Please enter a valid email address")
	}
	return ok()
}

// SubjectLine validates the message subject. Unlike the other fields, leading
// or trailing whitespace in the raw value is an error.
func (r Rules) SubjectLine(text string) Result {
	value := strings.TrimSpace(text)
	n := utf8.RuneCountInString(value)

	switch {
	case value == "":
		return fail(ReasonRequired, "Subject is required")
	case n < r.Subject.Min:
		return fail(ReasonTooShort, "Subject must be at least %d characters", r.Subject.Min)
	case n > r.Subject.Max:
		return fail(ReasonTooLong, "Subject must be less than %d characters", r.Subject.Max)
	case text != value:
		return fail(ReasonSurroundingWhitespace, "Subject cannot start or end with spaces")
	}
	return ok()
}

// MessageText validates the message body.
func (r Rules) MessageText(text string) Result {
	value := strings.TrimSpace(text)
	n := utf8.RuneCountInString(value)

	switch {
	case value == "":
		return fail(ReasonRequired, "Message is required")
	case n < r.Message.Min:
		return fail(ReasonTooShort, "Message must be at least %d characters", r.Message.Min)
	case n > r.Message.Max:
		return fail(ReasonTooLong, "Message must be less than %d characters", r.Message.Max)
	}
	return ok()
}

// ValidateFullName validates text with the default rules.
func ValidateFullName(text string) Result { return DefaultRules().Name(text) }

// ValidateEmail validates text with the default rules.
func ValidateEmail(text string) Result { return DefaultRules().Email(text) }

// ValidateSubject validates text with the default rules.
func ValidateSubject(text string) Result { return DefaultRules().SubjectLine(text) }

// ValidateMessage validates text with the default rules.
func ValidateMessage(text string) Result { return DefaultRules().MessageText(text) }
