package form

import "strings"

// FieldState is the live state of one input.
type FieldState struct {
	Raw       string
	Trimmed   string
	Validated bool
	Result    Result
}

// Valid reports whether the last validation passed.
func (s FieldState) Valid() bool {
	return s.Validated && s.Result.Valid
}

// ErrorMessage returns the current error, or "" when there is none.
func (s FieldState) ErrorMessage() string {
	if !s.Validated || s.Result.Valid {
		return ""
	}
	return s.Result.Message
}

// FormState aggregates the field states and the submission flag.
type FormState struct {
	Fields     map[Field]FieldState
	Submitting bool
}

func newFormState() FormState {
	fields := make(map[Field]FieldState, len(Fields))
	for _, f := range Fields {
		fields[f] = FieldState{}
	}
	return FormState{Fields: fields}
}

func (s *FormState) set(f Field, raw string) FieldState {
	fs := s.Fields[f]
	fs.Raw = raw
	fs.Trimmed = strings.TrimSpace(raw)
	s.Fields[f] = fs
	return fs
}

func (s *FormState) record(f Field, r Result) {
	fs := s.Fields[f]
	fs.Validated = true
	fs.Result = r
	s.Fields[f] = fs
}

// AllValid reports whether every field passed its last validation.
func (s FormState) AllValid() bool {
	for _, f := range Fields {
		if !s.Fields[f].Valid() {
			return false
		}
	}
	return true
}
