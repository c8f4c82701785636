package errors

import (
	"fmt"
	"strings"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *WidgetError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *WidgetError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// ElementMissing reports a required page element that was not supplied to a controller.
func ElementMissing(controller, role, id string) *WidgetError {
	msg := fmt.Sprintf("%s: required element %q is missing", controller, role)
	if id != "" {
		msg = fmt.Sprintf("%s: required element %q (id %q) is missing", controller, role, id)
	}
	return New(ErrCodeElementMissing, msg).
		WithDetail("controller", controller).
		WithDetail("role", role).
		WithDetail("id", id)
}

// ValidationFailed lists the fields that did not pass validation.
func ValidationFailed(fields []string) *WidgetError {
	return New(ErrCodeValidation, fmt.Sprintf("invalid fields: %s", strings.Join(fields, ", "))).
		WithDetail("fields", fields)
}

// SubmitFailed wraps a failed submission attempt.
func SubmitFailed(attempt string, cause error) *WidgetError {
	return Wrap(cause, ErrCodeSubmitFailed, "submission failed").
		WithDetail("attempt", attempt)
}

// SubmitInProgress is returned when a submission is already outstanding.
func SubmitInProgress(attempt string) *WidgetError {
	return New(ErrCodeSubmitInProgress, "a submission is already in progress").
		WithDetail("attempt", attempt)
}

// InvalidInput creates an invalid input error
func InvalidInput(reason string) *WidgetError {
	return New(ErrCodeInvalidInput, reason)
}
