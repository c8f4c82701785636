package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/grovetools/widgets/errors"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
	Out     io.Writer
}

// NewErrorHandler creates a new error handler writing to stderr.
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
		Out:     os.Stderr,
	}
}

// Handle prints a message for err based on its code and returns err.
func (h *ErrorHandler) Handle(err error) error {
	if err == nil {
		return nil
	}
	out := h.Out
	if out == nil {
		out = os.Stderr
	}
	widgetErr := asWidgetError(err)

	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(out, "Configuration not found: %v\n", detail(widgetErr, "path"))
		fmt.Fprintf(out, "Create a widgets.yml or pass --config. Run 'widgets config schema' for the format.\n")

	case errors.ErrCodeConfigInvalid, errors.ErrCodeConfigValidation:
		fmt.Fprintf(out, "Invalid configuration: %v\n", err)
		if path := detail(widgetErr, "path"); path != nil {
			fmt.Fprintf(out, "Check %v against 'widgets config schema'.\n", path)
		}

	case errors.ErrCodeElementMissing:
		fmt.Fprintf(out, "Element %q is missing from the page", detail(widgetErr, "role"))
		if id := detail(widgetErr, "id"); id != nil && id != "" {
			fmt.Fprintf(out, " (id %q)", id)
		}
		fmt.Fprintln(out)

	case errors.ErrCodeValidation:
		fmt.Fprintf(out, "Please fix the errors above before submitting\n")
		if fields := detail(widgetErr, "fields"); fields != nil {
			fmt.Fprintf(out, "Invalid fields: %v\n", fields)
		}

	case errors.ErrCodeSubmitFailed:
		fmt.Fprintf(out, "Something went wrong. Please try again.\n")

	case errors.ErrCodeInvalidInput:
		fmt.Fprintf(out, "Invalid input: %s\n", message(widgetErr, err))

	default:
		fmt.Fprintf(out, "Error: %v\n", err)
	}

	if h.Verbose && widgetErr != nil {
		fmt.Fprintf(out, "\nError details:\n%s\n", widgetErr.ToJSON())
	}
	return err
}

func asWidgetError(err error) *errors.WidgetError {
	for err != nil {
		if we, ok := err.(*errors.WidgetError); ok {
			return we
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil
		}
		err = u.Unwrap()
	}
	return nil
}

func detail(we *errors.WidgetError, key string) interface{} {
	if we == nil || we.Details == nil {
		return nil
	}
	return we.Details[key]
}

func message(we *errors.WidgetError, err error) string {
	if we != nil {
		return we.Message
	}
	return err.Error()
}
