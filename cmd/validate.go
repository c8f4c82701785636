package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/grovetools/widgets/cli"
	"github.com/grovetools/widgets/errors"
	"github.com/grovetools/widgets/form"
	"github.com/grovetools/widgets/logging"
	"github.com/grovetools/widgets/tui/components/contactform"
)

var fieldFlags = []struct {
	flag  string
	field form.Field
	label string
}{
	{"name", form.FieldFullName, "Full name"},
	{"email", form.FieldEmail, "Email"},
	{"subject", form.FieldSubject, "Subject"},
	{"message", form.FieldMessage, "Message"},
}

// ValidationReport is the JSON output of the validate command.
type ValidationReport struct {
	Valid   bool                       `json:"valid"`
	Fields  map[form.Field]form.Result `json:"fields"`
	Counter *CounterReport             `json:"counter,omitempty"`
	// Sent is set when --submit ran a simulated submission.
	Sent *bool `json:"sent,omitempty"`
}

// CounterReport describes the message character counter.
type CounterReport struct {
	Text  string `json:"text"`
	Level string `json:"level"`
}

func errInvalidFlag(flag, value string) error {
	return errors.InvalidInput(fmt.Sprintf("invalid value %q for --%s", value, flag)).
		WithDetail("flag", flag)
}

// NewValidateCmd checks contact form values without starting the TUI.
func NewValidateCmd() *cobra.Command {
	values := make(map[form.Field]*string, len(fieldFlags))
	var (
		submit  bool
		outcome string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate contact form values",
		Long: `Run the contact form validators against the given values. Only the
fields passed as flags are checked; with no field flags all four are
checked. Exits non-zero when any field is invalid.

With --submit all four fields are validated and, when they pass, a
simulated submission runs with the configured delay and success rate.

Examples:
  widgets validate --email ada@example.com
  widgets validate --name "Ada Lovelace" --email ada@example.com --subject "Engine notes" --message "Notes on the engine." --submit
  widgets validate --name "Ada Lovelace" --subject "Hello there" --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := cli.LoadConfig(cmd)
			if err != nil {
				return err
			}
			provider, err := outcomeProvider(outcome)
			if err != nil {
				return err
			}
			logger := cli.GetLogger(cmd)
			rules := contactform.RulesFromConfig(cfg.Form)

			inputs := make(map[form.Field]string)
			for _, f := range fieldFlags {
				if cmd.Flags().Changed(f.flag) {
					inputs[f.field] = *values[f.field]
				}
			}
			if len(inputs) == 0 || submit {
				for _, f := range fieldFlags {
					inputs[f.field] = *values[f.field]
				}
			}

			report := Validate(rules, inputs)
			logger.WithField("valid", report.Valid).Debug("Validated form values")

			var submitErr error
			if report.Valid && submit {
				submitErr = simulateSubmit(cmd.Context(), cfg, inputs, provider, logger)
				sent := submitErr == nil
				report.Sent = &sent
			}

			out := cmd.OutOrStdout()
			if cli.GetOptions(cmd).JSONOutput {
				if err := writeJSON(out, report); err != nil {
					return err
				}
			} else {
				printReport(out, report)
			}

			if !report.Valid {
				return errors.ValidationFailed(report.invalid())
			}
			return submitErr
		},
	}

	for _, f := range fieldFlags {
		values[f.field] = cmd.Flags().String(f.flag, "", f.label)
	}
	cmd.Flags().BoolVar(&submit, "submit", false, "Run a simulated submission when all fields are valid")
	cmd.Flags().StringVar(&outcome, "outcome", "random", "Submission outcome: random, success, or fail")
	return cmd
}

// Validate runs rules over inputs. The counter is reported whenever the
// message is among the inputs.
func Validate(rules form.Rules, inputs map[form.Field]string) ValidationReport {
	report := ValidationReport{Valid: true, Fields: make(map[form.Field]form.Result, len(inputs))}
	for f, text := range inputs {
		r := rules.Validate(f, text)
		report.Fields[f] = r
		if !r.Valid {
			report.Valid = false
		}
	}
	if text, ok := inputs[form.FieldMessage]; ok {
		c := rules.Count(text)
		report.Counter = &CounterReport{Text: c.Text(), Level: c.Level.String()}
	}
	return report
}

// invalid lists the failing fields in display order.
func (r ValidationReport) invalid() []string {
	var fields []string
	for _, f := range form.Fields {
		if res, ok := r.Fields[f]; ok && !res.Valid {
			fields = append(fields, string(f))
		}
	}
	return fields
}

func printReport(w io.Writer, report ValidationReport) {
	pretty := logging.NewPrettyLogger().WithWriter(w)
	for _, f := range fieldFlags {
		res, ok := report.Fields[f.field]
		if !ok {
			continue
		}
		detail := res.Message
		if res.Valid {
			detail = "ok"
		}
		pretty.Check(f.label, res.Valid, detail)
	}
	if report.Counter != nil {
		pretty.Field("Counter", fmt.Sprintf("%s (%s)", report.Counter.Text, report.Counter.Level))
	}
	if report.Sent != nil {
		if *report.Sent {
			pretty.Success("Message sent")
		} else {
			pretty.ErrorPretty("Message not sent", nil)
		}
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
