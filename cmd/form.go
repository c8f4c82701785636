package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/grovetools/widgets/config"
	"github.com/grovetools/widgets/form"
	"github.com/grovetools/widgets/logging"
	"github.com/grovetools/widgets/tui/components/contactform"
)

// NewFormCmd runs the contact form.
func NewFormCmd() *cobra.Command {
	var (
		watch   bool
		outcome string
	)

	cmd := &cobra.Command{
		Use:   "form",
		Short: "Run the contact form",
		Long: `Run the contact form with live validation. Submitting simulates a
network call which succeeds with the configured success rate.

Examples:
  # Run the form with the nearest widgets.yml
  widgets form

  # Force every submission to fail and reload on config edits
  widgets form --outcome fail --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, err := outcomeProvider(outcome)
			if err != nil {
				return err
			}
			build := func(cfg *config.Config) (tea.Model, error) {
				return contactform.New(contactform.Options{
					Config:  cfg,
					Outcome: provider,
					Logger:  logging.NewLogger("contactform"),
				})
			}
			return runProgram(cmd, build, tea.WithMouseCellMotion())
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Rebuild the form when the config file changes")
	cmd.Flags().StringVar(&outcome, "outcome", "random", "Submission outcome: random, success, or fail")
	return cmd
}

// outcomeProvider maps the --outcome flag. A nil provider keeps the
// configured random outcome.
func outcomeProvider(name string) (form.OutcomeProvider, error) {
	switch name {
	case "", "random":
		return nil, nil
	case "success":
		return form.FixedOutcome(true), nil
	case "fail", "failure":
		return form.FixedOutcome(false), nil
	default:
		return nil, errInvalidFlag("outcome", name)
	}
}
