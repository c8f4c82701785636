package cmd

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/grovetools/widgets/config"
	"github.com/grovetools/widgets/logging"
	"github.com/grovetools/widgets/tui/components/sidenav"
)

// NewSidebarCmd runs the collapsible sidebar with navigation.
func NewSidebarCmd() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "sidebar",
		Short: "Run the collapsible sidebar and navigation",
		Long: `Run the sidebar page. Wide terminals get the collapsible desktop
sidebar; terminals at or below the breakpoint get the mobile drawer with
an overlay. Resize the terminal to cross the breakpoint.

Examples:
  widgets sidebar
  widgets sidebar --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			columns, _, err := term.GetSize(int(os.Stdout.Fd()))
			if err != nil {
				columns = 0
			}
			build := func(cfg *config.Config) (tea.Model, error) {
				return sidenav.New(sidenav.Options{
					Config:  cfg,
					Columns: columns,
					Logger:  logging.NewLogger("sidenav"),
				})
			}
			return runProgram(cmd, build, tea.WithMouseAllMotion())
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Rebuild the sidebar when the config file changes")
	return cmd
}
