package cmd

import (
	"github.com/spf13/cobra"

	"github.com/grovetools/widgets/cli"
	"github.com/grovetools/widgets/version"
)

// NewVersionCmd prints build information.
func NewVersionCmd() *cobra.Command {
	return cli.NewVersionCommand("widgets", version.GetInfo())
}
