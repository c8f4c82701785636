package main

import (
	"os"

	"github.com/grovetools/widgets/cli"
	"github.com/grovetools/widgets/cmd"
	"github.com/grovetools/widgets/version"
)

func main() {
	rootCmd := cli.NewStandardCommand(
		"widgets",
		"Contact form and collapsible sidebar widgets for the terminal",
	)
	cli.SetVersionTemplate(rootCmd, version.GetInfo())

	rootCmd.AddCommand(cmd.NewFormCmd())
	rootCmd.AddCommand(cmd.NewSidebarCmd())
	rootCmd.AddCommand(cmd.NewValidateCmd())
	rootCmd.AddCommand(cmd.NewConfigCmd())
	rootCmd.AddCommand(cmd.NewVersionCmd())
	cli.ApplyStyledHelpRecursive(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
		cli.NewErrorHandler(verbose).Handle(err)
		os.Exit(1)
	}
}
