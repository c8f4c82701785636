package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/widgets/cli"
	"github.com/grovetools/widgets/config"
)

// NewConfigCmd groups the configuration commands.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect widgets configuration",
	}
	cmd.AddCommand(newConfigSchemaCmd(), newConfigShowCmd())
	return cmd
}

func newConfigSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema for widgets.yml",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.GenerateSchema()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Print the configuration after merging the global config
(~/.config/widgets/widgets.yml) with the project widgets.yml and applying
defaults. Use --json for JSON output.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := cli.LoadConfig(cmd)
			if err != nil {
				return err
			}

			var data []byte
			if cli.GetOptions(cmd).JSONOutput {
				data, err = config.MarshalJSON(cfg)
			} else {
				data, err = config.Marshal(cfg, config.FormatYAML)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if path != "" && !cli.GetOptions(cmd).JSONOutput {
				fmt.Fprintf(out, "# Source: %s\n", path)
			}
			_, err = fmt.Fprintln(out, string(data))
			return err
		},
	}
}
