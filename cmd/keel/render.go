package main

import (
	"github.com/spf13/cobra"
)

var renderOutput string

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the fully resolved configuration",
	Long: `Print the fully resolved configuration.

Every top-level key is resolved, so the output shows what the application
will actually see: secrets filled in, placeholders substituted, reserved
keys and defaults applied.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "yaml", "output format: yaml, json")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	env, err := bootEnv()
	if err != nil {
		return err
	}

	settings, err := env.Config.AllSettings()
	if err != nil {
		return err
	}
	return printValue(cmd.OutOrStdout(), settings, renderOutput)
}
