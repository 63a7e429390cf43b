package main

import (
	"github.com/spf13/cobra"

	"github.com/sagarc03/keel"
)

var (
	getDomain  string
	getDefault string
	getOutput  string
)

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Resolve and print a single configuration value",
	Long: `Resolve and print a single configuration value.

The value is read through the container, so {key} placeholders are
substituted against the resolved configuration. Without --default a
missing key is an error.`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	getCmd.Flags().StringVar(&getDomain, "domain", "", "look the key up under a domain namespace")
	getCmd.Flags().StringVar(&getDefault, "default", "", "default returned when the key is missing")
	getCmd.Flags().StringVarP(&getOutput, "output", "o", "raw", "output format: raw, yaml, json")

	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	env, err := bootEnv()
	if err != nil {
		return err
	}

	var opts []keel.GetOption
	if getDomain != "" {
		opts = append(opts, keel.WithDomain(getDomain))
	}
	// only an explicitly set flag counts as a default; an unset flag keeps
	// the raise-on-miss behavior
	if cmd.Flags().Changed("default") {
		opts = append(opts, keel.WithDefault(getDefault))
	}

	v, err := env.Config.Get(args[0], opts...)
	if err != nil {
		return err
	}
	return printValue(cmd.OutOrStdout(), v, getOutput)
}
