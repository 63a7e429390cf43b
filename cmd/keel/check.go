package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sagarc03/keel"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration and print a summary",
	Long: `Run the full bootstrap (discovery, secrets overlay, validation)
and print a summary. Exits non-zero on any bootstrap error, so it can be
used as a pre-deployment gate.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	env, err := bootEnv()
	if err != nil {
		return err
	}

	cfg := env.Config
	out := cmd.OutOrStdout()

	environment, _ := cfg.String(keel.KeyEnvironment, keel.WithDefault(""))
	ver, _ := cfg.String(keel.KeyVersion, keel.WithDefault(""))
	instanceID, _ := cfg.String(keel.KeyInstanceID, keel.WithDefault(""))

	fmt.Fprintf(out, "environment: %s\n", environment)
	fmt.Fprintf(out, "version:     %s\n", ver)
	fmt.Fprintf(out, "instance:    %s\n", instanceID)
	fmt.Fprintf(out, "root:        %s\n", env.RootPath)
	fmt.Fprintf(out, "keys:        %d\n", cfg.Len())
	return nil
}
