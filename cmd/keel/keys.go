package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the top-level configuration keys",
	RunE:  runKeys,
}

func init() {
	rootCmd.AddCommand(keysCmd)
}

func runKeys(cmd *cobra.Command, _ []string) error {
	env, err := bootEnv()
	if err != nil {
		return err
	}
	for _, k := range env.Config.Keys() {
		fmt.Fprintln(cmd.OutOrStdout(), k)
	}
	return nil
}
