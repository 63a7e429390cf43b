package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sagarc03/keel/bootstrap"
)

var version = "dev"

var (
	flagPath        string
	flagEnvironment string
	flagSecrets     string
	flagQuiet       bool
)

var rootCmd = &cobra.Command{
	Version: version,
	Use:     "keel",
	Short:   "Resolve and query bootstrap-time configuration",
	Long: `Keel loads a configuration file, applies the secrets overlay
(environment variables first, then an optional secrets file) and answers
queries against the fully resolved configuration.`,
}

func init() {
	registerFlags(rootCmd.PersistentFlags())
}

func registerFlags(pf *pflag.FlagSet) {
	pf.StringVar(&flagPath, "path", "", "config file or directory to search (default: working directory)")
	pf.StringVarP(&flagEnvironment, "environment", "e", "", "environment name (env: ENVIRONMENT)")
	pf.StringVar(&flagSecrets, "secrets", "", "secrets directory holding <environment>.yaml (env: SECRETS is a full file path)")
	pf.BoolVarP(&flagQuiet, "quiet", "q", false, "log errors only")
}

// bootEnv runs the full bootstrap for the current flag set.
func bootEnv() (*bootstrap.Environment, error) {
	bootstrap.Version = version
	return bootstrap.CreateEnv(bootstrap.Options{
		ConfigPath:  flagPath,
		Environment: flagEnvironment,
		SecretsDir:  flagSecrets,
		Quiet:       flagQuiet,
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
