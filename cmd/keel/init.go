package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sagarc03/keel"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactively scaffold a config.yaml",
	Long: `Interactively scaffold a config.yaml in the target directory.

You will be prompted for:
  - Environment name
  - Log level and format
  - Date format (validated live)
  - Debug mode

Optionally a secrets file template is written to secrets/<environment>.yaml.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

// scaffold is the config.yaml skeleton written by init.
type scaffold struct {
	LogLevel   string `yaml:"log_level"`
	LogFormat  string `yaml:"log_format"`
	DateFormat string `yaml:"date_format"`
	Debug      bool   `yaml:"debug"`
}

func runInit(_ *cobra.Command, _ []string) error {
	dir := flagPath
	if dir == "" {
		dir = "."
	}
	configPath := filepath.Join(dir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		prompt := promptui.Prompt{
			Label:     fmt.Sprintf("%s already exists. Overwrite it", configPath),
			IsConfirm: true,
		}
		if _, promptErr := prompt.Run(); promptErr != nil {
			fmt.Println("Cancelled.")
			return nil //nolint:nilerr // user cancelled, not an error
		}
	}

	envPrompt := promptui.Prompt{
		Label:   "Environment name",
		Default: "dev",
		Validate: func(input string) error {
			if input == "" {
				return errors.New("environment name is required")
			}
			return nil
		},
	}
	environment, err := envPrompt.Run()
	if err != nil {
		return handlePromptError(err)
	}

	levelSelect := promptui.Select{
		Label: "Log level",
		Items: []string{"debug", "info", "warn", "error"},
	}
	_, level, err := levelSelect.Run()
	if err != nil {
		return handlePromptError(err)
	}

	formatSelect := promptui.Select{
		Label: "Log format",
		Items: []string{"console", "json"},
	}
	_, format, err := formatSelect.Run()
	if err != nil {
		return handlePromptError(err)
	}

	datePrompt := promptui.Prompt{
		Label:   "Date format (Go layout)",
		Default: keel.DefaultDateFormat,
		Validate: func(layout string) error {
			ref := time.Date(2006, time.January, 2, 15, 4, 5, 0, time.UTC)
			if _, parseErr := time.Parse(layout, ref.Format(layout)); parseErr != nil {
				return fmt.Errorf("layout does not round-trip: %w", parseErr)
			}
			return nil
		},
	}
	dateFormat, err := datePrompt.Run()
	if err != nil {
		return handlePromptError(err)
	}

	debug := false
	debugPrompt := promptui.Prompt{
		Label:     "Enable debug mode",
		IsConfirm: true,
	}
	if _, promptErr := debugPrompt.Run(); promptErr == nil {
		debug = true
	}

	data, err := yaml.Marshal(scaffold{
		LogLevel:   level,
		LogFormat:  format,
		DateFormat: dateFormat,
		Debug:      debug,
	})
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", configPath, err)
	}
	fmt.Printf("Wrote %s\n", configPath)

	secretsPrompt := promptui.Prompt{
		Label:     fmt.Sprintf("Write a secrets template for '%s'", environment),
		IsConfirm: true,
	}
	if _, promptErr := secretsPrompt.Run(); promptErr != nil {
		return nil //nolint:nilerr // declined, not an error
	}

	secretsPath := filepath.Join(dir, "secrets", environment+".yaml")
	if err := os.MkdirAll(filepath.Dir(secretsPath), 0o750); err != nil {
		return fmt.Errorf("create secrets directory: %w", err)
	}
	template := "# Values substituted into ${name} placeholders after environment variables.\n" +
		"# example_key: example_value\n"
	if err := os.WriteFile(secretsPath, []byte(template), 0o600); err != nil {
		return fmt.Errorf("write %s: %w", secretsPath, err)
	}
	fmt.Printf("Wrote %s\n", secretsPath)
	return nil
}

// handlePromptError maps a promptui interrupt to a quiet cancellation.
func handlePromptError(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) {
		fmt.Println("Cancelled.")
		return nil
	}
	return err
}
