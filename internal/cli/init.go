package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mholloway/capwords/internal/config"
	"github.com/mholloway/capwords/internal/prompt"
)

var formatDescriptions = map[string]string{
	"list":  "bracketed, comma-separated (default)",
	"lines": "one word per line",
	"json":  "machine-readable result with skip counts",
	"table": "word table with source item indexes",
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Run first-time setup wizard",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()

		options := make([]prompt.SelectOption, len(config.Formats))
		for i, f := range config.Formats {
			options[i] = prompt.SelectOption{
				Label: f + ": " + formatDescriptions[f],
				Value: f,
			}
		}

		format, err := prompt.Default.Select(prompt.SelectConfig{
			Title:   "Default output format",
			Options: options,
		})
		if err != nil {
			return err
		}
		if format != "" {
			cfg.Output.Format = format
		}

		token, err := prompt.Default.Input(prompt.InputConfig{
			Title:       "Null token (argument or line treated as an absent item)",
			Placeholder: cfg.Input.NullToken,
			Validate:    validateNullToken,
		})
		if err != nil {
			return err
		}
		if token != "" {
			cfg.Input.NullToken = token
		}

		ok, err := prompt.Default.Confirm(prompt.ConfirmConfig{
			Title:       "Write configuration?",
			Description: config.ConfigFile(),
			Default:     true,
		})
		if err != nil {
			return err
		}
		if !ok {
			outln("Setup cancelled")
			return nil
		}

		if err := config.Save(cfg, ""); err != nil {
			return err
		}
		_, _ = config.Reload()
		out("Wrote %s\n", config.ConfigFile())
		return nil
	},
}

// validateNullToken rejects tokens containing whitespace, since items are
// split on whitespace and such a token could never match a whole item.
// Empty input is allowed and keeps the current token.
func validateNullToken(s string) error {
	if strings.ContainsAny(s, " \t") {
		return errors.New("null token cannot contain whitespace")
	}
	return nil
}
