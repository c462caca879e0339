package cli

import (
	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/mholloway/capwords/internal/config"
	"github.com/mholloway/capwords/internal/display"
	"github.com/mholloway/capwords/internal/prompt"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		cfgPath := config.ConfigFile()

		if jsonOutput {
			return display.OutputJSON(outWriter, display.ConfigShowJSON{
				Output: display.OutputJSONSection{Format: cfg.Output.Format},
				Input:  display.InputJSONSection{NullToken: cfg.Input.NullToken},
				Path:   cfgPath,
			})
		}

		if quiet {
			outln(cfgPath)
			return nil
		}

		out("Config: %s\n\n", cfgPath)
		_ = toml.NewEncoder(outWriter).Encode(cfg)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonOutput {
			return display.OutputJSON(outWriter, map[string]string{
				"config_dir":  config.ConfigDir(),
				"config_file": config.ConfigFile(),
			})
		}

		if quiet {
			outln(config.ConfigDir())
			return nil
		}

		out("Config dir:    %s\n", config.ConfigDir())
		out("Config file:   %s\n", config.ConfigFile())
		return nil
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset configuration to defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		confirm, _ := cmd.Flags().GetBool("confirm")
		if !confirm && !jsonOutput {
			ok, err := prompt.Default.Confirm(prompt.ConfirmConfig{
				Title: "Reset configuration to defaults?",
			})
			if err != nil {
				return err
			}
			if !ok {
				outln("Reset cancelled")
				return nil
			}
		}

		if err := config.Save(config.DefaultConfig(), ""); err != nil {
			return err
		}
		_, _ = config.Reload()

		if jsonOutput {
			return display.OutputJSON(outWriter, map[string]bool{"reset": true})
		}
		outln("Configuration reset to defaults")
		return nil
	},
}

func init() {
	configResetCmd.Flags().Bool("confirm", false, "Skip the confirmation prompt")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configResetCmd)
}
