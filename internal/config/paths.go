package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const appName = "capwords"

// ConfigDir returns the directory holding the config file.
// CAPWORDS_CONFIG_DIR overrides the XDG default; tests rely on this.
func ConfigDir() string {
	if v := os.Getenv("CAPWORDS_CONFIG_DIR"); v != "" {
		return v
	}
	return filepath.Join(xdg.ConfigHome, appName)
}

func ConfigFile() string { return filepath.Join(ConfigDir(), "config.toml") }
