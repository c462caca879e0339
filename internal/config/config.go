package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
)

// Formats lists the valid output formats, in display order.
var Formats = []string{"list", "lines", "json", "table"}

type OutputConfig struct {
	Format string `toml:"format" json:"format"`
}

type InputConfig struct {
	// NullToken is the literal argument or line that marks an absent item.
	NullToken string `toml:"null_token" json:"null_token"`
}

type Config struct {
	Output OutputConfig `toml:"output" json:"output"`
	Input  InputConfig  `toml:"input" json:"input"`
}

func DefaultConfig() Config {
	return Config{
		Output: OutputConfig{Format: "list"},
		Input:  InputConfig{NullToken: "null"},
	}
}

// ValidFormat reports whether name is a known output format.
func ValidFormat(name string) bool {
	for _, f := range Formats {
		if f == name {
			return true
		}
	}
	return false
}

var (
	globalConfig *Config
	configMu     sync.RWMutex
)

// Get returns the current config, loading it from disk on first use.
// Load errors are swallowed here; call Init during startup to surface them.
func Get() Config {
	configMu.RLock()
	if c := globalConfig; c != nil {
		configMu.RUnlock()
		return *c
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()
	if globalConfig != nil {
		return *globalConfig
	}
	c, _ := Load("")
	globalConfig = &c
	return c
}

// Init loads the config from disk, replacing any cached value. A malformed
// file still installs defaults and returns the parse error so the caller
// can warn.
func Init() (Config, error) {
	return Reload()
}

// Reload forces a re-read of the config file.
func Reload() (Config, error) {
	configMu.Lock()
	defer configMu.Unlock()
	c, err := Load("")
	globalConfig = &c
	return c, err
}

// Load reads the config at path, or the default location when path is empty.
// A missing file yields defaults with no error; a malformed file yields
// defaults plus the parse error.
func Load(path string) (Config, error) {
	if path == "" {
		path = ConfigFile()
	}
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, nil
	}

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config %s: %w", path, err)
	}

	if !ValidFormat(cfg.Output.Format) {
		cfg.Output.Format = DefaultConfig().Output.Format
	}
	if cfg.Input.NullToken == "" {
		cfg.Input.NullToken = DefaultConfig().Input.NullToken
	}

	return cfg, nil
}

// Save writes cfg to path, or the default location when path is empty,
// creating the directory if needed.
func Save(cfg Config, path string) error {
	if path == "" {
		path = ConfigFile()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	defer func() { _ = f.Close() }()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	return nil
}
