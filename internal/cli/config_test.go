package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/mholloway/capwords/internal/config"
	"github.com/mholloway/capwords/internal/prompt"
)

func TestConfigShow_PrintsTOML(t *testing.T) {
	setupEnv(t)
	got, err := runCommand(t, "config", "show")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(got, "Config: ") {
		t.Errorf("missing config path header:\n%s", got)
	}
	if !strings.Contains(got, "format = ") || !strings.Contains(got, "null_token = ") {
		t.Errorf("missing TOML fields:\n%s", got)
	}
}

func TestConfigShow_JSON(t *testing.T) {
	setupEnv(t)
	got, err := runCommand(t, "config", "show", "--json")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	var res struct {
		Output struct {
			Format string `json:"format"`
		} `json:"output"`
		Input struct {
			NullToken string `json:"null_token"`
		} `json:"input"`
		Path string `json:"path"`
	}
	if err := json.Unmarshal([]byte(got), &res); err != nil {
		t.Fatalf("invalid JSON %q: %v", got, err)
	}
	if res.Output.Format != "list" || res.Input.NullToken != "null" {
		t.Errorf("unexpected defaults: %+v", res)
	}
	if res.Path != config.ConfigFile() {
		t.Errorf("path = %q, want %q", res.Path, config.ConfigFile())
	}
}

func TestConfigPath_Quiet(t *testing.T) {
	setupEnv(t)
	got, err := runCommand(t, "config", "path", "-q")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if strings.TrimSpace(got) != config.ConfigDir() {
		t.Errorf("output = %q, want %q", got, config.ConfigDir())
	}
}

func TestConfigReset_WithConfirmFlag(t *testing.T) {
	setupEnv(t)

	modified := config.DefaultConfig()
	modified.Output.Format = "lines"
	if err := config.Save(modified, ""); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := config.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	if _, err := runCommand(t, "config", "reset", "--confirm"); err != nil {
		t.Fatalf("execute: %v", err)
	}

	if got := config.Get().Output.Format; got != "list" {
		t.Errorf("format after reset = %q, want %q", got, "list")
	}
}

func TestConfigReset_PromptDeclined(t *testing.T) {
	setupEnv(t)

	modified := config.DefaultConfig()
	modified.Output.Format = "lines"
	if err := config.Save(modified, ""); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := config.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	orig := prompt.Default
	t.Cleanup(func() { prompt.SetDefault(orig) })
	prompt.SetDefault(&prompt.Mock{
		ConfirmFunc: func(cfg prompt.ConfirmConfig) (bool, error) { return false, nil },
	})

	got, err := runCommand(t, "config", "reset")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(got, "Reset cancelled") {
		t.Errorf("output = %q", got)
	}
	if gotFmt := config.Get().Output.Format; gotFmt != "lines" {
		t.Errorf("declined reset should keep format %q, got %q", "lines", gotFmt)
	}
}
