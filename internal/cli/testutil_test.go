package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/mholloway/capwords/internal/config"
	"github.com/mholloway/capwords/internal/testenv"
)

// setupEnv isolates the config dir and resets flag state so commands run
// against a clean slate.
func setupEnv(t *testing.T) {
	t.Helper()
	testenv.Apply(t.Setenv, t.TempDir())
	_, _ = config.Reload()
	resetFlags(t)
}

func resetFlags(t *testing.T) {
	t.Helper()
	reset := func() {
		jsonOutput, noColor, verbose, quiet = false, false, false, false
		formatFlag, filePath, nullToken = "", "", ""
		_ = rootCmd.Flags().Set("version", "false")
		_ = configResetCmd.Flags().Set("confirm", "false")
	}
	reset()
	t.Cleanup(reset)
}

// runCommand executes the root command with the given args, capturing stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	origOut := outWriter
	outWriter = &buf
	t.Cleanup(func() { outWriter = origOut })

	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

// stubStdin replaces the piped input reader and the stdin TTY check.
func stubStdin(t *testing.T, content string, terminal bool) {
	t.Helper()
	origIn := inReader
	origTTY := stdinIsTerminal
	inReader = strings.NewReader(content)
	stdinIsTerminal = func() bool { return terminal }
	t.Cleanup(func() {
		inReader = origIn
		stdinIsTerminal = origTTY
	})
}

// stubStdoutNotTerminal forces the stdout TTY check to false so table
// rendering skips the terminal-width pass.
func stubStdoutNotTerminal(t *testing.T) {
	t.Helper()
	orig := stdoutIsTerminal
	stdoutIsTerminal = func() bool { return false }
	t.Cleanup(func() { stdoutIsTerminal = orig })
}
