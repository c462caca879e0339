// Package testenv isolates capwords environment state in tests.
package testenv

import "path/filepath"

// Apply points CAPWORDS_CONFIG_DIR at a directory under base and returns
// the config directory path. Pass t.Setenv as setenv.
func Apply(setenv func(string, string), base string) string {
	dir := filepath.Join(base, "config")
	setenv("CAPWORDS_CONFIG_DIR", dir)
	return dir
}

// ApplySameDir points the config dir directly at dir. Useful in tests that
// expect ConfigDir() to exactly match a temp dir path.
func ApplySameDir(setenv func(string, string), dir string) {
	setenv("CAPWORDS_CONFIG_DIR", dir)
}
