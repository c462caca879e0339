package display

import "strings"

// RenderList renders words as a bracketed, comma-separated list,
// e.g. "[Hello, World]".
func RenderList(ws []string) string {
	return "[" + strings.Join(ws, ", ") + "]"
}

// RenderLines renders one word per line. Empty input renders nothing.
func RenderLines(ws []string) string {
	if len(ws) == 0 {
		return ""
	}
	return strings.Join(ws, "\n") + "\n"
}
