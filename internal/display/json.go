package display

import (
	"encoding/json"
	"io"
)

// ResultJSON is the JSON shape for a capitalization run.
type ResultJSON struct {
	Words   []string `json:"words"`
	Skipped int      `json:"skipped"`
	Total   int      `json:"total"`
}

// ConfigShowJSON is the JSON shape for `capwords config show`.
type ConfigShowJSON struct {
	Output OutputJSONSection `json:"output"`
	Input  InputJSONSection  `json:"input"`
	Path   string            `json:"path"`
}

type OutputJSONSection struct {
	Format string `json:"format"`
}

type InputJSONSection struct {
	NullToken string `json:"null_token"`
}

// OutputJSON writes pretty-printed JSON to the given writer.
func OutputJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// NewResultJSON builds a ResultJSON, normalizing a nil word slice to an
// empty array so the output is always `"words": []` rather than null.
func NewResultJSON(ws []string, skipped, total int) ResultJSON {
	if ws == nil {
		ws = []string{}
	}
	return ResultJSON{Words: ws, Skipped: skipped, Total: total}
}
