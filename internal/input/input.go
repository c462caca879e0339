// Package input converts the various item sources (arguments, stdin
// lines, files) into words.Item lists. Only text sources use the null
// token; YAML and JSON carry real nulls.
package input

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mholloway/capwords/internal/words"
)

// ParseArgs converts command-line arguments into items. An argument equal
// to nullToken is an absent item; everything else, including the empty
// string, is a present item.
func ParseArgs(args []string, nullToken string) []words.Item {
	items := make([]words.Item, len(args))
	for i, a := range args {
		if a == nullToken {
			items[i] = words.None()
		} else {
			items[i] = words.Some(a)
		}
	}
	return items
}

// ReadLines reads one item per line from r. A line equal to nullToken is
// an absent item.
func ReadLines(r io.Reader, nullToken string) ([]words.Item, error) {
	var items []words.Item
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == nullToken {
			items = append(items, words.None())
		} else {
			items = append(items, words.Some(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading items: %w", err)
	}
	return items, nil
}

// LoadFile loads items from path, choosing the decoder by extension:
// .yaml/.yml and .json files are sequences where null entries are absent
// items; anything else is plain text with one item per line.
func LoadFile(path, nullToken string) ([]words.Item, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return loadYAML(path)
	case ".json":
		return loadJSON(path)
	default:
		return loadText(path, nullToken)
	}
}

func loadYAML(path string) ([]words.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var ptrs []*string
	if err := yaml.Unmarshal(data, &ptrs); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return fromPointers(ptrs), nil
}

func loadJSON(path string) ([]words.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var ptrs []*string
	if err := json.Unmarshal(data, &ptrs); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return fromPointers(ptrs), nil
}

func loadText(path, nullToken string) ([]words.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return ReadLines(f, nullToken)
}

func fromPointers(ptrs []*string) []words.Item {
	items := make([]words.Item, len(ptrs))
	for i, p := range ptrs {
		if p == nil {
			items[i] = words.None()
		} else {
			items[i] = words.Some(*p)
		}
	}
	return items
}
