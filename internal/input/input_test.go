package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mholloway/capwords/internal/words"
)

func writeTempFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(%s): %v", path, err)
	}
	return path
}

func assertItems(t *testing.T, got, want []words.Item) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("items = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("item[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestParseArgs(t *testing.T) {
	got := ParseArgs([]string{"hellO wOrlD", "null", "fRom", ""}, "null")
	want := []words.Item{
		words.Some("hellO wOrlD"),
		words.None(),
		words.Some("fRom"),
		words.Some(""),
	}
	assertItems(t, got, want)
}

func TestParseArgs_CustomNullToken(t *testing.T) {
	got := ParseArgs([]string{"null", "NIL"}, "NIL")
	want := []words.Item{words.Some("null"), words.None()}
	assertItems(t, got, want)
}

func TestReadLines(t *testing.T) {
	r := strings.NewReader("hellO wOrlD\nnull\n\nkOtlin\n")
	got, err := ReadLines(r, "null")
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	want := []words.Item{
		words.Some("hellO wOrlD"),
		words.None(),
		words.Some(""),
		words.Some("kOtlin"),
	}
	assertItems(t, got, want)
}

func TestLoadFile_YAML(t *testing.T) {
	path := writeTempFile(t, "items.yaml", "- hellO wOrlD\n- null\n- fRom\n- \"\"\n")
	got, err := LoadFile(path, "null")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	want := []words.Item{
		words.Some("hellO wOrlD"),
		words.None(),
		words.Some("fRom"),
		words.Some(""),
	}
	assertItems(t, got, want)
}

func TestLoadFile_JSON(t *testing.T) {
	path := writeTempFile(t, "items.json", `["hellO wOrlD", null, "kOtlin", ""]`)
	got, err := LoadFile(path, "null")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	want := []words.Item{
		words.Some("hellO wOrlD"),
		words.None(),
		words.Some("kOtlin"),
		words.Some(""),
	}
	assertItems(t, got, want)
}

func TestLoadFile_Text(t *testing.T) {
	path := writeTempFile(t, "items.txt", "a  b\nnull\n")
	got, err := LoadFile(path, "null")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	want := []words.Item{words.Some("a  b"), words.None()}
	assertItems(t, got, want)
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"), "null"); err == nil {
		t.Fatal("LoadFile should fail on a missing file")
	}
}

func TestLoadFile_MalformedJSON(t *testing.T) {
	path := writeTempFile(t, "items.json", `{"not": "a list"}`)
	if _, err := LoadFile(path, "null"); err == nil {
		t.Fatal("LoadFile should fail on non-array JSON")
	}
}
