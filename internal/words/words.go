package words

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mholloway/capwords/internal/logging"
)

// Item is one element of an input list: either a present text value or an
// absent marker. The zero value is absent.
type Item struct {
	Value string
	Valid bool
}

// Some returns a present item holding s. Note that Some("") is a present
// empty item, which is still skipped during capitalization.
func Some(s string) Item { return Item{Value: s, Valid: true} }

// None returns an absent item.
func None() Item { return Item{} }

// Blank reports whether the item is skipped during capitalization:
// absent, or present but empty. A whitespace-only item is NOT blank;
// it just splits into zero tokens.
func (it Item) Blank() bool { return !it.Valid || it.Value == "" }

// Word is a capitalized word annotated with the index of the item it
// came from.
type Word struct {
	Text string
	Item int
}

// Capitalize normalizes items into a flattened ordered list of capitalized
// words. Each present, non-empty item is lowercased and split into
// whitespace-separated tokens; each token gets its first rune uppercased.
// Blank items contribute nothing and emit one skip notice each on the
// context logger, in item order. Capitalize never fails.
func Capitalize(ctx context.Context, items []Item) []string {
	annotated := Annotate(ctx, items)
	out := make([]string, len(annotated))
	for i, w := range annotated {
		out[i] = w.Text
	}
	return out
}

// Annotate is Capitalize with provenance: each word keeps the index of its
// source item, which the table output uses.
func Annotate(ctx context.Context, items []Item) []Word {
	logger := logging.FromContext(ctx)

	var out []Word
	for i, it := range items {
		if it.Blank() {
			reason := "null"
			if it.Valid {
				reason = "empty"
			}
			logger.Warn("skipped item", "index", i, "reason", reason)
			continue
		}
		for _, tok := range strings.Fields(strings.ToLower(it.Value)) {
			out = append(out, Word{Text: CapitalizeWord(tok), Item: i})
		}
	}
	return out
}

// CapitalizeWord uppercases the first rune of a word and lowercases the
// rest. Applying it twice yields the same result.
func CapitalizeWord(w string) string {
	if w == "" {
		return w
	}
	r, size := utf8.DecodeRuneInString(w)
	return string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
}

// SkipCount returns how many items would emit a skip notice.
func SkipCount(items []Item) int {
	n := 0
	for _, it := range items {
		if it.Blank() {
			n++
		}
	}
	return n
}
