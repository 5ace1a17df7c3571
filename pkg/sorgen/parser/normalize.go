// Package parser provides SOR backend worksheet parsing: heading-marked item
// block detection, group/unit/prefix tables, and day-rate extraction.
package parser

import "strings"

// textReplacer maps visually-similar Unicode punctuation variants to their
// ASCII equivalents. Upstream authoring tools occasionally mis-encode these,
// which shows up as mojibake in generated documents.
var textReplacer = strings.NewReplacer(
	"—", "-", // em dash
	"–", "-", // en dash
	"−", "-", // minus sign
	"‐", "-", // hyphen
	"‑", "-", // non-breaking hyphen
	"‒", "-", // figure dash
	"‘", "'", // left single quotation mark
	"’", "'", // right single quotation mark
	"“", `"`, // left double quotation mark
	"”", `"`, // right double quotation mark
	"…", "...", // horizontal ellipsis
	" ", " ", // non-breaking space
)

// NormalizeText replaces Unicode punctuation variants with ASCII equivalents.
// The replacement is idempotent.
func NormalizeText(s string) string {
	return textReplacer.Replace(s)
}

// NormalizeKey collapses all whitespace runs (including embedded newlines) to
// single spaces and strips leading/trailing whitespace, so lookups by a
// UI-provided item name match regardless of how it was whitespace-normalized.
func NormalizeKey(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
