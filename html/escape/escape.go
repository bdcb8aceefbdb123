// Package escape replaces the characters that are significant in HTML
// character data and quoted attribute values with character references.
//
// The output is assumed to be written in a Unicode encoding, so only five
// characters need escaping: & < > " and '.
package escape

import (
	"io"
	"strings"
)

const special = `&<>"'`

var replacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Needed reports whether s contains a character that String would replace.
func Needed(s string) bool {
	return strings.ContainsAny(s, special)
}

// String returns s with the five special characters escaped. When nothing
// needs escaping s itself is returned.
func String(s string) string {
	if !Needed(s) {
		return s
	}
	return replacer.Replace(s)
}

// WriteString writes the escaped form of s to w.
func WriteString(w io.Writer, s string) (int, error) {
	if !Needed(s) {
		return io.WriteString(w, s)
	}
	return replacer.WriteString(w, s)
}
