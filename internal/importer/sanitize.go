package importer

import (
	"strings"
	"unicode"
)

const (
	maxNameLength = 200
	maxTextLength = 1000
)

// sanitizeName trims whitespace, strips control characters, and caps the
// result at maxNameLength runes.
func sanitizeName(s string) string {
	return sanitize(s, maxNameLength, false)
}

// sanitizeText is sanitizeName for long free-text fields (notes, effects):
// newlines and tabs survive, everything else follows the name rules.
func sanitizeText(s string) string {
	return sanitize(s, maxTextLength, true)
}

func sanitize(s string, max int, keepBreaks bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsControl(r) {
			if keepBreaks && (r == '\n' || r == '\t') {
				b.WriteRune(r)
			}
			continue
		}
		b.WriteRune(r)
	}
	out := strings.TrimSpace(b.String())
	runes := []rune(out)
	if len(runes) > max {
		out = string(runes[:max])
	}
	return out
}
