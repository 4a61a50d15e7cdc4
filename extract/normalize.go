package extract

import (
	"regexp"
	"strings"
)

var whitespaceRE = regexp.MustCompile(`\s+`)

// Normalize collapses any run of whitespace (including newlines and
// tabs) to a single ASCII space, trims leading and trailing space, and
// strips ASCII control characters. It is pure and idempotent.
func Normalize(raw string) string {
	s := whitespaceRE.ReplaceAllString(strings.TrimSpace(raw), " ")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// truncate caps s at max characters. Slicing is rune-aware so a capped
// description never ends mid-character.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
