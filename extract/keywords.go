package extract

import "strings"

// keywords is the domain vocabulary used by the relevance gate and the
// paragraph description fallback. Lower-cased, initialized once, never
// mutated; safe to share across concurrent extraction calls.
var keywords = []string{
	"study abroad",
	"summer camp",
	"winter camp",
	"language camp",
	"educational program",
	"study tour",
	"international program",
	"student exchange",
	"immersion program",
	"academic program",
}

// Keywords returns a copy of the domain vocabulary.
func Keywords() []string {
	out := make([]string, len(keywords))
	copy(out, keywords)
	return out
}

// countKeywords returns the number of vocabulary entries contained in
// text. Matching is substring containment, not word-boundary matching;
// intentionally permissive. The text must already be lower-cased.
func countKeywords(text string) int {
	var n int
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			n++
		}
	}
	return n
}

// containsKeyword reports whether lower-cased text contains at least one
// vocabulary entry.
func containsKeyword(text string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
