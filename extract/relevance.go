package extract

import (
	"strings"

	"github.com/fwojciec/campscout"
)

// Relevant reports whether the page belongs to the study-abroad domain.
// It counts vocabulary hits in the full document text and, separately,
// in the meta keywords and description tags; one hit anywhere is enough.
// This is a cheap binary gate, not a ranking, and it errs toward inclusion.
func Relevant(doc campscout.Document) bool {
	if countKeywords(strings.ToLower(doc.Text())) > 0 {
		return true
	}

	var meta strings.Builder
	if el, ok := doc.Find(`meta[name="keywords"]`); ok {
		meta.WriteString(el.Attr("content"))
	}
	if el, ok := doc.Find(`meta[name="description"]`); ok {
		meta.WriteString(el.Attr("content"))
	}
	return countKeywords(strings.ToLower(meta.String())) > 0
}
