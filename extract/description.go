package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/campscout"
)

// minMetaDescriptionLen gates meta descriptions that are too short to be
// a substantial program description.
const minMetaDescriptionLen = 50

// minParagraphLen gates the paragraph fallback; shorter paragraphs are
// navigation fragments more often than descriptions.
const minParagraphLen = 100

// extractDescription derives the program description. Meta tags win over
// body paragraphs; the paragraph fallback additionally requires a domain
// keyword so boilerplate paragraphs don't leak in. The result is capped
// at campscout.MaxDescriptionLen characters.
func extractDescription(doc campscout.Document) string {
	strategies := []func() string{
		func() string { return substantialMeta(doc, `meta[name="description"]`) },
		func() string { return substantialMeta(doc, `meta[property="og:description"]`) },
		func() string { return descriptiveParagraph(doc) },
	}
	return firstNonEmpty(strategies)
}

func substantialMeta(doc campscout.Document, selector string) string {
	desc := metaContent(doc, selector)
	if utf8.RuneCountInString(desc) <= minMetaDescriptionLen {
		return ""
	}
	return truncate(desc, campscout.MaxDescriptionLen)
}

// descriptiveParagraph scans paragraphs in document order and returns
// the first that is long enough and mentions the domain vocabulary.
func descriptiveParagraph(doc campscout.Document) string {
	var found string
	doc.Each("p", func(el campscout.Element) bool {
		text := Normalize(el.Text())
		if utf8.RuneCountInString(text) > minParagraphLen && containsKeyword(strings.ToLower(text)) {
			found = truncate(text, campscout.MaxDescriptionLen)
			return false
		}
		return true
	})
	return found
}
