package extract

import "github.com/fwojciec/campscout"

// extractMetaTitle returns the raw <title> text, normalized. Unlike the
// name strategy, no site-suffix stripping is applied.
func extractMetaTitle(doc campscout.Document) string {
	return elementText(doc, "title")
}

// extractMetaDescription returns the meta description, normalized, with
// no length or relevance gating.
func extractMetaDescription(doc campscout.Document) string {
	return metaContent(doc, `meta[name="description"]`)
}

// extractLanguage returns the page language: <html lang> first, then the
// content-language http-equiv meta.
func extractLanguage(doc campscout.Document) string {
	if el, ok := doc.Find("html"); ok {
		if lang := el.Attr("lang"); lang != "" {
			return lang
		}
	}
	if el, ok := doc.Find(`meta[http-equiv="content-language"]`); ok {
		return el.Attr("content")
	}
	return ""
}
