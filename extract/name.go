package extract

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/fwojciec/campscout"
)

// siteSuffixRE matches trailing "| Site Name" style suffixes in page
// titles, starting at the first pipe, hyphen, or en-dash.
var siteSuffixRE = regexp.MustCompile(`\s*[|\-–].*$`)

// extractName derives the program name. The fallback chain is an
// explicit ordered list; the first strategy yielding non-empty content
// wins. Returns "" when no name is derivable, which invalidates the
// whole record.
func extractName(doc campscout.Document, sourceURL string) string {
	strategies := []func() string{
		func() string { return elementText(doc, "h1") },
		func() string { return titleWithoutSiteSuffix(doc) },
		func() string { return metaContent(doc, `meta[property="og:title"]`) },
		func() string { return metaContent(doc, `meta[name="title"]`) },
		func() string { return nameFromHost(sourceURL) },
	}
	return firstNonEmpty(strategies)
}

// titleWithoutSiteSuffix returns the <title> text with everything from
// the first separator onward removed.
func titleWithoutSiteSuffix(doc campscout.Document) string {
	el, ok := doc.Find("title")
	if !ok {
		return ""
	}
	title := strings.TrimSpace(el.Text())
	if title == "" {
		return ""
	}
	return Normalize(siteSuffixRE.ReplaceAllString(title, ""))
}

// nameFromHost derives a name from the URL's host: strip a leading
// "www.", take the label before the first dot, capitalize it.
func nameFromHost(sourceURL string) string {
	u, err := url.Parse(sourceURL)
	if err != nil {
		return ""
	}
	host := strings.TrimPrefix(u.Hostname(), "www.")
	name, _, _ := strings.Cut(host, ".")
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// firstNonEmpty evaluates strategies in order and returns the first
// non-empty result.
func firstNonEmpty(strategies []func() string) string {
	for _, s := range strategies {
		if v := s(); v != "" {
			return v
		}
	}
	return ""
}

// elementText returns the normalized text of the first element matching
// the selector, or "".
func elementText(doc campscout.Document, selector string) string {
	el, ok := doc.Find(selector)
	if !ok {
		return ""
	}
	return Normalize(el.Text())
}

// metaContent returns the normalized content attribute of the first
// element matching the selector, or "".
func metaContent(doc campscout.Document, selector string) string {
	el, ok := doc.Find(selector)
	if !ok {
		return ""
	}
	return Normalize(el.Attr("content"))
}
