package extract

import (
	"net/url"
	"strings"

	"github.com/fwojciec/campscout"
)

// heroSelectors locate hero/banner/header images by class-name
// heuristics, tried in order.
var heroSelectors = []string{
	`img[class*="hero"]`,
	`img[class*="banner"]`,
	`img[class*="header"]`,
	".hero img",
	".banner img",
	".header img",
}

// skipImageSubstrings marks image sources that are icons, logos, or
// tracking pixels rather than content images.
var skipImageSubstrings = []string{"icon", "logo", "pixel", "track"}

// extractThumbnail derives a thumbnail image URL. Social meta tags win,
// then hero-image selectors, then the first plausible content image.
// Relative references are resolved against the page's source URL.
func extractThumbnail(doc campscout.Document, sourceURL string) string {
	strategies := []func() string{
		func() string { return resolveRef(sourceURL, rawMetaContent(doc, `meta[property="og:image"]`)) },
		func() string { return resolveRef(sourceURL, rawMetaContent(doc, `meta[name="twitter:image"]`)) },
		func() string { return heroImage(doc, sourceURL) },
		func() string { return firstContentImage(doc, sourceURL) },
	}
	return firstNonEmpty(strategies)
}

func heroImage(doc campscout.Document, sourceURL string) string {
	for _, selector := range heroSelectors {
		el, ok := doc.Find(selector)
		if !ok {
			continue
		}
		if src := el.Attr("src"); src != "" {
			return resolveRef(sourceURL, src)
		}
	}
	return ""
}

// firstContentImage scans images in document order and returns the first
// whose source doesn't look like an icon, logo, or tracking pixel.
func firstContentImage(doc campscout.Document, sourceURL string) string {
	var found string
	doc.Each("img", func(el campscout.Element) bool {
		src := el.Attr("src")
		if src == "" {
			src = el.Attr("data-src")
		}
		if src == "" {
			return true
		}
		lower := strings.ToLower(src)
		for _, skip := range skipImageSubstrings {
			if strings.Contains(lower, skip) {
				return true
			}
		}
		found = resolveRef(sourceURL, src)
		return false
	})
	return found
}

// rawMetaContent returns the content attribute without normalization;
// URL values must not have internal characters altered.
func rawMetaContent(doc campscout.Document, selector string) string {
	el, ok := doc.Find(selector)
	if !ok {
		return ""
	}
	return strings.TrimSpace(el.Attr("content"))
}

// resolveRef joins a possibly-relative reference against the page URL.
// Absolute URLs pass through unchanged.
func resolveRef(baseURL, ref string) string {
	if ref == "" {
		return ""
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return ref
	}
	resolved, err := base.Parse(ref)
	if err != nil {
		return ref
	}
	return resolved.String()
}
