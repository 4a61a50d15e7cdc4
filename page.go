package campscout

// Element is a single node in a parsed page.
type Element interface {
	// Text returns the element's visible text.
	Text() string

	// Attr returns the value of the named attribute, or "" if absent.
	Attr(name string) string
}

// Document is a parsed HTML page. It exposes the narrow set of lookups
// the extraction strategies need so the concrete parsing library stays
// swappable. A Document is immutable for the duration of one extraction
// call and owned exclusively by that call; it is never shared across
// concurrent extractions.
type Document interface {
	// Text returns the full visible text of the document.
	Text() string

	// Find returns the first element matching the CSS selector.
	// The bool result is false if nothing matched.
	Find(selector string) (Element, bool)

	// Each calls fn for every element matching the CSS selector in
	// document order, stopping early if fn returns false.
	Each(selector string, fn func(Element) bool)
}

// Parser parses raw HTML into a Document. Malformed or truncated markup
// must not fail the parse outright where the underlying library can
// recover; an unparsable input returns an error which callers treat as
// "no usable content".
type Parser interface {
	Parse(html string) (Document, error)
}
