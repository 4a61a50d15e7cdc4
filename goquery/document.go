// Package goquery provides a goquery-backed implementation of the
// campscout.Parser and campscout.Document capabilities consumed by the
// extraction engine.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/campscout"
)

// Compile-time interface verification.
var _ campscout.Parser = (*Parser)(nil)

// Parser parses raw HTML into a campscout.Document using goquery.
// The underlying html5 parser recovers from malformed and truncated
// markup, so Parse only fails on reader-level errors.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses the HTML into a Document.
func (p *Parser) Parse(html string) (campscout.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, campscout.Errorf(campscout.EINVALID, "failed to parse HTML: %v", err)
	}
	return &document{doc: doc}, nil
}

var _ campscout.Document = (*document)(nil)

// document wraps a goquery.Document. It is immutable after construction
// and owned by a single extraction call.
type document struct {
	doc *goquery.Document
}

// Text returns the text content of the whole document, including the
// title. Matches the behavior the keyword heuristics are tuned for.
func (d *document) Text() string {
	return d.doc.Text()
}

// Find returns the first element matching the CSS selector.
func (d *document) Find(selector string) (campscout.Element, bool) {
	sel := d.doc.Find(selector).First()
	if sel.Length() == 0 {
		return nil, false
	}
	return &element{sel: sel}, true
}

// Each visits elements matching the selector in document order.
func (d *document) Each(selector string, fn func(campscout.Element) bool) {
	d.doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		return fn(&element{sel: sel})
	})
}

var _ campscout.Element = (*element)(nil)

type element struct {
	sel *goquery.Selection
}

func (e *element) Text() string {
	return e.sel.Text()
}

func (e *element) Attr(name string) string {
	return e.sel.AttrOr(name, "")
}
