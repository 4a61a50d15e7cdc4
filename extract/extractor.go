// Package extract implements the content-relevance and field-extraction
// heuristic engine. A deterministic pipeline of ordered fallback
// strategies converts unstructured HTML into a partially-filled campsite
// record, gated by a keyword-based relevance classifier.
//
// The engine is stateless aside from its fixed keyword and pattern
// tables, which are initialized at startup and never mutated. Extraction
// is pure CPU-bound text processing and safe for concurrent use.
package extract

import (
	"time"

	"github.com/fwojciec/campscout"
)

// Compile-time interface verification.
var _ campscout.Extractor = (*Extractor)(nil)

// Extractor assembles campsite records from raw HTML.
type Extractor struct {
	parser campscout.Parser
}

// NewExtractor creates an Extractor that parses pages with the given
// parser.
func NewExtractor(parser campscout.Parser) *Extractor {
	return &Extractor{parser: parser}
}

// Extract parses the HTML once, gates it through the relevance
// classifier, then runs every field strategy against the same parsed
// document. The name is mandatory: without one there is no record.
//
// Extract never fails: parse errors, missing content, and unexpected
// faults inside any strategy all degrade to a nil record.
func (e *Extractor) Extract(html, sourceURL string) (campsite *campscout.Campsite) {
	// A strategy panicking on pathological input must not escape to
	// the crawl loop.
	defer func() {
		if recover() != nil {
			campsite = nil
		}
	}()

	doc, err := e.parser.Parse(html)
	if err != nil {
		return nil
	}

	if !Relevant(doc) {
		return nil
	}

	name := extractName(doc, sourceURL)
	if name == "" {
		return nil
	}

	return &campscout.Campsite{
		Name:            name,
		URL:             sourceURL,
		Description:     extractDescription(doc),
		Country:         extractCountry(doc),
		Category:        extractCategory(doc),
		ThumbnailURL:    extractThumbnail(doc, sourceURL),
		MetaTitle:       extractMetaTitle(doc),
		MetaDescription: extractMetaDescription(doc),
		Language:        extractLanguage(doc),
		CrawledAt:       time.Now().UTC(),
		Source:          campscout.Source,
	}
}
