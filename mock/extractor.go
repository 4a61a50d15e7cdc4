package mock

import "github.com/fwojciec/campscout"

var _ campscout.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of campscout.Extractor.
type Extractor struct {
	ExtractFn func(html, sourceURL string) *campscout.Campsite
}

func (e *Extractor) Extract(html, sourceURL string) *campscout.Campsite {
	return e.ExtractFn(html, sourceURL)
}
