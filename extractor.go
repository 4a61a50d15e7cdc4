package campscout

// Extractor converts raw HTML into a campsite record.
type Extractor interface {
	// Extract parses the HTML and, if the page is relevant to the
	// study-abroad domain and a name can be derived, returns a fully
	// assembled record. It returns nil when the page is irrelevant,
	// when no name is derivable, or when the markup is unusable;
	// callers cannot distinguish the three cases.
	//
	// Extract is a total function: it never panics and never returns
	// an error, and it is safe to call concurrently.
	Extract(html, sourceURL string) *Campsite
}
