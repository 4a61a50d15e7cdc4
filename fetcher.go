package campscout

import "context"

// Fetcher retrieves raw HTML from URLs. Implementations own retries,
// timeouts, user-agent, and rate limiting concerns; the extractor never
// touches the network.
type Fetcher interface {
	// Fetch retrieves the page body and HTTP status for the URL.
	// A non-2xx response is returned as an error alongside the status.
	Fetch(ctx context.Context, url string) (html string, status int, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// Renderer captures page screenshots using a real browser engine.
type Renderer interface {
	// Screenshot navigates to the URL and returns a PNG of the
	// rendered viewport.
	Screenshot(ctx context.Context, url string) ([]byte, error)

	// Close releases browser resources.
	Close() error
}

// BlobStore persists binary blobs and exposes them at public URLs.
type BlobStore interface {
	// Put stores data under the key and returns its public URL.
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// DomainLimiter provides per-domain rate limiting for polite crawling.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
