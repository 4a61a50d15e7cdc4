package campscout

import "context"

// SitemapService discovers URLs from website sitemaps. Used to seed the
// crawl before falling back to recursive link discovery.
type SitemapService interface {
	// DiscoverURLs finds URLs advertised by the site's sitemaps.
	// It checks robots.txt for sitemap directives first, then falls
	// back to /sitemap.xml. Sitemap indexes are resolved recursively.
	// Returns an empty slice when the site has no sitemap.
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}
