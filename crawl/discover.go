package crawl

import (
	"context"
	"net/url"
	"strings"

	"github.com/fwojciec/campscout"
)

// DefaultMaxDepth bounds recursive link discovery from a seed page.
const DefaultMaxDepth = 2

var skipExtensions = []string{
	".pdf", ".doc", ".docx", ".jpg", ".jpeg", ".png", ".gif", ".css", ".js",
}

var skipPathSubstrings = []string{
	"admin", "login", "signup", "cart", "checkout", "account",
}

var followPathSubstrings = []string{
	"program", "course", "study", "camp", "abroad", "international",
}

// Discoverer finds candidate program pages by walking links from a seed
// URL, staying on the seed's domain. When a SitemapService is configured
// its URLs seed the frontier before link walking begins.
type Discoverer struct {
	Fetcher  campscout.Fetcher
	Parser   campscout.Parser
	Sitemaps campscout.SitemapService
	Limiter  campscout.DomainLimiter

	MaxDepth int
	Logger   LogFunc
}

// Discover walks links breadth-first from seed and returns the candidate
// URLs in discovery order. The seed itself is always included.
func (d *Discoverer) Discover(ctx context.Context, seed string) ([]string, error) {
	seedURL, err := url.Parse(seed)
	if err != nil || seedURL.Host == "" {
		return nil, campscout.Errorf(campscout.EINVALID, "invalid seed url %q", seed)
	}

	maxDepth := d.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	frontier := NewFrontier()
	frontier.Push(Link{URL: seed, Depth: 0})

	if d.Sitemaps != nil {
		urls, err := d.Sitemaps.DiscoverURLs(ctx, seed)
		if err != nil {
			if d.Logger != nil {
				d.Logger("sitemap discovery failed for %s: %v", seed, err)
			}
		} else {
			for _, u := range urls {
				if sameDomain(seedURL, u) && relevantURL(u) {
					frontier.Push(Link{URL: u, Depth: 1})
				}
			}
		}
	}

	var found []string
	for {
		link, ok := frontier.Pop()
		if !ok {
			break
		}
		if err := ctx.Err(); err != nil {
			return found, err
		}

		found = append(found, link.URL)
		if link.Depth >= maxDepth {
			continue
		}

		if d.Limiter != nil {
			if err := d.Limiter.Wait(ctx, seedURL.Host); err != nil {
				return found, err
			}
		}

		html, _, err := d.Fetcher.Fetch(ctx, link.URL)
		if err != nil {
			if d.Logger != nil {
				d.Logger("fetch %s: %v", link.URL, err)
			}
			continue
		}

		doc, err := d.Parser.Parse(html)
		if err != nil {
			continue
		}

		base, err := url.Parse(link.URL)
		if err != nil {
			continue
		}

		doc.Each("a[href]", func(el campscout.Element) bool {
			abs := resolveLink(base, el.Attr("href"))
			if abs == "" {
				return true
			}
			if !sameDomain(seedURL, abs) || !relevantURL(abs) {
				return true
			}
			frontier.Push(Link{URL: abs, Depth: link.Depth + 1})
			return true
		})
	}

	return found, nil
}

// resolveLink resolves href against base, returning "" for non-http
// schemes and unparseable references.
func resolveLink(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	abs := base.ResolveReference(ref)
	if abs.Scheme != "http" && abs.Scheme != "https" {
		return ""
	}
	return abs.String()
}

// sameDomain reports whether raw shares a host with seed, treating the
// "www." prefix as insignificant.
func sameDomain(seed *url.URL, raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return stripWWW(u.Host) == stripWWW(seed.Host)
}

func stripWWW(host string) string {
	return strings.TrimPrefix(strings.ToLower(host), "www.")
}

// relevantURL filters out assets and non-content paths, keeping URLs
// whose path suggests a program or course page.
func relevantURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	path := strings.ToLower(u.Path)

	for _, ext := range skipExtensions {
		if strings.HasSuffix(path, ext) {
			return false
		}
	}
	for _, s := range skipPathSubstrings {
		if strings.Contains(path, s) {
			return false
		}
	}
	if path == "" || path == "/" {
		return true
	}
	for _, s := range followPathSubstrings {
		if strings.Contains(path, s) {
			return true
		}
	}
	return false
}
