package crawl

import (
	"net/url"
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
)

// Link is a discovered URL with its distance from the seed.
type Link struct {
	URL   string
	Depth int
}

// defaultFrontierCapacity sizes the bloom filter for a typical site crawl.
const defaultFrontierCapacity = 100000

// Frontier is a FIFO queue of links with probabilistic deduplication.
// URLs are normalized before insertion so fragment variants of the same
// page are visited only once. Not safe for concurrent use.
type Frontier struct {
	queue []Link
	seen  *bloom.BloomFilter
}

// NewFrontier returns an empty frontier.
func NewFrontier() *Frontier {
	return &Frontier{
		seen: bloom.NewWithEstimates(defaultFrontierCapacity, 0.01),
	}
}

// Push adds a link to the frontier unless its URL has been seen before.
// It reports whether the link was accepted.
func (f *Frontier) Push(link Link) bool {
	key := normalizeURL(link.URL)
	if key == "" {
		return false
	}
	if f.seen.TestString(key) {
		return false
	}
	f.seen.AddString(key)
	f.queue = append(f.queue, Link{URL: key, Depth: link.Depth})
	return true
}

// Pop removes and returns the oldest link in the frontier.
func (f *Frontier) Pop() (Link, bool) {
	if len(f.queue) == 0 {
		return Link{}, false
	}
	link := f.queue[0]
	f.queue = f.queue[1:]
	return link, true
}

// Len returns the number of queued links.
func (f *Frontier) Len() int {
	return len(f.queue)
}

// normalizeURL strips fragments and trailing slashes so equivalent URLs
// share a single frontier entry.
func normalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	u.Fragment = ""
	s := u.String()
	if strings.HasSuffix(u.Path, "/") && u.Path != "/" {
		s = strings.TrimSuffix(s, "/")
	}
	return s
}
