// Package campscout discovers and extracts structured study-abroad and
// summer-camp program records ("campsites") from arbitrary web pages.
// Given a URL it fetches the page, decides whether the content belongs to
// the study-abroad domain, and extracts a bounded set of fields using
// heuristics over HTML structure and meta tags. Extracted records are
// persisted with deduplication by URL.
//
// This package contains domain types and capability interfaces following
// Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., sqlite/,
// goquery/, rod/) or their concern (extract/, crawl/).
package campscout
