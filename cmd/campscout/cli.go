package main

import (
	"context"
	"io"

	"github.com/fwojciec/campscout"
	"github.com/fwojciec/campscout/crawl"
	"github.com/fwojciec/campscout/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	DB          *sqlite.DB
	Campsites   campscout.CampsiteService
	Sitemaps    campscout.SitemapService
	Crawler     *crawl.Crawler
	Discoverer  *crawl.Discoverer
	Snapshotter *crawl.Snapshotter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log service calls to stderr"`

	Crawl    CrawlCmd    `cmd:"" help:"Crawl URLs and extract campsite records"`
	Discover DiscoverCmd `cmd:"" help:"Discover candidate program URLs from a seed site"`
	List     ListCmd     `cmd:"" help:"List stored campsites"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URLs        string  `short:"u" help:"File with URLs to crawl, one per line"`
	Output      string  `short:"o" default:"results.json" help:"Write the crawl summary to this file"`
	Screenshot  bool    `short:"s" help:"Capture screenshots for campsites without a thumbnail"`
	Delay       float64 `short:"d" default:"1" help:"Seconds between requests to the same domain"`
	Concurrency int     `short:"c" default:"1" help:"Concurrent fetch limit"`
}

// DiscoverCmd is the "discover" subcommand.
type DiscoverCmd struct {
	Seed     string `arg:"" help:"Seed URL to walk from"`
	MaxDepth int    `default:"2" help:"Maximum link depth from the seed"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Country  string `help:"Filter by country"`
	Category string `help:"Filter by category (summer, winter, online, study)"`
}
