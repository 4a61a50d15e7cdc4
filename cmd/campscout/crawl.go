package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/campscout/crawl"
	"github.com/fwojciec/campscout/fs"
)

const summaryRounding = 100 * time.Millisecond

// defaultSeedURLs are crawled when no URL file is given.
var defaultSeedURLs = []string{
	"https://www.cambridgeimmersion.com",
	"https://www.ef.com/wwen/programs/",
	"https://www.kaplaninternational.com",
	"https://www.studyabroad.com",
	"https://www.gooverseas.com/study-abroad",
}

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	urls := defaultSeedURLs
	if c.URLs != "" {
		loaded, err := fs.LoadURLs(c.URLs)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		if len(loaded) == 0 {
			return fmt.Errorf("no URLs found in %q", c.URLs)
		}
		urls = loaded
	}

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Crawling %d URLs\n", event.Total)
		case crawl.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s\n", event.Completed, event.Total, event.URL)
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  [%d/%d] failed %s: %v\n", event.Completed, event.Total, event.URL, event.Error)
		case crawl.ProgressFinished:
			// Summary printed after crawl completes
		}
	}

	summary := deps.Crawler.CrawlAll(deps.Ctx, urls, progress)

	if deps.Snapshotter != nil {
		for _, result := range summary.Results {
			if !result.Found() || result.Campsite.ThumbnailURL != "" {
				continue
			}
			if err := deps.Snapshotter.Snapshot(deps.Ctx, result.Campsite); err != nil {
				fmt.Fprintf(deps.Stderr, "  screenshot %s: %v\n", result.URL, err)
			}
		}
	}

	fmt.Fprintf(deps.Stdout, "Done: %d/%d succeeded (%.0f%%), %d campsites found in %s\n",
		summary.Successful, summary.TotalURLs, summary.SuccessRate(),
		summary.CampsitesFound, summary.Elapsed.Round(summaryRounding))

	if c.Output != "" {
		if err := fs.WriteSummary(c.Output, summary); err != nil {
			fmt.Fprintf(deps.Stderr, "error writing summary: %v\n", err)
			return err
		}
		fmt.Fprintf(deps.Stdout, "Summary written to %s\n", c.Output)
	}

	return nil
}
