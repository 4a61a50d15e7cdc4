// Package crawl provides campsite crawling orchestration.
// It coordinates URL discovery, fetching, extraction, and storage of
// study-abroad program pages.
package crawl

import (
	"context"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/fwojciec/campscout"
	"golang.org/x/sync/errgroup"
)

// Crawler orchestrates the crawling of program sites.
type Crawler struct {
	Fetcher     campscout.Fetcher
	Extractor   campscout.Extractor
	Campsites   campscout.CampsiteService
	RateLimiter campscout.DomainLimiter
	Concurrency int
	RetryDelays []time.Duration
}

// ProgressEvent reports progress during a crawl operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// CrawlURL processes a single URL end to end: rate limit, fetch with
// retry, extract, and save. The returned result always carries the URL
// and elapsed duration; a page that fetches cleanly but yields no
// campsite is still a success.
func (c *Crawler) CrawlURL(ctx context.Context, rawURL string) campscout.CrawlResult {
	start := time.Now()
	result := campscout.CrawlResult{URL: rawURL}

	finish := func() campscout.CrawlResult {
		result.Duration = time.Since(start)
		return result
	}

	// Skip URLs already in storage.
	if exists, err := c.Campsites.ExistsByURL(ctx, rawURL); err == nil && exists {
		result.Success = true
		return finish()
	}

	if c.RateLimiter != nil {
		if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
			if err := c.RateLimiter.Wait(ctx, u.Host); err != nil {
				result.Err = err.Error()
				return finish()
			}
		}
	}

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, status, err := FetchWithRetryDelays(ctx, rawURL, c.Fetcher.Fetch, nil, delays)
	result.StatusCode = status
	if err != nil {
		result.Err = err.Error()
		return finish()
	}

	result.Success = true

	campsite := c.Extractor.Extract(html, rawURL)
	if campsite == nil {
		return finish()
	}

	if err := c.Campsites.CreateCampsite(ctx, campsite); err != nil {
		if campscout.ErrorCode(err) == campscout.ECONFLICT {
			// Saved by a concurrent worker; still counts as found.
			result.Campsite = campsite
			return finish()
		}
		result.Success = false
		result.Err = err.Error()
		return finish()
	}

	result.Campsite = campsite
	return finish()
}

// CrawlAll processes every URL with bounded concurrency and returns an
// aggregate summary. Results appear in the summary in input order.
// The progress callback, if provided, receives events as crawling
// proceeds.
func (c *Crawler) CrawlAll(ctx context.Context, urls []string, progress ProgressFunc) *campscout.Summary {
	start := time.Now()
	total := len(urls)

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	type positioned struct {
		position int
		result   campscout.CrawlResult
	}
	resultCh := make(chan positioned, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range urls {
			i, u := i, u
			g.Go(func() error {
				resultCh <- positioned{position: i, result: c.CrawlURL(gctx, u)}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]campscout.CrawlResult, total)
	var completed atomic.Int64
	for pr := range resultCh {
		completed.Add(1)
		results[pr.position] = pr.result

		if progress != nil {
			event := ProgressEvent{
				Completed: int(completed.Load()),
				Total:     total,
				URL:       pr.result.URL,
			}
			if pr.result.Success {
				event.Type = ProgressCompleted
			} else {
				event.Type = ProgressFailed
				event.Error = campscout.Errorf(campscout.EINTERNAL, "%s", pr.result.Err)
			}
			progress(event)
		}
	}

	summary := &campscout.Summary{
		TotalURLs: total,
		Results:   results,
		Elapsed:   time.Since(start),
	}
	for i := range results {
		if results[i].Success {
			summary.Successful++
		} else {
			summary.Failed++
		}
		if results[i].Found() {
			summary.CampsitesFound++
		}
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return summary
}
