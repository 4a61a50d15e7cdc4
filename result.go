package campscout

import "time"

// CrawlResult is the outcome of attempting a single URL.
//
// Invariants: Success implies Err is empty. Campsite non-nil implies
// Success, but Success does not imply a Campsite: a page can fetch
// cleanly and still be judged irrelevant.
type CrawlResult struct {
	URL        string        `json:"url"`
	Success    bool          `json:"success"`
	Campsite   *Campsite     `json:"-"`
	Err        string        `json:"error,omitempty"`
	StatusCode int           `json:"statusCode,omitempty"`
	Duration   time.Duration `json:"-"`
}

// Found reports whether the attempt produced a campsite record.
func (r *CrawlResult) Found() bool {
	return r.Campsite != nil
}

// Summary aggregates the results of a batch crawl.
type Summary struct {
	TotalURLs      int           `json:"totalUrls"`
	Successful     int           `json:"successful"`
	Failed         int           `json:"failed"`
	CampsitesFound int           `json:"campsitesFound"`
	Elapsed        time.Duration `json:"-"`
	Results        []CrawlResult `json:"results"`
}

// SuccessRate returns the fraction of successful attempts as a
// percentage. Returns 0 for an empty summary.
func (s *Summary) SuccessRate() float64 {
	if s.TotalURLs == 0 {
		return 0
	}
	return float64(s.Successful) / float64(s.TotalURLs) * 100
}
