package mock

import (
	"context"

	"github.com/fwojciec/campscout"
)

// Compile-time interface verification.
var (
	_ campscout.SitemapService = (*SitemapService)(nil)
	_ campscout.DomainLimiter  = (*DomainLimiter)(nil)
)

// SitemapService is a mock implementation of campscout.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL)
}

// DomainLimiter is a mock implementation of campscout.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx, domain)
}
