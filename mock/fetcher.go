package mock

import (
	"context"

	"github.com/fwojciec/campscout"
)

var _ campscout.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of campscout.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, int, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, int, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
