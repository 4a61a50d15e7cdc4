package mock

import (
	"context"

	"github.com/fwojciec/campscout"
)

// Compile-time interface verification.
var (
	_ campscout.Renderer  = (*Renderer)(nil)
	_ campscout.BlobStore = (*BlobStore)(nil)
)

// Renderer is a mock implementation of campscout.Renderer.
type Renderer struct {
	ScreenshotFn func(ctx context.Context, url string) ([]byte, error)
	CloseFn      func() error
}

func (r *Renderer) Screenshot(ctx context.Context, url string) ([]byte, error) {
	return r.ScreenshotFn(ctx, url)
}

func (r *Renderer) Close() error {
	if r.CloseFn == nil {
		return nil
	}
	return r.CloseFn()
}

// BlobStore is a mock implementation of campscout.BlobStore.
type BlobStore struct {
	PutFn func(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

func (s *BlobStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	return s.PutFn(ctx, key, data, contentType)
}
