// Package fs provides file-based implementations of the blob store and
// helpers for URL-list and result files.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/campscout"
)

// Ensure BlobStore implements campscout.BlobStore at compile time.
var _ campscout.BlobStore = (*BlobStore)(nil)

// BlobStore stores blobs under a base directory and serves their public
// URLs by joining the key onto a base URL. Suitable for deployments
// where the blob directory is published by a static file server or
// synced to object storage.
type BlobStore struct {
	baseDir string
	baseURL string
}

// NewBlobStore creates a BlobStore rooted at baseDir. Public URLs are
// baseURL + "/" + key.
func NewBlobStore(baseDir, baseURL string) *BlobStore {
	return &BlobStore{
		baseDir: baseDir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// Put stores data under the key and returns its public URL. Parent
// directories are created as needed. The content type is determined by
// file extension on the serving side and ignored here.
func (s *BlobStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if key == "" || strings.Contains(key, "..") {
		return "", campscout.Errorf(campscout.EINVALID, "invalid blob key %q", key)
	}

	path := filepath.Join(s.baseDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}

	return s.baseURL + "/" + key, nil
}
