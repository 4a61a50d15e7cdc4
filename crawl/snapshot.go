package crawl

import (
	"context"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/campscout"
)

// Snapshotter captures rendered page screenshots and backfills the
// thumbnail of campsites whose pages expose no usable image.
type Snapshotter struct {
	Renderer  campscout.Renderer
	Blobs     campscout.BlobStore
	Campsites campscout.CampsiteService
}

// Snapshot renders the campsite's page, stores the screenshot, and sets
// the record's thumbnail to the stored URL. Records that already have a
// thumbnail are left untouched.
func (s *Snapshotter) Snapshot(ctx context.Context, campsite *campscout.Campsite) error {
	if campsite == nil {
		return campscout.Errorf(campscout.EINVALID, "campsite required")
	}
	if campsite.ThumbnailURL != "" {
		return nil
	}

	png, err := s.Renderer.Screenshot(ctx, campsite.URL)
	if err != nil {
		return fmt.Errorf("screenshot %s: %w", campsite.URL, err)
	}

	key := screenshotKey(campsite.URL)
	publicURL, err := s.Blobs.Put(ctx, key, png, "image/png")
	if err != nil {
		return fmt.Errorf("store screenshot: %w", err)
	}

	update := campscout.CampsiteUpdate{ThumbnailURL: &publicURL}
	if _, err := s.Campsites.UpdateCampsite(ctx, campsite.URL, update); err != nil {
		return fmt.Errorf("update thumbnail: %w", err)
	}

	campsite.ThumbnailURL = publicURL
	return nil
}

// screenshotKey derives a stable blob key from the page URL.
func screenshotKey(url string) string {
	return fmt.Sprintf("screenshots/%016x.png", xxhash.Sum64String(url))
}
