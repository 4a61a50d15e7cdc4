package sqlite_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/fwojciec/campscout"
	"github.com/fwojciec/campscout/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCampsite(url string) *campscout.Campsite {
	return &campscout.Campsite{
		Name:         "Amazing Summer Camp",
		URL:          url,
		Description:  "A summer camp for international students.",
		Country:      "United Kingdom",
		Category:     campscout.CategorySummer,
		ThumbnailURL: "https://example.com/hero.jpg",
	}
}

func TestCampsiteService_CreateCampsite(t *testing.T) {
	t.Parallel()

	t.Run("creates campsite", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewCampsiteService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateCampsite(ctx, testCampsite("https://example.com/camp")))

		found, err := svc.FindCampsiteByURL(ctx, "https://example.com/camp")
		require.NoError(t, err)
		assert.Equal(t, "Amazing Summer Camp", found.Name)
		assert.Equal(t, campscout.CategorySummer, found.Category)
		assert.Equal(t, "United Kingdom", found.Country)
		assert.False(t, found.CrawledAt.IsZero())
	})

	t.Run("duplicate URL returns conflict", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewCampsiteService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateCampsite(ctx, testCampsite("https://example.com/camp")))

		err := svc.CreateCampsite(ctx, testCampsite("https://example.com/camp"))
		require.Error(t, err)
		assert.Equal(t, campscout.ECONFLICT, campscout.ErrorCode(err))
	})

	t.Run("invalid campsite rejected", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewCampsiteService(db)

		err := svc.CreateCampsite(context.Background(), &campscout.Campsite{URL: "https://example.com"})
		require.Error(t, err)
		assert.Equal(t, campscout.EINVALID, campscout.ErrorCode(err))
	})

	t.Run("empty category defaults to study", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewCampsiteService(db)
		ctx := context.Background()

		c := testCampsite("https://example.com/camp")
		c.Category = ""
		require.NoError(t, svc.CreateCampsite(ctx, c))

		found, err := svc.FindCampsiteByURL(ctx, c.URL)
		require.NoError(t, err)
		assert.Equal(t, campscout.CategoryStudy, found.Category)
	})

	t.Run("does not mutate the caller's record", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewCampsiteService(db)
		ctx := context.Background()

		c := testCampsite("https://example.com/camp")
		c.Category = ""
		require.NoError(t, svc.CreateCampsite(ctx, c))

		// The stored row gets the default; the record passed in stays
		// exactly as constructed.
		assert.Empty(t, c.Category)
	})

	t.Run("meta fields are not persisted", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewCampsiteService(db)
		ctx := context.Background()

		c := testCampsite("https://example.com/camp")
		c.MetaTitle = "Meta Title"
		c.MetaDescription = "Meta Description"
		c.Language = "en"
		require.NoError(t, svc.CreateCampsite(ctx, c))

		found, err := svc.FindCampsiteByURL(ctx, c.URL)
		require.NoError(t, err)
		assert.Empty(t, found.MetaTitle)
		assert.Empty(t, found.MetaDescription)
		assert.Empty(t, found.Language)
	})
}

func TestCampsiteService_ExistsByURL(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := sqlite.NewCampsiteService(db)
	ctx := context.Background()

	exists, err := svc.ExistsByURL(ctx, "https://example.com/camp")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, svc.CreateCampsite(ctx, testCampsite("https://example.com/camp")))

	exists, err = svc.ExistsByURL(ctx, "https://example.com/camp")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCampsiteService_FindCampsiteByURL_NotFound(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := sqlite.NewCampsiteService(db)

	_, err := svc.FindCampsiteByURL(context.Background(), "https://missing.example.com")
	require.Error(t, err)
	assert.Equal(t, campscout.ENOTFOUND, campscout.ErrorCode(err))
}

func TestCampsiteService_FindCampsites(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T) (*sqlite.CampsiteService, context.Context) {
		t.Helper()
		db := setupTestDB(t)
		svc := sqlite.NewCampsiteService(db)
		ctx := context.Background()

		countries := []string{"United Kingdom", "France", "United Kingdom"}
		categories := []string{campscout.CategorySummer, campscout.CategoryStudy, campscout.CategoryWinter}
		for i := 0; i < 3; i++ {
			c := testCampsite(fmt.Sprintf("https://example.com/camp-%d", i))
			c.Country = countries[i]
			c.Category = categories[i]
			// Distinct timestamps so crawled_at ordering is stable.
			c.CrawledAt = time.Date(2026, 8, i+1, 12, 0, 0, 0, time.UTC)
			require.NoError(t, svc.CreateCampsite(ctx, c))
		}
		return svc, ctx
	}

	t.Run("no filter returns all", func(t *testing.T) {
		t.Parallel()

		svc, ctx := seed(t)
		campsites, err := svc.FindCampsites(ctx, campscout.CampsiteFilter{})
		require.NoError(t, err)
		assert.Len(t, campsites, 3)
	})

	t.Run("filter by country", func(t *testing.T) {
		t.Parallel()

		svc, ctx := seed(t)
		country := "United Kingdom"
		campsites, err := svc.FindCampsites(ctx, campscout.CampsiteFilter{Country: &country})
		require.NoError(t, err)
		assert.Len(t, campsites, 2)
	})

	t.Run("filter by category", func(t *testing.T) {
		t.Parallel()

		svc, ctx := seed(t)
		category := campscout.CategoryWinter
		campsites, err := svc.FindCampsites(ctx, campscout.CampsiteFilter{Category: &category})
		require.NoError(t, err)
		require.Len(t, campsites, 1)
		assert.Equal(t, "https://example.com/camp-2", campsites[0].URL)
	})

	t.Run("limit applies", func(t *testing.T) {
		t.Parallel()

		svc, ctx := seed(t)
		campsites, err := svc.FindCampsites(ctx, campscout.CampsiteFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, campsites, 2)
	})

	t.Run("offset without limit paginates", func(t *testing.T) {
		t.Parallel()

		svc, ctx := seed(t)
		campsites, err := svc.FindCampsites(ctx, campscout.CampsiteFilter{Offset: 1})
		require.NoError(t, err)
		assert.Len(t, campsites, 2)
	})

	t.Run("limit and offset combine", func(t *testing.T) {
		t.Parallel()

		svc, ctx := seed(t)

		all, err := svc.FindCampsites(ctx, campscout.CampsiteFilter{})
		require.NoError(t, err)
		require.Len(t, all, 3)

		campsites, err := svc.FindCampsites(ctx, campscout.CampsiteFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		require.Len(t, campsites, 1)
		assert.Equal(t, all[1].URL, campsites[0].URL)
	})
}

func TestCampsiteService_UpdateCampsite(t *testing.T) {
	t.Parallel()

	t.Run("updates thumbnail", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewCampsiteService(db)
		ctx := context.Background()

		c := testCampsite("https://example.com/camp")
		c.ThumbnailURL = ""
		require.NoError(t, svc.CreateCampsite(ctx, c))

		thumb := "https://cdn.example.com/screenshots/abc.png"
		updated, err := svc.UpdateCampsite(ctx, c.URL, campscout.CampsiteUpdate{ThumbnailURL: &thumb})
		require.NoError(t, err)
		assert.Equal(t, thumb, updated.ThumbnailURL)

		found, err := svc.FindCampsiteByURL(ctx, c.URL)
		require.NoError(t, err)
		assert.Equal(t, thumb, found.ThumbnailURL)
	})

	t.Run("nil fields left unchanged", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewCampsiteService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateCampsite(ctx, testCampsite("https://example.com/camp")))

		country := "France"
		updated, err := svc.UpdateCampsite(ctx, "https://example.com/camp", campscout.CampsiteUpdate{Country: &country})
		require.NoError(t, err)
		assert.Equal(t, "France", updated.Country)
		assert.Equal(t, campscout.CategorySummer, updated.Category)
		assert.Equal(t, "Amazing Summer Camp", updated.Name)
	})

	t.Run("missing URL returns not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewCampsiteService(db)

		_, err := svc.UpdateCampsite(context.Background(), "https://missing.example.com", campscout.CampsiteUpdate{})
		require.Error(t, err)
		assert.Equal(t, campscout.ENOTFOUND, campscout.ErrorCode(err))
	})
}
