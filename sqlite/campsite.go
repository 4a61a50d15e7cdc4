package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/campscout"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ campscout.CampsiteService = (*CampsiteService)(nil)

// CampsiteService implements campscout.CampsiteService using SQLite.
type CampsiteService struct {
	db *DB
}

// NewCampsiteService creates a new CampsiteService.
func NewCampsiteService(db *DB) *CampsiteService {
	return &CampsiteService{db: db}
}

// CreateCampsite inserts a new campsite. The URL is the unique key;
// inserting a URL that already exists returns ECONFLICT.
func (s *CampsiteService) CreateCampsite(ctx context.Context, campsite *campscout.Campsite) error {
	if err := campsite.Validate(); err != nil {
		return err
	}

	exists, err := s.ExistsByURL(ctx, campsite.URL)
	if err != nil {
		return err
	}
	if exists {
		return campscout.Errorf(campscout.ECONFLICT, "campsite already exists for URL %q", campsite.URL)
	}

	// Defaults apply to the stored row only; the caller's record is
	// immutable after construction.
	category := campsite.Category
	if category == "" {
		category = campscout.CategoryStudy
	}
	crawledAt := campsite.CrawledAt
	if crawledAt.IsZero() {
		crawledAt = time.Now().UTC()
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO campsites (id, name, url, description, country, category, thumbnail_url, crawled_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, uuid.New().String(), campsite.Name, campsite.URL, campsite.Description, campsite.Country,
		category, campsite.ThumbnailURL, crawledAt.Format(time.RFC3339))

	return err
}

// FindCampsiteByURL retrieves a campsite by its source URL.
func (s *CampsiteService) FindCampsiteByURL(ctx context.Context, url string) (*campscout.Campsite, error) {
	var c campscout.Campsite
	var crawledAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT name, url, description, country, category, thumbnail_url, crawled_at
		FROM campsites
		WHERE url = ?
	`, url).Scan(&c.Name, &c.URL, &c.Description, &c.Country, &c.Category, &c.ThumbnailURL, &crawledAt)

	if err == sql.ErrNoRows {
		return nil, campscout.Errorf(campscout.ENOTFOUND, "campsite not found for URL %q", url)
	}
	if err != nil {
		return nil, err
	}

	c.CrawledAt, err = time.Parse(time.RFC3339, crawledAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse crawled_at: %w", err)
	}
	c.Source = campscout.Source

	return &c, nil
}

// ExistsByURL reports whether a campsite with the URL is stored.
func (s *CampsiteService) ExistsByURL(ctx context.Context, url string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM campsites WHERE url = ?", url).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// FindCampsites retrieves campsites matching the filter, most recently
// crawled first.
func (s *CampsiteService) FindCampsites(ctx context.Context, filter campscout.CampsiteFilter) ([]*campscout.Campsite, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT name, url, description, country, category, thumbnail_url, crawled_at FROM campsites WHERE 1=1")

	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.Country != nil {
		query.WriteString(" AND country = ?")
		args = append(args, *filter.Country)
	}
	if filter.Category != nil {
		query.WriteString(" AND category = ?")
		args = append(args, *filter.Category)
	}

	query.WriteString(" ORDER BY crawled_at DESC")

	if filter.Limit > 0 || filter.Offset > 0 {
		// SQLite rejects OFFSET without LIMIT; -1 means unlimited.
		limit := filter.Limit
		if limit <= 0 {
			limit = -1
		}
		query.WriteString(" LIMIT ? OFFSET ?")
		args = append(args, limit, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campsites []*campscout.Campsite
	for rows.Next() {
		var c campscout.Campsite
		var crawledAt string

		if err := rows.Scan(&c.Name, &c.URL, &c.Description, &c.Country, &c.Category,
			&c.ThumbnailURL, &crawledAt); err != nil {
			return nil, err
		}

		c.CrawledAt, err = time.Parse(time.RFC3339, crawledAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse crawled_at: %w", err)
		}
		c.Source = campscout.Source

		campsites = append(campsites, &c)
	}

	return campsites, rows.Err()
}

// UpdateCampsite updates an existing campsite identified by URL.
func (s *CampsiteService) UpdateCampsite(ctx context.Context, url string, upd campscout.CampsiteUpdate) (*campscout.Campsite, error) {
	campsite, err := s.FindCampsiteByURL(ctx, url)
	if err != nil {
		return nil, err
	}

	if upd.Description != nil {
		campsite.Description = *upd.Description
	}
	if upd.Country != nil {
		campsite.Country = *upd.Country
	}
	if upd.Category != nil {
		campsite.Category = *upd.Category
	}
	if upd.ThumbnailURL != nil {
		campsite.ThumbnailURL = *upd.ThumbnailURL
	}

	if err := campsite.Validate(); err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE campsites
		SET description = ?, country = ?, category = ?, thumbnail_url = ?
		WHERE url = ?
	`, campsite.Description, campsite.Country, campsite.Category, campsite.ThumbnailURL, url)

	if err != nil {
		return nil, err
	}

	return campsite, nil
}
