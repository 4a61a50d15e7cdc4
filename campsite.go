package campscout

import (
	"context"
	"strings"
	"time"
)

// Source is the producer tag stamped on every record extracted by this
// system. It identifies the origin of a row when campsites from multiple
// ingestion paths share a table.
const Source = "crawler"

// Campsite categories. CategoryStudy is the default when no stronger
// signal is found on the page.
const (
	CategorySummer = "summer"
	CategoryWinter = "winter"
	CategoryOnline = "online"
	CategoryStudy  = "study"
)

// MaxDescriptionLen caps the extracted description length.
const MaxDescriptionLen = 500

// Campsite represents a study-abroad or camp program extracted from a
// single web page. Name and URL are mandatory; everything else is
// best-effort. A Campsite is constructed once per successful extraction
// and immutable thereafter.
//
// Only the name, URL, description, country, category, and thumbnail are
// persisted. The meta and language fields are extraction-time metadata
// and never leave the process boundary.
type Campsite struct {
	Name         string `json:"name"`
	URL          string `json:"url"`
	Description  string `json:"description,omitempty"`
	Country      string `json:"country,omitempty"`
	Category     string `json:"category"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`

	// Extraction metadata, not persisted.
	MetaTitle       string `json:"metaTitle,omitempty"`
	MetaDescription string `json:"metaDescription,omitempty"`
	Language        string `json:"language,omitempty"`

	CrawledAt time.Time `json:"crawledAt"`
	Source    string    `json:"source"`
}

// Validate returns an error if the campsite contains invalid fields.
func (c *Campsite) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return Errorf(EINVALID, "campsite name required")
	}
	if c.URL == "" {
		return Errorf(EINVALID, "campsite URL required")
	}
	return nil
}

// CampsiteService represents the persistence collaborator for campsites.
// The URL is the unique key; implementations persist only the six-field
// projection (name, url, description, country, category, thumbnail).
type CampsiteService interface {
	// CreateCampsite inserts a new campsite.
	// Returns ECONFLICT if a campsite with the same URL already exists.
	CreateCampsite(ctx context.Context, campsite *Campsite) error

	// FindCampsiteByURL retrieves a campsite by its source URL.
	// Returns ENOTFOUND if no campsite exists for the URL.
	FindCampsiteByURL(ctx context.Context, url string) (*Campsite, error)

	// ExistsByURL reports whether a campsite with the URL is stored.
	ExistsByURL(ctx context.Context, url string) (bool, error)

	// FindCampsites retrieves campsites matching the filter.
	FindCampsites(ctx context.Context, filter CampsiteFilter) ([]*Campsite, error)

	// UpdateCampsite updates an existing campsite identified by URL.
	// Returns ENOTFOUND if no campsite exists for the URL.
	UpdateCampsite(ctx context.Context, url string, upd CampsiteUpdate) (*Campsite, error)
}

// CampsiteFilter represents a filter for FindCampsites.
type CampsiteFilter struct {
	URL      *string `json:"url"`
	Country  *string `json:"country"`
	Category *string `json:"category"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// CampsiteUpdate represents fields that can be updated on a stored
// campsite. Nil fields are left unchanged.
type CampsiteUpdate struct {
	Description  *string `json:"description"`
	Country      *string `json:"country"`
	Category     *string `json:"category"`
	ThumbnailURL *string `json:"thumbnailUrl"`
}
