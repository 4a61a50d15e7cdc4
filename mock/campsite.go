package mock

import (
	"context"

	"github.com/fwojciec/campscout"
)

var _ campscout.CampsiteService = (*CampsiteService)(nil)

// CampsiteService is a mock implementation of campscout.CampsiteService.
type CampsiteService struct {
	CreateCampsiteFn    func(ctx context.Context, c *campscout.Campsite) error
	FindCampsiteByURLFn func(ctx context.Context, url string) (*campscout.Campsite, error)
	ExistsByURLFn       func(ctx context.Context, url string) (bool, error)
	FindCampsitesFn     func(ctx context.Context, filter campscout.CampsiteFilter) ([]*campscout.Campsite, error)
	UpdateCampsiteFn    func(ctx context.Context, url string, upd campscout.CampsiteUpdate) (*campscout.Campsite, error)
}

func (s *CampsiteService) CreateCampsite(ctx context.Context, c *campscout.Campsite) error {
	return s.CreateCampsiteFn(ctx, c)
}

func (s *CampsiteService) FindCampsiteByURL(ctx context.Context, url string) (*campscout.Campsite, error) {
	return s.FindCampsiteByURLFn(ctx, url)
}

func (s *CampsiteService) ExistsByURL(ctx context.Context, url string) (bool, error) {
	return s.ExistsByURLFn(ctx, url)
}

func (s *CampsiteService) FindCampsites(ctx context.Context, filter campscout.CampsiteFilter) ([]*campscout.Campsite, error) {
	return s.FindCampsitesFn(ctx, filter)
}

func (s *CampsiteService) UpdateCampsite(ctx context.Context, url string, upd campscout.CampsiteUpdate) (*campscout.Campsite, error) {
	return s.UpdateCampsiteFn(ctx, url, upd)
}
