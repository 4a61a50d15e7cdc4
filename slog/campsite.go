package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/campscout"
)

// Ensure LoggingCampsiteService implements campscout.CampsiteService.
var _ campscout.CampsiteService = (*LoggingCampsiteService)(nil)

// LoggingCampsiteService wraps a CampsiteService with logging.
type LoggingCampsiteService struct {
	next   campscout.CampsiteService
	logger *slog.Logger
}

// NewLoggingCampsiteService creates a new LoggingCampsiteService.
func NewLoggingCampsiteService(next campscout.CampsiteService, logger *slog.Logger) *LoggingCampsiteService {
	return &LoggingCampsiteService{next: next, logger: logger}
}

// CreateCampsite delegates to the wrapped service and logs the operation.
func (s *LoggingCampsiteService) CreateCampsite(ctx context.Context, c *campscout.Campsite) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create campsite",
			"url", c.URL,
			"name", c.Name,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateCampsite(ctx, c)
}

// FindCampsiteByURL delegates to the wrapped service and logs the operation.
func (s *LoggingCampsiteService) FindCampsiteByURL(ctx context.Context, url string) (campsite *campscout.Campsite, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find campsite",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindCampsiteByURL(ctx, url)
}

// ExistsByURL delegates to the wrapped service and logs the operation.
func (s *LoggingCampsiteService) ExistsByURL(ctx context.Context, url string) (exists bool, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("campsite exists",
			"url", url,
			"exists", exists,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ExistsByURL(ctx, url)
}

// FindCampsites delegates to the wrapped service and logs the operation.
func (s *LoggingCampsiteService) FindCampsites(ctx context.Context, filter campscout.CampsiteFilter) (campsites []*campscout.Campsite, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find campsites",
			"count", len(campsites),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindCampsites(ctx, filter)
}

// UpdateCampsite delegates to the wrapped service and logs the operation.
func (s *LoggingCampsiteService) UpdateCampsite(ctx context.Context, url string, upd campscout.CampsiteUpdate) (campsite *campscout.Campsite, err error) {
	defer func(begin time.Time) {
		s.logger.Info("update campsite",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.UpdateCampsite(ctx, url, upd)
}
