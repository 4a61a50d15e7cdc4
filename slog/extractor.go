package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/campscout"
)

// Ensure LoggingExtractor implements campscout.Extractor.
var _ campscout.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   campscout.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next campscout.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(html, sourceURL string) (campsite *campscout.Campsite) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", sourceURL,
			"bytes", len(html),
			"found", campsite != nil,
			"duration", time.Since(begin),
		}
		if campsite != nil {
			attrs = append(attrs, "name", campsite.Name, "country", campsite.Country, "category", campsite.Category)
		}
		e.logger.Debug("extract", attrs...)
	}(time.Now())
	return e.next.Extract(html, sourceURL)
}
