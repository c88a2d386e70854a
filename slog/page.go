package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/faqmine"
)

// Ensure LoggingPageSource implements faqmine.PageSource.
var _ faqmine.PageSource = (*LoggingPageSource)(nil)

// LoggingPageSource wraps a PageSource with logging.
type LoggingPageSource struct {
	next   faqmine.PageSource
	path   string
	logger *slog.Logger
}

// NewLoggingPageSource creates a new LoggingPageSource for the export at path.
func NewLoggingPageSource(next faqmine.PageSource, path string, logger *slog.Logger) *LoggingPageSource {
	return &LoggingPageSource{next: next, path: path, logger: logger}
}

// Pages delegates to the wrapped source and logs the operation.
func (s *LoggingPageSource) Pages(ctx context.Context) (pages []*faqmine.PageContent, err error) {
	defer func(begin time.Time) {
		s.logger.Info("load pages",
			"path", s.path,
			"count", len(pages),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Pages(ctx)
}
