// Package slog provides logging decorators for faqmine services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/faqmine"
)

// Ensure LoggingExtractor implements faqmine.FAQExtractor.
var _ faqmine.FAQExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an FAQExtractor with logging. Failed pages are
// logged as warnings and skipped pages at debug level.
type LoggingExtractor struct {
	next   faqmine.FAQExtractor
	mode   string
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor. Mode names the
// extraction strategy in log records.
func NewLoggingExtractor(next faqmine.FAQExtractor, mode string, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, mode: mode, logger: logger}
}

// ExtractFAQs delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) ExtractFAQs(ctx context.Context, pages []*faqmine.PageContent, progress faqmine.ExtractProgressFunc) (faqs []*faqmine.FAQItem, err error) {
	defer func(begin time.Time) {
		e.logger.Info("faq extraction",
			"mode", e.mode,
			"pages", len(pages),
			"faqs", len(faqs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())

	return e.next.ExtractFAQs(ctx, pages, func(p faqmine.ExtractProgress) {
		switch {
		case p.Error != nil:
			e.logger.Warn("page failed", "mode", e.mode, "url", p.URL, "err", p.Error)
		case p.Skipped:
			e.logger.Debug("page skipped", "mode", e.mode, "url", p.URL)
		default:
			e.logger.Debug("page extracted", "mode", e.mode, "url", p.URL, "faqs", p.Found)
		}
		if progress != nil {
			progress(p)
		}
	})
}
