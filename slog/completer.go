package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/faqmine"
)

// Ensure LoggingCompleter implements faqmine.Completer.
var _ faqmine.Completer = (*LoggingCompleter)(nil)

// LoggingCompleter wraps a Completer with debug logging.
type LoggingCompleter struct {
	next   faqmine.Completer
	logger *slog.Logger
}

// NewLoggingCompleter creates a new LoggingCompleter.
func NewLoggingCompleter(next faqmine.Completer, logger *slog.Logger) *LoggingCompleter {
	return &LoggingCompleter{next: next, logger: logger}
}

// Complete delegates to the wrapped completer and logs prompt and reply sizes.
func (c *LoggingCompleter) Complete(ctx context.Context, req *faqmine.CompletionRequest) (text string, err error) {
	defer func(begin time.Time) {
		var promptBytes int
		if req != nil {
			promptBytes = len(req.System) + len(req.User)
		}
		c.logger.Debug("completion",
			"prompt_bytes", promptBytes,
			"response_bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Complete(ctx, req)
}
