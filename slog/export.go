package slog

import (
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/faqmine"
)

// Ensure LoggingExporter implements faqmine.Exporter.
var _ faqmine.Exporter = (*LoggingExporter)(nil)

// LoggingExporter wraps an Exporter with logging.
type LoggingExporter struct {
	next   faqmine.Exporter
	logger *slog.Logger
}

// NewLoggingExporter creates a new LoggingExporter.
func NewLoggingExporter(next faqmine.Exporter, logger *slog.Logger) *LoggingExporter {
	return &LoggingExporter{next: next, logger: logger}
}

// Extension delegates to the wrapped exporter.
func (e *LoggingExporter) Extension() string {
	return e.next.Extension()
}

// Export delegates to the wrapped exporter and logs the operation.
func (e *LoggingExporter) Export(w io.Writer, faqs []*faqmine.FAQItem, meta faqmine.ExportMetadata) (err error) {
	cw := &countingWriter{w: w}
	defer func(begin time.Time) {
		e.logger.Info("export",
			"format", e.next.Extension(),
			"faqs", len(faqs),
			"bytes", cw.n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Export(cw, faqs, meta)
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
