// Package csv exports FAQs as CSV files.
package csv

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fwojciec/faqmine"
)

// Ensure Exporter implements faqmine.Exporter at compile time.
var _ faqmine.Exporter = (*Exporter)(nil)

// Header is the column row of a CSV export.
var Header = []string{
	"Question", "Answer", "Category", "Language", "Source URL",
	"Confidence", "Is Incomplete", "Is Duplicate", "Extracted At",
}

// Exporter writes FAQs as CSV preceded by "#" metadata lines.
type Exporter struct{}

// NewExporter creates a new Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Extension implements faqmine.Exporter.
func (e *Exporter) Extension() string {
	return "csv"
}

// Export implements faqmine.Exporter.
func (e *Exporter) Export(w io.Writer, faqs []*faqmine.FAQItem, meta faqmine.ExportMetadata) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# FAQ Export Metadata")
	fmt.Fprintf(bw, "# Extracted From: %s\n", meta.SourceURL)
	fmt.Fprintf(bw, "# Export Date: %s\n", meta.ExportedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(bw, "# Total Items: %d\n", len(faqs))
	fmt.Fprintf(bw, "# Source Domain: %s\n", meta.Domain())
	fmt.Fprintln(bw)

	cw := csv.NewWriter(bw)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, faq := range faqs {
		if err := cw.Write([]string{
			faq.Question,
			faq.Answer,
			faq.Category,
			faq.Language,
			faq.SourceURL,
			string(faq.Confidence),
			strconv.FormatBool(faq.IsIncomplete),
			strconv.FormatBool(faq.IsDuplicate),
			faq.ExtractedAt.UTC().Format(time.RFC3339),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return bw.Flush()
}
