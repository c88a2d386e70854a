// Package json exports FAQs as JSON files.
package json

import (
	"encoding/json"
	"io"

	"github.com/fwojciec/faqmine"
)

// Ensure Exporter implements faqmine.Exporter at compile time.
var _ faqmine.Exporter = (*Exporter)(nil)

// Exporter writes FAQs as an indented JSON array.
type Exporter struct{}

// NewExporter creates a new Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Extension implements faqmine.Exporter.
func (e *Exporter) Extension() string {
	return "json"
}

// Export implements faqmine.Exporter. Metadata is not part of the output.
func (e *Exporter) Export(w io.Writer, faqs []*faqmine.FAQItem, _ faqmine.ExportMetadata) error {
	if faqs == nil {
		faqs = []*faqmine.FAQItem{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(faqs)
}
