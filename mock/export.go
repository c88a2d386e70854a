package mock

import (
	"io"

	"github.com/fwojciec/faqmine"
)

var _ faqmine.Exporter = (*Exporter)(nil)

// Exporter is a mock implementation of faqmine.Exporter.
type Exporter struct {
	ExportFn    func(w io.Writer, faqs []*faqmine.FAQItem, meta faqmine.ExportMetadata) error
	ExtensionFn func() string
}

func (e *Exporter) Export(w io.Writer, faqs []*faqmine.FAQItem, meta faqmine.ExportMetadata) error {
	return e.ExportFn(w, faqs, meta)
}

func (e *Exporter) Extension() string {
	return e.ExtensionFn()
}
