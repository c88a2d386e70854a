package faqmine

import (
	"io"
	"net/url"
	"time"
)

// ExportMetadata describes an export for the header of exported files.
type ExportMetadata struct {
	SourceURL  string
	ExportedAt time.Time
}

// Domain returns the host of SourceURL, or "" if it has none.
func (m ExportMetadata) Domain() string {
	u, err := url.Parse(m.SourceURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

// Exporter writes FAQs in a file format.
type Exporter interface {
	Export(w io.Writer, faqs []*FAQItem, meta ExportMetadata) error

	// Extension is the file extension of the format, without a dot.
	Extension() string
}

// Summary counts FAQs by grade and flag.
type Summary struct {
	Total      int
	High       int
	Medium     int
	Low        int
	Incomplete int
	Duplicates int
}

// Summarize counts faqs by confidence tier and flags.
func Summarize(faqs []*FAQItem) Summary {
	s := Summary{Total: len(faqs)}
	for _, f := range faqs {
		switch f.Confidence {
		case ConfidenceHigh:
			s.High++
		case ConfidenceMedium:
			s.Medium++
		case ConfidenceLow:
			s.Low++
		}
		if f.IsIncomplete {
			s.Incomplete++
		}
		if f.IsDuplicate {
			s.Duplicates++
		}
	}
	return s
}
