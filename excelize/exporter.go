// Package excelize exports FAQs as XLSX workbooks.
package excelize

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/faqmine"
	"github.com/xuri/excelize/v2"
)

// Sheet names of an exported workbook.
const (
	FAQSheet      = "FAQs"
	MetadataSheet = "Metadata"
)

// Header is the column row of the FAQ sheet.
var Header = []string{
	"ID", "Question", "Answer", "Category", "Language", "Source URL",
	"Confidence Level", "Is Incomplete", "Is Duplicate", "Extracted At",
	"Word Count (Answer)", "Character Count (Answer)",
}

// Ensure Exporter implements faqmine.Exporter at compile time.
var _ faqmine.Exporter = (*Exporter)(nil)

// Exporter writes FAQs to a workbook with an FAQ sheet and a metadata
// sheet summarizing the export.
type Exporter struct{}

// NewExporter creates a new Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Extension implements faqmine.Exporter.
func (e *Exporter) Extension() string {
	return "xlsx"
}

// Export implements faqmine.Exporter.
func (e *Exporter) Export(w io.Writer, faqs []*faqmine.FAQItem, meta faqmine.ExportMetadata) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", FAQSheet); err != nil {
		return err
	}
	if err := writeFAQs(f, faqs); err != nil {
		return err
	}

	if _, err := f.NewSheet(MetadataSheet); err != nil {
		return err
	}
	if err := writeMetadata(f, faqs, meta); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeFAQs(f *excelize.File, faqs []*faqmine.FAQItem) error {
	header := make([]any, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := setRow(f, FAQSheet, 1, header); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetRowStyle(FAQSheet, 1, 1, bold); err != nil {
		return err
	}
	if err := f.SetColWidth(FAQSheet, "B", "C", 60); err != nil {
		return err
	}

	for i, faq := range faqs {
		row := []any{
			faq.ID,
			faq.Question,
			faq.Answer,
			faq.Category,
			faq.Language,
			faq.SourceURL,
			string(faq.Confidence),
			yesNo(faq.IsIncomplete),
			yesNo(faq.IsDuplicate),
			faq.ExtractedAt.UTC().Format(time.RFC3339),
			len(strings.Fields(faq.Answer)),
			utf8.RuneCountInString(faq.Answer),
		}
		if err := setRow(f, FAQSheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeMetadata(f *excelize.File, faqs []*faqmine.FAQItem, meta faqmine.ExportMetadata) error {
	s := faqmine.Summarize(faqs)
	rows := [][]any{
		{"FAQ Export Summary", ""},
		{"Extracted From", meta.SourceURL},
		{"Export Date", meta.ExportedAt.UTC().Format(time.RFC3339)},
		{"Source Domain", meta.Domain()},
		{"Total Items", s.Total},
		{"High Confidence", s.High},
		{"Medium Confidence", s.Medium},
		{"Low Confidence", s.Low},
		{"Incomplete Items", s.Incomplete},
		{"Duplicate Items", s.Duplicates},
	}
	for i, row := range rows {
		if err := setRow(f, MetadataSheet, i+1, row); err != nil {
			return err
		}
	}
	return f.SetColWidth(MetadataSheet, "A", "A", 24)
}

// setRow writes values into consecutive cells of a row.
func setRow(f *excelize.File, sheet string, row int, values []any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
