package csv_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/faqmine"
	"github.com/fwojciec/faqmine/csv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var extractedAt = time.Date(2025, 5, 6, 7, 8, 9, 0, time.UTC)

func testFAQs() []*faqmine.FAQItem {
	return []*faqmine.FAQItem{
		{
			ID: "1", Question: `What does "express" mean?`, Answer: "Delivery within 24 hours, including weekends.",
			Category: "Shipping", Language: "English", SourceURL: "https://shop.example.com/faq",
			Confidence: faqmine.ConfidenceHigh, IsDuplicate: true, ExtractedAt: extractedAt,
		},
		{
			ID: "2", Question: "Can I pay later?", Answer: "Yes,\nwith invoice.",
			Category: "Payment", Language: "English", SourceURL: "https://shop.example.com/faq",
			Confidence: faqmine.ConfidenceLow, IsIncomplete: true, ExtractedAt: extractedAt,
		},
	}
}

func testMeta() faqmine.ExportMetadata {
	return faqmine.ExportMetadata{
		SourceURL:  "https://shop.example.com/faq",
		ExportedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestExporter_Export(t *testing.T) {
	t.Parallel()

	t.Run("writes metadata header and quoted rows", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := csv.NewExporter().Export(&buf, testFAQs(), testMeta())

		require.NoError(t, err)
		want := `# FAQ Export Metadata
# Extracted From: https://shop.example.com/faq
# Export Date: 2025-06-01T12:00:00Z
# Total Items: 2
# Source Domain: shop.example.com

Question,Answer,Category,Language,Source URL,Confidence,Is Incomplete,Is Duplicate,Extracted At
"What does ""express"" mean?","Delivery within 24 hours, including weekends.",Shipping,English,https://shop.example.com/faq,high,false,true,2025-05-06T07:08:09Z
Can I pay later?,"Yes,
with invoice.",Payment,English,https://shop.example.com/faq,low,true,false,2025-05-06T07:08:09Z
`
		assert.Equal(t, want, buf.String())
	})

	t.Run("writes only header for no faqs", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := csv.NewExporter().Export(&buf, nil, faqmine.ExportMetadata{})

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "# Total Items: 0\n")
		assert.True(t, strings.HasSuffix(buf.String(), strings.Join(csv.Header, ",")+"\n"))
	})

	t.Run("returns writer errors", func(t *testing.T) {
		t.Parallel()

		err := csv.NewExporter().Export(failingWriter{}, testFAQs(), testMeta())

		assert.Error(t, err)
	})

	t.Run("uses csv extension", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "csv", csv.NewExporter().Extension())
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}
