package faqmine_test

import (
	"testing"

	"github.com/fwojciec/faqmine"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	faqs := []*faqmine.FAQItem{
		{Confidence: faqmine.ConfidenceHigh, IsDuplicate: true},
		{Confidence: faqmine.ConfidenceHigh},
		{Confidence: faqmine.ConfidenceMedium, IsIncomplete: true},
		{Confidence: faqmine.ConfidenceLow, IsIncomplete: true},
	}

	got := faqmine.Summarize(faqs)

	assert.Equal(t, faqmine.Summary{Total: 4, High: 2, Medium: 1, Low: 1, Incomplete: 2, Duplicates: 1}, got)
}

func TestExportMetadata_Domain(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "shop.example.com", faqmine.ExportMetadata{SourceURL: "https://shop.example.com/faq?x=1"}.Domain())
	assert.Empty(t, faqmine.ExportMetadata{SourceURL: "crawl.json"}.Domain())
}

func TestRun_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires source", func(t *testing.T) {
		t.Parallel()

		err := (&faqmine.Run{Mode: faqmine.ModeHeuristic}).Validate()

		assert.Equal(t, faqmine.EINVALID, faqmine.ErrorCode(err))
	})

	t.Run("requires mode", func(t *testing.T) {
		t.Parallel()

		err := (&faqmine.Run{Source: "crawl.json"}).Validate()

		assert.Equal(t, faqmine.EINVALID, faqmine.ErrorCode(err))
	})

	t.Run("accepts complete run", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, (&faqmine.Run{Source: "crawl.json", Mode: faqmine.ModeAuto}).Validate())
	})
}
