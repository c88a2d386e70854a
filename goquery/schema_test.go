package goquery_test

import (
	"testing"

	"github.com/fwojciec/faqmine"
	"github.com/fwojciec/faqmine/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("reads FAQPage JSON-LD", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><script type="application/ld+json">
{
  "@context": "https://schema.org",
  "@type": "FAQPage",
  "mainEntity": [
    {"@type": "Question", "name": "How do I track my package?",
     "acceptedAnswer": {"@type": "Answer", "text": "Use the tracking link in your confirmation email."}},
    {"@type": "Question", "name": "Missing answer?"}
  ]
}
</script></head><body></body></html>`

		got := goquery.NewSchemaExtractor().Extract(html, "")

		assert.Equal(t, []faqmine.FAQCandidate{
			{Question: "How do I track my package?", Answer: "Use the tracking link in your confirmation email."},
		}, got)
	})

	t.Run("reads questions nested in a graph", func(t *testing.T) {
		t.Parallel()

		html := `<script type="application/ld+json">
{"@graph": [{"@type": "WebPage"}, {"@type": ["FAQPage"], "mainEntity":
  {"@type": "Question", "name": "Is there a warranty?",
   "acceptedAnswer": [{"text": "Two years on all devices."}]}}]}
</script>`

		got := goquery.NewSchemaExtractor().Extract(html, "")

		require.Len(t, got, 1)
		assert.Equal(t, "Is there a warranty?", got[0].Question)
		assert.Equal(t, "Two years on all devices.", got[0].Answer)
	})

	t.Run("reads Question microdata", func(t *testing.T) {
		t.Parallel()

		html := `<div itemscope itemtype="https://schema.org/FAQPage">
  <div itemscope itemprop="mainEntity" itemtype="https://schema.org/Question">
    <h3 itemprop="name">Can I pay by invoice?</h3>
    <div itemscope itemprop="acceptedAnswer" itemtype="https://schema.org/Answer">
      <div itemprop="text">Invoices are available for business customers.</div>
    </div>
  </div>
</div>`

		got := goquery.NewSchemaExtractor().Extract(html, "")

		assert.Equal(t, []faqmine.FAQCandidate{
			{Question: "Can I pay by invoice?", Answer: "Invoices are available for business customers."},
		}, got)
	})

	t.Run("skips invalid JSON-LD", func(t *testing.T) {
		t.Parallel()

		got := goquery.NewSchemaExtractor().Extract(`<script type="application/ld+json">{not json</script>`, "")

		assert.Empty(t, got)
	})
}

func TestMarkupExtractors(t *testing.T) {
	t.Parallel()

	extractors := goquery.MarkupExtractors()

	names := make([]string, 0, len(extractors))
	for _, e := range extractors {
		_, ok := e.(faqmine.MarkupExtractor)
		assert.True(t, ok, e.Name())
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"disclosure", "accordion", "schema"}, names)
}
