package heuristic_test

import (
	"testing"

	"github.com/fwojciec/faqmine"
	"github.com/fwojciec/faqmine/heuristic"
	"github.com/stretchr/testify/assert"
)

func TestListExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("pairs question items with following text", func(t *testing.T) {
		t.Parallel()

		text := "1. How do I pay?\nBy card or PayPal.\n2) Where do you ship?\nWe ship worldwide.\n- plain item\n* Can I return?\n"

		got := heuristic.NewListExtractor().Extract(text, "")

		assert.Equal(t, []faqmine.FAQCandidate{
			{Question: "How do I pay?", Answer: "By card or PayPal."},
			{Question: "Where do you ship?", Answer: "We ship worldwide."},
		}, got)
	})

	t.Run("stops at headings", func(t *testing.T) {
		t.Parallel()

		got := heuristic.NewListExtractor().Extract("- Is it free?\nYes.\n## Next\nMore.", "")

		assert.Equal(t, []faqmine.FAQCandidate{{Question: "Is it free?", Answer: "Yes."}}, got)
	})
}
