package heuristic_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/faqmine"
	"github.com/fwojciec/faqmine/heuristic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("pairs questions with following lines inside a heading section", func(t *testing.T) {
		t.Parallel()

		text := `# Shop
How does this look?
Outside the section so never extracted at all.

## Frequently Asked Questions
How long does delivery take?
Delivery usually takes three to five business days within Germany.
This line is not consumed because the answer settled.
Can I pay with PayPal?
Yes.
We accept PayPal for all orders
and also credit cards
## Contact
What is your phone number?
Call us any time at the number below.`

		got := heuristic.NewSectionExtractor(faqmine.Keywords{}).Extract(text, "")

		assert.Equal(t, []faqmine.FAQCandidate{
			{Question: "How long does delivery take?", Answer: "Delivery usually takes three to five business days within Germany."},
			{Question: "Can I pay with PayPal?", Answer: "We accept PayPal for all orders\nand also credit cards"},
		}, got)
	})

	t.Run("keeps subheadings inside the section", func(t *testing.T) {
		t.Parallel()

		text := "## FAQ\n### What sizes do you offer?\nWe offer sizes from XS to XXL in all shirts.\n## Other\nWhat else is there?\nNothing else to see here."

		got := heuristic.NewSectionExtractor(faqmine.Keywords{}).Extract(text, "")

		assert.Equal(t, []faqmine.FAQCandidate{
			{Question: "What sizes do you offer?", Answer: "We offer sizes from XS to XXL in all shirts."},
		}, got)
	})

	t.Run("opens a section from a standalone title line", func(t *testing.T) {
		t.Parallel()

		text := "Welcome to our store.\n\n**Häufig gestellte Fragen:**\n\nWie lange dauert der Versand?\nDer Versand dauert in der Regel zwei bis drei Werktage."

		got := heuristic.NewSectionExtractor(faqmine.Keywords{}).Extract(text, "")

		require.Len(t, got, 1)
		assert.Equal(t, "Wie lange dauert der Versand?", got[0].Question)
	})

	t.Run("ignores passing mentions of faq", func(t *testing.T) {
		t.Parallel()

		text := "See our FAQ page for more details.\nHow do I contact you?\nWrite an email to our support team any time."

		got := heuristic.NewSectionExtractor(faqmine.Keywords{}).Extract(text, "")

		assert.Empty(t, got)
	})

	t.Run("consumes at most five answer lines", func(t *testing.T) {
		t.Parallel()

		text := "Q&A\nWhat is included in the box?\n" + strings.Repeat("one more included item\n", 7)

		got := heuristic.NewSectionExtractor(faqmine.Keywords{}).Extract(text, "")

		require.Len(t, got, 1)
		assert.Len(t, strings.Split(got[0].Answer, "\n"), 5)
	})

	t.Run("requires question lines to carry an interrogative", func(t *testing.T) {
		t.Parallel()

		text := "FAQ\nShipping to Mars?\nWe do not currently serve other planets, sorry."

		got := heuristic.NewSectionExtractor(faqmine.Keywords{}).Extract(text, "")

		assert.Empty(t, got)
	})

	t.Run("uses custom interrogatives", func(t *testing.T) {
		t.Parallel()

		kw := faqmine.Keywords{Interrogatives: faqmine.NewKeywordSet("comment")}
		text := "FAQ\nComment suivre ma commande ?\nUtilisez le lien de suivi dans votre e-mail de confirmation."

		got := heuristic.NewSectionExtractor(kw).Extract(text, "")

		require.Len(t, got, 1)
		assert.Equal(t, "Comment suivre ma commande ?", got[0].Question)
	})
}

func TestTextExtractors(t *testing.T) {
	t.Parallel()

	extractors := heuristic.TextExtractors(faqmine.Keywords{})

	names := make([]string, 0, len(extractors))
	for _, e := range extractors {
		_, markup := e.(faqmine.MarkupExtractor)
		assert.False(t, markup, e.Name())
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"header", "bold", "label", "list", "section"}, names)
}
