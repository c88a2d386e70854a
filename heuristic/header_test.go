package heuristic_test

import (
	"testing"

	"github.com/fwojciec/faqmine"
	"github.com/fwojciec/faqmine/heuristic"
	"github.com/stretchr/testify/assert"
)

func TestHeaderExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("pairs question headings with following text", func(t *testing.T) {
		t.Parallel()

		text := "## What is your return policy?\nWe offer a 30-day return policy.\n\nUnused items only.\n\n### Do you ship abroad? ###\nYes, to 40 countries.\n"

		got := heuristic.NewHeaderExtractor().Extract(text, "")

		assert.Equal(t, []faqmine.FAQCandidate{
			{Question: "What is your return policy?", Answer: "We offer a 30-day return policy.\n\nUnused items only."},
			{Question: "Do you ship abroad?", Answer: "Yes, to 40 countries."},
		}, got)
	})

	t.Run("stops answers at any heading", func(t *testing.T) {
		t.Parallel()

		text := "# How do I pay?\nBy card.\n## About us\nWe are a shop."

		got := heuristic.NewHeaderExtractor().Extract(text, "")

		assert.Equal(t, []faqmine.FAQCandidate{{Question: "How do I pay?", Answer: "By card."}}, got)
	})

	t.Run("skips headings without answers", func(t *testing.T) {
		t.Parallel()

		got := heuristic.NewHeaderExtractor().Extract("## Why?\n\n## Because?\n", "")

		assert.Empty(t, got)
	})

	t.Run("ignores headings without question mark", func(t *testing.T) {
		t.Parallel()

		got := heuristic.NewHeaderExtractor().Extract("## Shipping\nWe ship daily.", "")

		assert.Empty(t, got)
	})

	t.Run("ignores hashtags that are not headings", func(t *testing.T) {
		t.Parallel()

		got := heuristic.NewHeaderExtractor().Extract("#sale what?\nNothing here.", "")

		assert.Empty(t, got)
	})
}
