package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/faqmine"
)

// Ensure DisclosureExtractor implements faqmine.MarkupExtractor at compile time.
var _ faqmine.MarkupExtractor = (*DisclosureExtractor)(nil)

// DisclosureExtractor reads <details>/<summary> disclosure widgets. The
// summary is the question and the rest of the widget is the answer. Only
// innermost widgets are used, so nested disclosures yield their leaves.
type DisclosureExtractor struct{}

// NewDisclosureExtractor creates a new DisclosureExtractor.
func NewDisclosureExtractor() *DisclosureExtractor {
	return &DisclosureExtractor{}
}

// Name returns the extractor's identifier.
func (e *DisclosureExtractor) Name() string {
	return "disclosure"
}

// Markup marks the extractor as reading HTML.
func (e *DisclosureExtractor) Markup() {}

// Extract returns one candidate per innermost <details> element with a summary.
func (e *DisclosureExtractor) Extract(text, _ string) []faqmine.FAQCandidate {
	if !strings.Contains(strings.ToLower(text), "<details") {
		return nil
	}
	doc, ok := parse(text)
	if !ok {
		return nil
	}

	var candidates []faqmine.FAQCandidate
	doc.Find("details").Each(func(_ int, details *goquery.Selection) {
		if details.Find("details").Length() > 0 {
			return
		}
		summary := details.ChildrenFiltered("summary").First()
		if summary.Length() == 0 {
			return
		}

		question := textOf(summary)
		answer := textOf(details.Contents().NotSelection(summary))
		if question == "" || answer == "" {
			return
		}
		candidates = append(candidates, faqmine.FAQCandidate{Question: question, Answer: answer})
	})
	return candidates
}
