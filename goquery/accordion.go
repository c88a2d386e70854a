package goquery

import (
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/faqmine"
	"golang.org/x/net/html"
)

const (
	accordionSelector = `[class*="accordion"]`

	headerSelector = `[class*="header"], [class*="title"], [class*="button"], ` +
		`[class*="toggle"], [class*="question"], [class*="trigger"], ` +
		`h1, h2, h3, h4, h5, h6, button, summary`

	contentSelector = `[class*="content"], [class*="body"], [class*="panel"], ` +
		`[class*="answer"], [class*="collapse"]`
)

// Ensure AccordionExtractor implements faqmine.MarkupExtractor at compile time.
var _ faqmine.MarkupExtractor = (*AccordionExtractor)(nil)

// AccordionExtractor reads accordion widgets: elements whose class mentions
// "accordion" and that hold a header-marked element followed by a
// content-marked element. Each header is paired with the first content
// element after it.
type AccordionExtractor struct{}

// NewAccordionExtractor creates a new AccordionExtractor.
func NewAccordionExtractor() *AccordionExtractor {
	return &AccordionExtractor{}
}

// Name returns the extractor's identifier.
func (e *AccordionExtractor) Name() string {
	return "accordion"
}

// Markup marks the extractor as reading HTML.
func (e *AccordionExtractor) Markup() {}

// Extract returns candidates from innermost accordion blocks in document order.
func (e *AccordionExtractor) Extract(text, _ string) []faqmine.FAQCandidate {
	if !strings.Contains(strings.ToLower(text), "accordion") {
		return nil
	}
	doc, ok := parse(text)
	if !ok {
		return nil
	}
	order := documentOrder(doc)

	var candidates []faqmine.FAQCandidate
	doc.Find(accordionSelector).Each(func(_ int, block *goquery.Selection) {
		pairs := accordionPairs(block, order)
		if len(pairs) == 0 {
			return
		}
		// A block holding another usable block is a container.
		nested := block.Find(accordionSelector).FilterFunction(func(_ int, inner *goquery.Selection) bool {
			return len(accordionPairs(inner, order)) > 0
		})
		if nested.Length() > 0 {
			return
		}
		candidates = append(candidates, pairs...)
	})
	return candidates
}

// accordionPairs pairs each header in block with the first content element
// that follows it and precedes the next header.
func accordionPairs(block *goquery.Selection, order map[*html.Node]int) []faqmine.FAQCandidate {
	headers := outermost(block.Find(headerSelector))
	if len(headers) == 0 {
		return nil
	}

	contents := outermost(block.Find(contentSelector).FilterFunction(func(_ int, s *goquery.Selection) bool {
		for _, h := range headers {
			if h.Contains(s.Nodes[0]) || s.Contains(h.Nodes[0]) {
				return false
			}
		}
		return true
	}))
	if len(contents) == 0 {
		return nil
	}
	sort.SliceStable(contents, func(i, j int) bool {
		return order[contents[i].Nodes[0]] < order[contents[j].Nodes[0]]
	})

	var pairs []faqmine.FAQCandidate
	for i, h := range headers {
		start := order[h.Nodes[0]]
		end := -1
		if i+1 < len(headers) {
			end = order[headers[i+1].Nodes[0]]
		}
		for _, c := range contents {
			pos := order[c.Nodes[0]]
			if pos <= start {
				continue
			}
			if end >= 0 && pos >= end {
				break
			}
			question, answer := textOf(h), textOf(c)
			if question != "" && answer != "" {
				pairs = append(pairs, faqmine.FAQCandidate{Question: question, Answer: answer})
			}
			break
		}
	}
	return pairs
}
