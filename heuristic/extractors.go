package heuristic

import "github.com/fwojciec/faqmine"

// TextExtractors returns the line-oriented pattern extractors in canonical
// order: headings, bold lines, Q/A labels, list items, then FAQ sections.
func TextExtractors(kw faqmine.Keywords) []faqmine.PatternExtractor {
	return []faqmine.PatternExtractor{
		NewHeaderExtractor(),
		NewBoldExtractor(),
		NewLabelExtractor(),
		NewListExtractor(),
		NewSectionExtractor(kw),
	}
}
