package goquery

import "github.com/fwojciec/faqmine"

// MarkupExtractors returns the HTML pattern extractors in canonical order:
// disclosure widgets, accordions, then schema.org structured data.
func MarkupExtractors() []faqmine.PatternExtractor {
	return []faqmine.PatternExtractor{
		NewDisclosureExtractor(),
		NewAccordionExtractor(),
		NewSchemaExtractor(),
	}
}
