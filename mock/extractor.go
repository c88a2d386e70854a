package mock

import (
	"context"

	"github.com/fwojciec/faqmine"
)

var _ faqmine.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of faqmine.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (*faqmine.ExtractResult, error)
}

func (e *ContentExtractor) Extract(html string) (*faqmine.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ faqmine.FAQExtractor = (*FAQExtractor)(nil)

// FAQExtractor is a mock implementation of faqmine.FAQExtractor.
type FAQExtractor struct {
	ExtractFAQsFn func(ctx context.Context, pages []*faqmine.PageContent, progress faqmine.ExtractProgressFunc) ([]*faqmine.FAQItem, error)
}

func (e *FAQExtractor) ExtractFAQs(ctx context.Context, pages []*faqmine.PageContent, progress faqmine.ExtractProgressFunc) ([]*faqmine.FAQItem, error) {
	return e.ExtractFAQsFn(ctx, pages, progress)
}

var _ faqmine.PatternExtractor = (*PatternExtractor)(nil)

// PatternExtractor is a mock implementation of faqmine.PatternExtractor.
type PatternExtractor struct {
	NameFn    func() string
	ExtractFn func(text, sourceURL string) []faqmine.FAQCandidate
}

func (e *PatternExtractor) Name() string {
	if e.NameFn == nil {
		return "mock"
	}
	return e.NameFn()
}

func (e *PatternExtractor) Extract(text, sourceURL string) []faqmine.FAQCandidate {
	return e.ExtractFn(text, sourceURL)
}

var _ faqmine.MarkupExtractor = (*MarkupExtractor)(nil)

// MarkupExtractor is a mock implementation of faqmine.MarkupExtractor.
type MarkupExtractor struct {
	PatternExtractor
}

func (e *MarkupExtractor) Markup() {}
