package faqmine

import "context"

// Ensure Fallback implements FAQExtractor at compile time.
var _ FAQExtractor = (*Fallback)(nil)

// Fallback runs Primary and falls back to Secondary when Primary fails or
// finds nothing.
type Fallback struct {
	Primary   FAQExtractor
	Secondary FAQExtractor
}

// ExtractFAQs implements FAQExtractor.
func (f *Fallback) ExtractFAQs(ctx context.Context, pages []*PageContent, progress ExtractProgressFunc) ([]*FAQItem, error) {
	faqs, err := f.Primary.ExtractFAQs(ctx, pages, progress)
	if err == nil && len(faqs) > 0 {
		return faqs, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	return f.Secondary.ExtractFAQs(ctx, pages, progress)
}
