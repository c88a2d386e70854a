package faqmine

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// NormalizeQuestion returns the deduplication key of a question: case-folded,
// stripped of everything but letters, digits and single spaces.
func NormalizeQuestion(question string) string {
	folded := cases.Fold().String(norm.NFKC.String(question))

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Dedupe collapses FAQs sharing a normalized question. The first occurrence
// is kept in place and flagged IsDuplicate once a later copy is seen; later
// copies are dropped. Items whose question normalizes to nothing are kept.
func Dedupe(faqs []*FAQItem) []*FAQItem {
	seen := make(map[string]*FAQItem, len(faqs))
	out := make([]*FAQItem, 0, len(faqs))
	for _, faq := range faqs {
		key := NormalizeQuestion(faq.Question)
		if key == "" {
			out = append(out, faq)
			continue
		}
		if kept, ok := seen[key]; ok {
			kept.IsDuplicate = true
			continue
		}
		seen[key] = faq
		out = append(out, faq)
	}
	return out
}
