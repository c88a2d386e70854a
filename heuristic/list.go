package heuristic

import (
	"strings"

	"github.com/fwojciec/faqmine"
)

// Ensure ListExtractor implements faqmine.PatternExtractor at compile time.
var _ faqmine.PatternExtractor = (*ListExtractor)(nil)

// ListExtractor treats a numbered or bulleted list item containing "?" as
// a question. The answer runs until the next list item or heading.
type ListExtractor struct{}

// NewListExtractor creates a new ListExtractor.
func NewListExtractor() *ListExtractor {
	return &ListExtractor{}
}

// Name returns the extractor's identifier.
func (e *ListExtractor) Name() string {
	return "list"
}

// Extract implements faqmine.PatternExtractor.
func (e *ListExtractor) Extract(text, _ string) []faqmine.FAQCandidate {
	lines := splitLines(text)

	var candidates []faqmine.FAQCandidate
	for i := 0; i < len(lines); i++ {
		m := listItemRe.FindStringSubmatch(lines[i])
		if m == nil || !strings.Contains(m[1], "?") {
			continue
		}

		end := i + 1
		for end < len(lines) && !isListItem(lines[end]) && !isHeading(lines[end]) {
			end++
		}
		if answer := joinBlock(lines[i+1 : end]); answer != "" {
			candidates = append(candidates, faqmine.FAQCandidate{Question: strings.TrimSpace(m[1]), Answer: answer})
		}
		i = end - 1
	}
	return candidates
}
