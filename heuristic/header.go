package heuristic

import (
	"strings"

	"github.com/fwojciec/faqmine"
)

// Ensure HeaderExtractor implements faqmine.PatternExtractor at compile time.
var _ faqmine.PatternExtractor = (*HeaderExtractor)(nil)

// HeaderExtractor treats a markdown heading containing "?" as a question
// and the text up to the next heading as its answer.
type HeaderExtractor struct{}

// NewHeaderExtractor creates a new HeaderExtractor.
func NewHeaderExtractor() *HeaderExtractor {
	return &HeaderExtractor{}
}

// Name returns the extractor's identifier.
func (e *HeaderExtractor) Name() string {
	return "header"
}

// Extract implements faqmine.PatternExtractor.
func (e *HeaderExtractor) Extract(text, _ string) []faqmine.FAQCandidate {
	lines := splitLines(text)

	var candidates []faqmine.FAQCandidate
	for i := 0; i < len(lines); i++ {
		_, title, ok := heading(lines[i])
		if !ok || !strings.Contains(title, "?") {
			continue
		}

		end := i + 1
		for end < len(lines) && !isHeading(lines[end]) {
			end++
		}
		if answer := joinBlock(lines[i+1 : end]); answer != "" {
			candidates = append(candidates, faqmine.FAQCandidate{Question: title, Answer: answer})
		}
		i = end - 1
	}
	return candidates
}
