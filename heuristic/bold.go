package heuristic

import (
	"regexp"
	"strings"

	"github.com/fwojciec/faqmine"
)

// A line opening with a bold span that ends in "?". Text after the closing
// marker on the same line starts the answer.
var boldQuestionRe = regexp.MustCompile(`^\s*(?:\*\*([^*]+?\?)\s*\*\*|__([^_]+?\?)\s*__)\s*(.*)$`)

// Ensure BoldExtractor implements faqmine.PatternExtractor at compile time.
var _ faqmine.PatternExtractor = (*BoldExtractor)(nil)

// BoldExtractor treats a bold line ending in "?" as a question. The answer
// runs until the next bold line or heading.
type BoldExtractor struct{}

// NewBoldExtractor creates a new BoldExtractor.
func NewBoldExtractor() *BoldExtractor {
	return &BoldExtractor{}
}

// Name returns the extractor's identifier.
func (e *BoldExtractor) Name() string {
	return "bold"
}

// Extract implements faqmine.PatternExtractor.
func (e *BoldExtractor) Extract(text, _ string) []faqmine.FAQCandidate {
	lines := splitLines(text)

	var candidates []faqmine.FAQCandidate
	for i := 0; i < len(lines); i++ {
		m := boldQuestionRe.FindStringSubmatch(lines[i])
		if m == nil {
			continue
		}
		question := m[1]
		if question == "" {
			question = m[2]
		}

		end := i + 1
		for end < len(lines) && !startsBold(lines[end]) && !isHeading(lines[end]) {
			end++
		}
		block := append([]string{m[3]}, lines[i+1:end]...)
		if answer := joinBlock(block); answer != "" {
			candidates = append(candidates, faqmine.FAQCandidate{Question: strings.TrimSpace(question), Answer: answer})
		}
		i = end - 1
	}
	return candidates
}

func startsBold(line string) bool {
	s := strings.TrimSpace(line)
	return strings.HasPrefix(s, "**") || strings.HasPrefix(s, "__")
}
