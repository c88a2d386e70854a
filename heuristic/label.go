package heuristic

import (
	"regexp"
	"strings"

	"github.com/fwojciec/faqmine"
)

var (
	questionLabelRe = regexp.MustCompile(`(?i)^\s*(?:[-*+]\s+)?(?:\*\*|__)?(?:q|question|frage|f|pregunta)(?:\s*\d+)?\s*[:：](?:\*\*|__)?\s*(.*)$`)
	answerLabelRe   = regexp.MustCompile(`(?i)^\s*(?:[-*+]\s+)?(?:\*\*|__)?(?:a|answer|antwort|respuesta|réponse)\s*[:：](?:\*\*|__)?\s*(.*)$`)

	// An answer label following the question on the same line.
	inlineAnswerRe = regexp.MustCompile(`(?i)\s(?:\*\*|__)?(?:a|answer|antwort|respuesta|réponse)\s*[:：](?:\*\*|__)?\s+`)
)

// Ensure LabelExtractor implements faqmine.PatternExtractor at compile time.
var _ faqmine.PatternExtractor = (*LabelExtractor)(nil)

// LabelExtractor reads explicitly labelled pairs such as "Q: ... A: ..."
// in English, German and Spanish. The question runs until an answer label
// and the answer runs until the next question label or heading.
type LabelExtractor struct{}

// NewLabelExtractor creates a new LabelExtractor.
func NewLabelExtractor() *LabelExtractor {
	return &LabelExtractor{}
}

// Name returns the extractor's identifier.
func (e *LabelExtractor) Name() string {
	return "label"
}

type labelState int

const (
	labelIdle labelState = iota
	labelQuestion
	labelAnswer
)

// Extract implements faqmine.PatternExtractor.
func (e *LabelExtractor) Extract(text, _ string) []faqmine.FAQCandidate {
	var (
		candidates []faqmine.FAQCandidate
		state      labelState
		question   []string
		answer     []string
	)

	flush := func() {
		if state == labelAnswer {
			q, a := joinBlock(question), joinBlock(answer)
			if q != "" && a != "" {
				candidates = append(candidates, faqmine.FAQCandidate{Question: q, Answer: a})
			}
		}
		state, question, answer = labelIdle, nil, nil
	}

	for _, line := range splitLines(text) {
		if isHeading(line) {
			flush()
			continue
		}
		if m := questionLabelRe.FindStringSubmatch(line); m != nil {
			// A pending question without an answer is abandoned.
			flush()
			rest := m[1]
			if loc := inlineAnswerRe.FindStringIndex(rest); loc != nil {
				question = []string{rest[:loc[0]]}
				answer = []string{rest[loc[1]:]}
				state = labelAnswer
				continue
			}
			question = []string{rest}
			state = labelQuestion
			continue
		}
		switch state {
		case labelQuestion:
			if m := answerLabelRe.FindStringSubmatch(line); m != nil {
				answer = []string{m[1]}
				state = labelAnswer
				continue
			}
			question = append(question, line)
		case labelAnswer:
			answer = append(answer, line)
		}
	}
	flush()

	for i := range candidates {
		candidates[i].Question = strings.TrimSpace(candidates[i].Question)
	}
	return candidates
}
