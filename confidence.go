package faqmine

import (
	"strings"
	"unicode/utf8"
)

// Scorer grades a question/answer pair with a point heuristic.
// The zero value uses the default keywords.
type Scorer struct {
	Keywords Keywords
}

// Points returns the raw score of a cleaned question/answer pair.
func (s Scorer) Points(question, answer string) int {
	kw := s.Keywords.withDefaults()
	ql := utf8.RuneCountInString(question)
	al := utf8.RuneCountInString(answer)

	points := 0
	if strings.Contains(question, "?") {
		points += 2
	}
	if ql > 20 {
		points++
	}
	if kw.Interrogatives.Match(question) {
		points++
	}
	if al > 50 {
		points += 2
	}
	if strings.Contains(answer, ".") {
		points++
	}
	if kw.Affirmatives.Match(answer) {
		points++
	}
	if al > 2*ql {
		points++
	}
	return points
}

// Score returns the confidence tier: 6 points or more is high, 4 or more
// medium, anything else low.
func (s Scorer) Score(question, answer string) Confidence {
	switch points := s.Points(question, answer); {
	case points >= 6:
		return ConfidenceHigh
	case points >= 4:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// IsIncomplete reports whether a cleaned answer is implausibly short.
func IsIncomplete(answer string) bool {
	return utf8.RuneCountInString(answer) < IncompleteAnswerLength
}
