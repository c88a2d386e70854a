package faqmine

import (
	"strings"
	"unicode/utf8"
)

// Length bounds, in characters, for cleaned questions and answers.
const (
	MinQuestionLength = 10
	MaxQuestionLength = 300
	MinAnswerLength   = 15
	MaxAnswerLength   = 1000
)

// Validator filters degenerate question/answer pairs.
// The zero value uses the default keywords.
type Validator struct {
	Keywords Keywords
}

// IsValid reports whether a cleaned question/answer pair is plausible FAQ
// content.
func (v Validator) IsValid(question, answer string) bool {
	ql := utf8.RuneCountInString(question)
	al := utf8.RuneCountInString(answer)

	if ql < MinQuestionLength || ql > MaxQuestionLength {
		return false
	}
	if al < MinAnswerLength || al > MaxAnswerLength {
		return false
	}
	if question == answer {
		return false
	}
	if isPlaceholder(question) || isPlaceholder(answer) {
		return false
	}
	if al*2 < ql {
		return false
	}
	return strings.Contains(question, "?") || v.Keywords.withDefaults().Interrogatives.Match(question)
}

func isPlaceholder(s string) bool {
	return strings.Contains(strings.ToLower(s), "lorem ipsum")
}
