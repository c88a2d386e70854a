package faqmine

import (
	"strings"
	"unicode"
)

// DefaultInterrogatives are question words in English and German.
var DefaultInterrogatives = []string{
	"what", "how", "when", "where", "why", "which", "who",
	"can", "do", "does", "is", "are", "will", "should", "could",
	"was", "wie", "wann", "wo", "warum", "welche", "welcher", "wer",
	"kann", "können", "gibt", "ist", "sind",
}

// DefaultAffirmatives are words typical of explanatory answers.
var DefaultAffirmatives = []string{
	"yes", "no", "you can", "we offer", "our", "the",
	"ja", "nein", "sie können", "wir bieten", "unser", "unsere",
	"der", "die", "das",
}

// KeywordSet matches whole words and multi-word phrases case-insensitively.
// A KeywordSet is immutable once built and safe for concurrent use.
type KeywordSet struct {
	keywords []string
	words    map[string]bool
	phrases  [][]string
}

// NewKeywordSet builds a set from keywords. Keywords containing spaces
// match as consecutive words.
func NewKeywordSet(keywords ...string) *KeywordSet {
	s := &KeywordSet{words: make(map[string]bool)}
	for _, kw := range keywords {
		tokens := tokenize(kw)
		switch len(tokens) {
		case 0:
			continue
		case 1:
			s.words[tokens[0]] = true
		default:
			s.phrases = append(s.phrases, tokens)
		}
		s.keywords = append(s.keywords, strings.ToLower(strings.TrimSpace(kw)))
	}
	return s
}

// Keywords returns the keywords the set was built from, lower-cased.
func (s *KeywordSet) Keywords() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.keywords...)
}

// Match reports whether text contains any keyword as a whole word or phrase.
func (s *KeywordSet) Match(text string) bool {
	if s == nil {
		return false
	}
	tokens := tokenize(text)
	for i, tok := range tokens {
		if s.words[tok] {
			return true
		}
		for _, phrase := range s.phrases {
			if hasPrefixTokens(tokens[i:], phrase) {
				return true
			}
		}
	}
	return false
}

func hasPrefixTokens(tokens, prefix []string) bool {
	if len(tokens) < len(prefix) {
		return false
	}
	for i := range prefix {
		if tokens[i] != prefix[i] {
			return false
		}
	}
	return true
}

// tokenize lower-cases text and splits it into letter/digit runs.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// Keywords holds the keyword lists used by validation and scoring.
// Nil sets fall back to the defaults.
type Keywords struct {
	Interrogatives *KeywordSet
	Affirmatives   *KeywordSet
}

var defaultKeywords = DefaultKeywords()

// DefaultKeywords returns the built-in English and German keyword lists.
func DefaultKeywords() Keywords {
	return Keywords{
		Interrogatives: NewKeywordSet(DefaultInterrogatives...),
		Affirmatives:   NewKeywordSet(DefaultAffirmatives...),
	}
}

func (k Keywords) withDefaults() Keywords {
	if k.Interrogatives == nil {
		k.Interrogatives = defaultKeywords.Interrogatives
	}
	if k.Affirmatives == nil {
		k.Affirmatives = defaultKeywords.Affirmatives
	}
	return k
}
