package heuristic

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/faqmine"
)

const faqKeywords = `frequently asked questions|faqs?|q\s*&\s*a|q\s*and\s*a|questions\s+(?:and|&)\s+answers|häufig gestellte fragen|häufige fragen|fragen\s+(?:und|&)\s+antworten`

var (
	// Any mention of an FAQ keyword, used for headings.
	faqHeadingRe = regexp.MustCompile(`(?i)(?:^|[^\p{L}])(?:` + faqKeywords + `)(?:[^\p{L}]|$)`)

	// A standalone FAQ title line, optionally prefixed by a few words.
	faqLineRe = regexp.MustCompile(`(?i)^(?:[\p{L}\d&'-]+\s+){0,3}(?:` + faqKeywords + `)\s*[:.!]?$`)
)

// Section scanning limits.
const (
	maxTitleLineLength    = 80
	minQuestionLineLength = 10
	maxQuestionLineLength = 200
	minAnswerLineLength   = 10
	maxAnswerLines        = 5
	answerSettleLength    = 50
)

// Ensure SectionExtractor implements faqmine.PatternExtractor at compile time.
var _ faqmine.PatternExtractor = (*SectionExtractor)(nil)

// SectionExtractor finds sections titled "FAQ", "Frequently Asked
// Questions" and similar, and inside them pairs each question-like line
// with the substantial lines that follow it.
type SectionExtractor struct {
	keywords faqmine.Keywords
}

// NewSectionExtractor creates a SectionExtractor recognizing questions by
// the interrogatives in kw. Nil keyword sets fall back to the defaults.
func NewSectionExtractor(kw faqmine.Keywords) *SectionExtractor {
	if kw.Interrogatives == nil {
		kw.Interrogatives = faqmine.NewKeywordSet(faqmine.DefaultInterrogatives...)
	}
	return &SectionExtractor{keywords: kw}
}

// Name returns the extractor's identifier.
func (e *SectionExtractor) Name() string {
	return "section"
}

// Extract implements faqmine.PatternExtractor.
func (e *SectionExtractor) Extract(text, _ string) []faqmine.FAQCandidate {
	lines := splitLines(text)

	var candidates []faqmine.FAQCandidate
	for i := 0; i < len(lines); i++ {
		end, ok := sectionEnd(lines, i)
		if !ok {
			continue
		}
		candidates = append(candidates, e.scan(lines[i+1:end])...)
		i = end - 1
	}
	return candidates
}

// sectionEnd reports whether lines[start] opens an FAQ section and returns
// the index one past its last line.
func sectionEnd(lines []string, start int) (int, bool) {
	if level, title, ok := heading(lines[start]); ok {
		if !faqHeadingRe.MatchString(faqmine.CleanText(title)) {
			return 0, false
		}
		end := start + 1
		for end < len(lines) {
			if l, _, ok := heading(lines[end]); ok && l <= level {
				break
			}
			end++
		}
		return end, true
	}

	line := faqmine.CleanText(listMarkerRe.ReplaceAllString(lines[start], ""))
	if line == "" || utf8.RuneCountInString(line) > maxTitleLineLength || !faqLineRe.MatchString(line) {
		return 0, false
	}
	return len(lines), true
}

// scan pairs question-like lines with up to maxAnswerLines following lines.
func (e *SectionExtractor) scan(lines []string) []faqmine.FAQCandidate {
	var candidates []faqmine.FAQCandidate
	for i := 0; i < len(lines); i++ {
		question := stripLine(lines[i])
		if !e.isQuestion(question) {
			continue
		}

		var answer []string
		j := i + 1
		for ; j < len(lines) && len(answer) < maxAnswerLines; j++ {
			if isHeading(lines[j]) {
				break
			}
			s := stripLine(lines[j])
			if e.isQuestion(s) {
				break
			}
			if utf8.RuneCountInString(s) < minAnswerLineLength {
				continue
			}
			answer = append(answer, s)
			if settled(strings.Join(answer, " ")) {
				j++
				break
			}
		}

		if len(answer) > 0 {
			candidates = append(candidates, faqmine.FAQCandidate{
				Question: question,
				Answer:   strings.Join(answer, "\n"),
			})
		}
		i = j - 1
	}
	return candidates
}

// isQuestion reports whether a stripped line reads as a question.
func (e *SectionExtractor) isQuestion(s string) bool {
	n := utf8.RuneCountInString(s)
	return strings.HasSuffix(s, "?") &&
		n >= minQuestionLineLength && n <= maxQuestionLineLength &&
		e.keywords.Interrogatives.Match(s)
}

// settled reports whether an accumulated answer reads as complete.
func settled(answer string) bool {
	if utf8.RuneCountInString(answer) <= answerSettleLength {
		return false
	}
	return strings.HasSuffix(answer, ".") || strings.HasSuffix(answer, "!") ||
		strings.HasSuffix(answer, "?") || strings.HasSuffix(answer, "。")
}

// stripLine removes heading, list and emphasis markers from a line.
func stripLine(line string) string {
	if _, title, ok := heading(line); ok {
		line = title
	}
	return faqmine.CleanText(listMarkerRe.ReplaceAllString(line, ""))
}
