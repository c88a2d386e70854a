package llm

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultMaxContentChars is the number of characters of page content sent
// to the model.
const DefaultMaxContentChars = 15000

// SystemPrompt instructs the model to return FAQs as a JSON array.
const SystemPrompt = `You extract frequently asked questions and their answers from website content.

Rules:
1. Extract only real question and answer pairs a customer would find useful.
2. Keep questions clear and specific and answers complete.
3. Ignore navigation, footers and promotional copy.
4. Content may be in any language; keep each pair in its original language.
5. Consider explicit Q&A sections as well as content that implicitly answers a question.
6. Return at most 15 pairs, preferring customer service, product and support topics.
7. Name the language of every pair.

Respond with a JSON array where every element has this shape:
[
  {
    "question": "the question",
    "answer": "the answer",
    "category": "Shipping|Returns|Payment|Support|Technical|General|Account|Products",
    "language": "English|German|French|Spanish|Italian|Portuguese|Dutch|Russian|Chinese|Japanese|Korean|Arabic|Other",
    "confidence": "high|medium|low"
  }
]

Return only the JSON array.`

// BuildUserPrompt creates the user message for one page.
func BuildUserPrompt(sourceURL, content string) string {
	return fmt.Sprintf("Extract FAQs from this website content from %s:\n\n%s", sourceURL, content)
}

var markerRe = regexp.MustCompile(`(?m)^[ \t]*[#*-]{1,3}[ \t]*`)

// StripMarkdown removes leading heading, emphasis and list markers from
// every line.
func StripMarkdown(content string) string {
	return strings.TrimSpace(markerRe.ReplaceAllString(content, ""))
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
