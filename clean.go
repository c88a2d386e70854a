package faqmine

import (
	"html"
	"regexp"
	"strings"
)

var (
	tagRe         = regexp.MustCompile(`<[^>]*>`)
	mdLinkRe      = regexp.MustCompile(`!?\[([^\]]*)\]\([^)]*\)`)
	headingMarkRe = regexp.MustCompile(`(?m)^\s*#{1,6}\s+`)
	emphasisRe    = regexp.MustCompile(`\*+|__`)
)

// CleanText strips markup from a question or answer: HTML tags, entities,
// markdown links, emphasis and heading markers. Whitespace is collapsed to
// single spaces.
func CleanText(s string) string {
	s = tagRe.ReplaceAllString(s, " ")
	s = html.UnescapeString(s)
	s = mdLinkRe.ReplaceAllString(s, "$1")
	s = headingMarkRe.ReplaceAllString(s, "")
	s = emphasisRe.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), " ")
}
