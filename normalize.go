package faqmine

import (
	"regexp"
	"strings"
)

var (
	// Three or more newlines, counting whitespace-only lines as empty.
	blankRunRe = regexp.MustCompile(`\n(?:[ \t]*\n){2,}`)

	listMarkerRe = regexp.MustCompile(`^(?:[-*+•]|\d+[.)])\s+`)
	linkWrapRe   = regexp.MustCompile(`^\[([^\]]*)\]\([^)]*\)$`)

	socialRe = regexp.MustCompile(`^(?:follow us|folgen sie uns|share (?:this|on)|teilen auf)\b`)
	legalRe  = regexp.MustCompile(`^(?:copyright\b|©|\(c\)\s|all rights reserved|alle rechte vorbehalten)`)
)

var navigationLines = map[string]bool{
	"home": true, "about": true, "about us": true, "contact": true,
	"contact us": true, "privacy": true, "terms": true, "login": true,
	"log in": true, "sign in": true, "sign up": true, "register": true,
	"menu": true, "search": true, "newsletter": true, "subscribe": true,
	"skip to content": true, "back to top": true,
	"startseite": true, "über uns": true, "kontakt": true,
	"datenschutz": true, "impressum": true, "anmelden": true,
	"registrieren": true, "suche": true,
}

var socialLines = map[string]bool{
	"share": true, "like": true, "tweet": true, "facebook": true,
	"twitter": true, "x": true, "instagram": true, "linkedin": true,
	"youtube": true, "pinterest": true, "teilen": true,
}

var legalLines = map[string]bool{
	"terms of service": true, "terms and conditions": true,
	"privacy policy": true, "cookie policy": true, "cookie settings": true,
	"datenschutzerklärung": true, "agb": true, "nutzungsbedingungen": true,
}

// Normalize removes navigation, social and legal boilerplate lines from
// crawled text and collapses runs of blank lines. Markdown markers are kept
// so pattern extractors can still see headings and emphasis. Normalize is
// idempotent and never lengthens its input.
func Normalize(raw string) string {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if isNoiseLine(line) {
			continue
		}
		kept = append(kept, line)
	}

	text = strings.Join(kept, "\n")
	text = blankRunRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// isNoiseLine reports whether a whole line is site chrome.
func isNoiseLine(line string) bool {
	s := strings.TrimSpace(line)
	if s == "" {
		return false
	}
	s = listMarkerRe.ReplaceAllString(s, "")
	if m := linkWrapRe.FindStringSubmatch(s); m != nil {
		s = m[1]
	}
	s = strings.ToLower(strings.TrimRight(strings.TrimSpace(s), " |:»›>"))
	if s == "" {
		return false
	}

	switch {
	case navigationLines[s], socialLines[s], legalLines[s]:
		return true
	case socialRe.MatchString(s):
		return true
	case legalRe.MatchString(s):
		return true
	case strings.Contains(s, "all rights reserved"), strings.Contains(s, "alle rechte vorbehalten"):
		return true
	}
	return false
}
