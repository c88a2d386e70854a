// Package heuristic implements the rule-based FAQ extraction engine: the
// line-oriented text pattern extractors and the orchestrator that runs
// every extractor over every page, grades the results and deduplicates
// them.
package heuristic

import (
	"regexp"
	"strings"
)

var (
	headingRe    = regexp.MustCompile(`^\s{0,3}(#{1,6})\s+(.*?)\s*#*\s*$`)
	listItemRe   = regexp.MustCompile(`^\s*(?:\d+[.)]|[-*+•])\s+(.*)$`)
	listMarkerRe = regexp.MustCompile(`^\s*(?:\d+[.)]|[-*+•])\s+`)
)

// splitLines splits text into lines without line terminators.
func splitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

// heading returns the level and text of a markdown ATX heading.
func heading(line string) (level int, text string, ok bool) {
	m := headingRe.FindStringSubmatch(line)
	if m == nil {
		return 0, "", false
	}
	return len(m[1]), m[2], true
}

func isHeading(line string) bool {
	_, _, ok := heading(line)
	return ok
}

func isListItem(line string) bool {
	return listItemRe.MatchString(line)
}

// joinBlock joins answer lines, trimming surrounding blank lines.
func joinBlock(lines []string) string {
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
