package goquery

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/faqmine"
)

// Ensure SchemaExtractor implements faqmine.MarkupExtractor at compile time.
var _ faqmine.MarkupExtractor = (*SchemaExtractor)(nil)

// SchemaExtractor reads schema.org FAQPage structured data, both JSON-LD
// scripts and Question microdata.
type SchemaExtractor struct{}

// NewSchemaExtractor creates a new SchemaExtractor.
func NewSchemaExtractor() *SchemaExtractor {
	return &SchemaExtractor{}
}

// Name returns the extractor's identifier.
func (e *SchemaExtractor) Name() string {
	return "schema"
}

// Markup marks the extractor as reading HTML.
func (e *SchemaExtractor) Markup() {}

// Extract returns JSON-LD questions first, then microdata questions.
func (e *SchemaExtractor) Extract(text, _ string) []faqmine.FAQCandidate {
	lower := strings.ToLower(text)
	if !strings.Contains(lower, "application/ld+json") && !strings.Contains(lower, "schema.org/question") {
		return nil
	}
	doc, ok := parse(text)
	if !ok {
		return nil
	}

	var candidates []faqmine.FAQCandidate
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, script *goquery.Selection) {
		var data any
		if err := json.Unmarshal([]byte(script.Text()), &data); err != nil {
			return
		}
		candidates = append(candidates, ldQuestions(data)...)
	})

	doc.Find(`[itemtype$="schema.org/Question"]`).Each(func(_ int, q *goquery.Selection) {
		name := q.Find(`[itemprop="name"]`).First()
		answer := q.Find(`[itemprop="acceptedAnswer"] [itemprop="text"], [itemprop="suggestedAnswer"] [itemprop="text"]`).First()
		if name.Length() == 0 || answer.Length() == 0 {
			return
		}
		question, text := textOf(name), textOf(answer)
		if question != "" && text != "" {
			candidates = append(candidates, faqmine.FAQCandidate{Question: question, Answer: text})
		}
	})
	return candidates
}

// ldQuestions walks decoded JSON-LD for Question nodes in document order.
func ldQuestions(v any) []faqmine.FAQCandidate {
	var out []faqmine.FAQCandidate
	switch node := v.(type) {
	case []any:
		for _, item := range node {
			out = append(out, ldQuestions(item)...)
		}
	case map[string]any:
		if hasType(node["@type"], "Question") {
			question, _ := node["name"].(string)
			answer := ldAnswer(node["acceptedAnswer"])
			if answer == "" {
				answer = ldAnswer(node["suggestedAnswer"])
			}
			if strings.TrimSpace(question) != "" && strings.TrimSpace(answer) != "" {
				out = append(out, faqmine.FAQCandidate{Question: question, Answer: answer})
			}
			return out
		}
		for _, key := range []string{"@graph", "mainEntity", "hasPart"} {
			if child, ok := node[key]; ok {
				out = append(out, ldQuestions(child)...)
			}
		}
	}
	return out
}

func ldAnswer(v any) string {
	switch a := v.(type) {
	case map[string]any:
		text, _ := a["text"].(string)
		return text
	case []any:
		for _, item := range a {
			if text := ldAnswer(item); text != "" {
				return text
			}
		}
	}
	return ""
}

func hasType(v any, want string) bool {
	switch t := v.(type) {
	case string:
		return t == want
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok && s == want {
				return true
			}
		}
	}
	return false
}
