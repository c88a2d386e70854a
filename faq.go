package faqmine

import (
	"context"
	"time"
)

// DefaultLanguage is assigned when no language can be detected.
const DefaultLanguage = "English"

// Confidence is a coarse quality grade of an extracted FAQ.
type Confidence string

// Confidence tiers.
const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// ParseConfidence returns the tier named by s, or false if s names none.
func ParseConfidence(s string) (Confidence, bool) {
	switch Confidence(s) {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		return Confidence(s), true
	}
	return "", false
}

// IncompleteAnswerLength is the cleaned answer length below which an FAQ
// is flagged as incomplete.
const IncompleteAnswerLength = 30

// PageContent is one crawled page handed to extraction.
type PageContent struct {
	URL      string         `json:"url"`
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// FAQCandidate is a raw question/answer pair located by a PatternExtractor,
// before cleaning and validation.
type FAQCandidate struct {
	Question string
	Answer   string
}

// FAQItem is a validated, categorized and graded question/answer record.
type FAQItem struct {
	ID           string     `json:"id"`
	Question     string     `json:"question"`
	Answer       string     `json:"answer"`
	Category     string     `json:"category"`
	Language     string     `json:"language"`
	SourceURL    string     `json:"sourceUrl"`
	Confidence   Confidence `json:"confidence"`
	IsIncomplete bool       `json:"isIncomplete"`
	IsDuplicate  bool       `json:"isDuplicate"`
	ExtractedAt  time.Time  `json:"extractedAt"`
}

// PatternExtractor locates question/answer candidates for one structural
// signal. Implementations are stateless and never fail: text without a
// match yields no candidates.
type PatternExtractor interface {
	// Name identifies the strategy in logs.
	Name() string

	// Extract returns candidates in match order.
	Extract(text, sourceURL string) []FAQCandidate
}

// MarkupExtractor is a PatternExtractor that reads HTML markup. When page
// content is converted to markdown before extraction, markup extractors
// still receive the original HTML.
type MarkupExtractor interface {
	PatternExtractor
	Markup()
}

// ExtractProgress reports progress during FAQ extraction.
type ExtractProgress struct {
	URL       string
	Completed int
	Total     int
	Found     int
	Skipped   bool
	Error     error
}

// ExtractProgressFunc is called as pages are processed.
type ExtractProgressFunc func(ExtractProgress)

// FAQExtractor turns crawled pages into deduplicated FAQs.
// Implementations hide whether heuristics or a language model do the work.
// An empty result is a valid outcome.
type FAQExtractor interface {
	ExtractFAQs(ctx context.Context, pages []*PageContent, progress ExtractProgressFunc) ([]*FAQItem, error)
}

// LanguageDetector names the natural language of a text, e.g. "English".
type LanguageDetector interface {
	DetectLanguage(text string) string
}
