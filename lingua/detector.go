// Package lingua detects the natural language of FAQ text with lingua-go.
package lingua

import (
	"strings"

	"github.com/fwojciec/faqmine"
	"github.com/pemistahl/lingua-go"
)

// DefaultLanguages are the candidate languages when none are configured.
var DefaultLanguages = []string{"English", "German", "French", "Spanish", "Italian", "Portuguese", "Dutch"}

// Ensure Detector implements faqmine.LanguageDetector at compile time.
var _ faqmine.LanguageDetector = (*Detector)(nil)

// Detector wraps a lingua-go detector restricted to a set of candidate
// languages. It is safe for concurrent use.
type Detector struct {
	detector lingua.LanguageDetector
	fallback string
}

// NewDetector creates a Detector choosing among the named languages, e.g.
// "English" or "german". With no names DefaultLanguages are used.
// Returns EINVALID for an unknown language name.
func NewDetector(names ...string) (*Detector, error) {
	if len(names) == 0 {
		names = DefaultLanguages
	}

	languages := make([]lingua.Language, 0, len(names))
	for _, name := range names {
		lang, ok := languageByName(name)
		if !ok {
			return nil, faqmine.Errorf(faqmine.EINVALID, "unknown language %q", name)
		}
		languages = append(languages, lang)
	}
	if len(languages) < 2 {
		return nil, faqmine.Errorf(faqmine.EINVALID, "at least two languages required")
	}

	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(languages...).
		WithMinimumRelativeDistance(0.1).
		Build()

	return &Detector{detector: detector, fallback: faqmine.DefaultLanguage}, nil
}

// DetectLanguage implements faqmine.LanguageDetector. Text whose language
// cannot be told apart reliably is reported as the default language.
func (d *Detector) DetectLanguage(text string) string {
	if strings.TrimSpace(text) == "" {
		return d.fallback
	}
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return d.fallback
	}
	return lang.String()
}

func languageByName(name string) (lingua.Language, bool) {
	for _, lang := range lingua.AllLanguages() {
		if strings.EqualFold(lang.String(), strings.TrimSpace(name)) {
			return lang, true
		}
	}
	return lingua.Unknown, false
}
