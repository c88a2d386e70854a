package mock

import "github.com/fwojciec/faqmine"

var _ faqmine.Categorizer = (*Categorizer)(nil)

// Categorizer is a mock implementation of faqmine.Categorizer.
type Categorizer struct {
	CategorizeFn func(question string) string
}

func (c *Categorizer) Categorize(question string) string {
	return c.CategorizeFn(question)
}

var _ faqmine.LanguageDetector = (*LanguageDetector)(nil)

// LanguageDetector is a mock implementation of faqmine.LanguageDetector.
type LanguageDetector struct {
	DetectLanguageFn func(text string) string
}

func (d *LanguageDetector) DetectLanguage(text string) string {
	return d.DetectLanguageFn(text)
}
