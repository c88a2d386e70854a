// Package readability reduces crawled HTML pages to their main content
// using go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/faqmine"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements faqmine.ContentExtractor at compile time.
var _ faqmine.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
// Returns ENOTFOUND if no readable content is found.
func (e *Extractor) Extract(rawHTML string) (*faqmine.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, faqmine.Errorf(faqmine.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(article.Content) == "" {
		return nil, faqmine.Errorf(faqmine.ENOTFOUND, "no readable content")
	}

	return &faqmine.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
