// Package ahocorasick categorizes questions with an Aho-Corasick automaton
// built over every keyword of a taxonomy, matching all categories in a
// single pass over the question.
package ahocorasick

import (
	"strings"
	"sync"

	"github.com/cloudflare/ahocorasick"
	"github.com/fwojciec/faqmine"
)

// Ensure Categorizer implements faqmine.Categorizer at compile time.
var _ faqmine.Categorizer = (*Categorizer)(nil)

// Categorizer returns the first taxonomy category, in table order, with a
// keyword occurring anywhere in the lower-cased question.
type Categorizer struct {
	mu       sync.Mutex // Matcher keeps per-match state
	matcher  *ahocorasick.Matcher
	names    []string
	keywords []int // dictionary index -> lowest category index
}

// NewCategorizer builds the automaton for t.
func NewCategorizer(t faqmine.Taxonomy) *Categorizer {
	c := &Categorizer{names: make([]string, len(t))}

	var dictionary []string
	seen := make(map[string]int)
	for i, cat := range t {
		c.names[i] = cat.Name
		for _, kw := range cat.Keywords {
			kw = strings.ToLower(kw)
			if kw == "" {
				continue
			}
			if _, ok := seen[kw]; ok {
				// The earlier category already owns this keyword.
				continue
			}
			seen[kw] = len(dictionary)
			dictionary = append(dictionary, kw)
			c.keywords = append(c.keywords, i)
		}
	}

	if len(dictionary) > 0 {
		c.matcher = ahocorasick.NewStringMatcher(dictionary)
	}
	return c
}

// Categorize implements faqmine.Categorizer.
func (c *Categorizer) Categorize(question string) string {
	if c.matcher == nil {
		return faqmine.DefaultCategory
	}

	c.mu.Lock()
	hits := c.matcher.Match([]byte(strings.ToLower(question)))
	c.mu.Unlock()

	best := -1
	for _, hit := range hits {
		if hit >= len(c.keywords) {
			continue
		}
		if cat := c.keywords[hit]; best < 0 || cat < best {
			best = cat
		}
	}
	if best < 0 || c.names[best] == "" {
		return faqmine.DefaultCategory
	}
	return c.names[best]
}
