package heuristic

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/faqmine"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Engine defaults.
const (
	DefaultMinContentLength = 100
	DefaultConcurrency      = 4
)

var defaultCategorizer = faqmine.NewSubstringCategorizer(faqmine.DefaultTaxonomy())

// Ensure Engine implements faqmine.FAQExtractor at compile time.
var _ faqmine.FAQExtractor = (*Engine)(nil)

// Engine runs every pattern extractor over every page, validates and
// grades the candidates, and deduplicates the combined result. Pages are
// processed concurrently but results keep page, extractor and match order.
type Engine struct {
	Extractors  []faqmine.PatternExtractor
	Validator   faqmine.Validator
	Scorer      faqmine.Scorer
	Categorizer faqmine.Categorizer
	Languages   faqmine.LanguageDetector

	// Converter, when set, renders HTML pages to markdown for the text
	// extractors. Markup extractors always see the original HTML.
	Converter faqmine.Converter

	// MinContentLength is the normalized length below which a page is
	// skipped.
	MinContentLength int
	Concurrency      int

	Now   func() time.Time
	NewID func() string
}

// NewEngine creates an Engine with default grading over the given extractors.
func NewEngine(extractors []faqmine.PatternExtractor) *Engine {
	return &Engine{
		Extractors:       extractors,
		Categorizer:      defaultCategorizer,
		MinContentLength: DefaultMinContentLength,
		Concurrency:      DefaultConcurrency,
	}
}

// pageResult holds the FAQs found on one page.
type pageResult struct {
	position int
	url      string
	faqs     []*faqmine.FAQItem
	skipped  bool
}

// ExtractAll extracts and deduplicates FAQs from pages. An empty result is
// a valid outcome.
func (e *Engine) ExtractAll(pages []*faqmine.PageContent) []*faqmine.FAQItem {
	faqs, _ := e.ExtractFAQs(context.Background(), pages, nil)
	return faqs
}

// ExtractFAQs implements faqmine.FAQExtractor. It fails only when ctx is
// cancelled.
func (e *Engine) ExtractFAQs(ctx context.Context, pages []*faqmine.PageContent, progress faqmine.ExtractProgressFunc) ([]*faqmine.FAQItem, error) {
	concurrency := e.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan pageResult, len(pages))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, page := range pages {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				faqs, skipped := e.extractPage(page)
				resultCh <- pageResult{position: i, url: page.URL, faqs: faqs, skipped: skipped}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in page order.
	results := make([][]*faqmine.FAQItem, len(pages))
	completed := 0
	for result := range resultCh {
		completed++
		results[result.position] = result.faqs
		if progress != nil {
			progress(faqmine.ExtractProgress{
				URL:       result.url,
				Completed: completed,
				Total:     len(pages),
				Found:     len(result.faqs),
				Skipped:   result.skipped,
			})
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var all []*faqmine.FAQItem
	for _, faqs := range results {
		all = append(all, faqs...)
	}
	return faqmine.Dedupe(all), nil
}

// extractPage runs every extractor over one page. It reports skipped when
// the page is too short to hold FAQs.
func (e *Engine) extractPage(page *faqmine.PageContent) ([]*faqmine.FAQItem, bool) {
	content := faqmine.Normalize(page.Content)
	minLength := e.MinContentLength
	if minLength <= 0 {
		minLength = DefaultMinContentLength
	}
	if utf8.RuneCountInString(content) < minLength {
		return nil, true
	}

	text := content
	if e.Converter != nil && isHTMLDocument(content) {
		if md, err := e.Converter.Convert(content); err == nil {
			text = faqmine.Normalize(md)
		}
	}

	var faqs []*faqmine.FAQItem
	for _, extractor := range e.Extractors {
		input := text
		if _, ok := extractor.(faqmine.MarkupExtractor); ok {
			input = content
		}
		for _, c := range runExtractor(extractor, input, page.URL) {
			if faq := e.buildFAQ(c, page.URL); faq != nil {
				faqs = append(faqs, faq)
			}
		}
	}
	return faqs, false
}

// runExtractor isolates extractor panics so one misbehaving strategy does
// not stop the others.
func runExtractor(extractor faqmine.PatternExtractor, text, sourceURL string) (candidates []faqmine.FAQCandidate) {
	defer func() {
		if recover() != nil {
			candidates = nil
		}
	}()
	return extractor.Extract(text, sourceURL)
}

// buildFAQ cleans, validates and grades a candidate. It returns nil for
// rejected candidates.
func (e *Engine) buildFAQ(c faqmine.FAQCandidate, sourceURL string) *faqmine.FAQItem {
	question := faqmine.CleanText(c.Question)
	answer := faqmine.CleanText(c.Answer)
	if !e.Validator.IsValid(question, answer) {
		return nil
	}

	categorizer := e.Categorizer
	if categorizer == nil {
		categorizer = defaultCategorizer
	}
	category := categorizer.Categorize(question)
	if category == "" {
		category = faqmine.DefaultCategory
	}

	language := faqmine.DefaultLanguage
	if e.Languages != nil {
		if l := e.Languages.DetectLanguage(question + "\n" + answer); l != "" {
			language = l
		}
	}

	return &faqmine.FAQItem{
		ID:           e.newID(),
		Question:     question,
		Answer:       answer,
		Category:     category,
		Language:     language,
		SourceURL:    sourceURL,
		Confidence:   e.Scorer.Score(question, answer),
		IsIncomplete: faqmine.IsIncomplete(answer),
		ExtractedAt:  e.now(),
	}
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now().UTC()
}

func (e *Engine) newID() string {
	if e.NewID != nil {
		return e.NewID()
	}
	return uuid.New().String()
}

var htmlBlockTags = []string{"<html", "<body", "<div", "<p>", "<p ", "<section", "<article", "<details", "<ul", "<h1", "<h2", "<h3", "<table"}

// isHTMLDocument reports whether content is HTML markup rather than
// markdown or plain text with an occasional tag.
func isHTMLDocument(content string) bool {
	s := strings.TrimSpace(content)
	if !strings.HasPrefix(s, "<") {
		return false
	}
	lower := strings.ToLower(s)
	for _, tag := range htmlBlockTags {
		if strings.Contains(lower, tag) {
			return true
		}
	}
	return false
}
