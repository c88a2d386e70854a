// Package llm extracts FAQs by prompting a language model with page content.
package llm

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/faqmine"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Extractor defaults.
const (
	DefaultMinContentLength = 100
	DefaultConcurrency      = 2
)

// Ensure Extractor implements faqmine.FAQExtractor at compile time.
var _ faqmine.FAQExtractor = (*Extractor)(nil)

// Extractor sends each page to a Completer and maps the reply to FAQs.
// Pages that fail are reported through progress and skipped; extraction
// fails only when every page sent to the model fails.
type Extractor struct {
	Completer faqmine.Completer

	// Limiter paces completion requests. Nil means no pacing.
	Limiter *rate.Limiter

	Concurrency      int
	MaxContentChars  int
	MinContentLength int

	// RetryDelays are waited between attempts of a failed completion.
	// Nil uses DefaultRetryDelays.
	RetryDelays []time.Duration

	// KeepDuplicates disables deduplication of the combined output.
	KeepDuplicates bool

	Now   func() time.Time
	NewID func() string
}

// NewExtractor creates an Extractor with default settings.
func NewExtractor(completer faqmine.Completer) *Extractor {
	return &Extractor{
		Completer:        completer,
		Concurrency:      DefaultConcurrency,
		MaxContentChars:  DefaultMaxContentChars,
		MinContentLength: DefaultMinContentLength,
		RetryDelays:      DefaultRetryDelays(),
	}
}

// pageResult holds the outcome of one page.
type pageResult struct {
	position int
	url      string
	faqs     []*faqmine.FAQItem
	skipped  bool
	err      error
}

// ExtractFAQs implements faqmine.FAQExtractor.
func (e *Extractor) ExtractFAQs(ctx context.Context, pages []*faqmine.PageContent, progress faqmine.ExtractProgressFunc) ([]*faqmine.FAQItem, error) {
	if e.Completer == nil {
		return nil, faqmine.Errorf(faqmine.EINVALID, "completer required")
	}

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
				faqs, skipped, err := e.extractPage(gctx, page)
				resultCh <- pageResult{position: i, url: page.URL, faqs: faqs, skipped: skipped, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([][]*faqmine.FAQItem, len(pages))
	errs := make([]error, len(pages))
	completed, attempted, failed := 0, 0, 0
	for result := range resultCh {
		completed++
		results[result.position] = result.faqs
		if !result.skipped {
			attempted++
		}
		if result.err != nil {
			failed++
			errs[result.position] = result.err
		}
		if progress != nil {
			progress(faqmine.ExtractProgress{
				URL:       result.url,
				Completed: completed,
				Total:     len(pages),
				Found:     len(result.faqs),
				Skipped:   result.skipped,
				Error:     result.err,
			})
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if attempted > 0 && failed == attempted {
		for _, err := range errs {
			if err != nil {
				return nil, err
			}
		}
	}

	all := []*faqmine.FAQItem{}
	for _, faqs := range results {
		all = append(all, faqs...)
	}
	if e.KeepDuplicates {
		return all, nil
	}
	return faqmine.Dedupe(all), nil
}

// extractPage prompts the model with one page. It reports skipped when the
// page is too short to be worth a request.
func (e *Extractor) extractPage(ctx context.Context, page *faqmine.PageContent) ([]*faqmine.FAQItem, bool, error) {
	content := StripMarkdown(faqmine.Normalize(page.Content))
	minLength := e.MinContentLength
	if minLength <= 0 {
		minLength = DefaultMinContentLength
	}
	if utf8.RuneCountInString(content) < minLength {
		return nil, true, nil
	}

	maxChars := e.MaxContentChars
	if maxChars <= 0 {
		maxChars = DefaultMaxContentChars
	}
	content = truncate(content, maxChars)

	if e.Limiter != nil {
		if err := e.Limiter.Wait(ctx); err != nil {
			return nil, false, err
		}
	}

	delays := e.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	text, err := CompleteWithRetry(ctx, e.Completer, &faqmine.CompletionRequest{
		System: SystemPrompt,
		User:   BuildUserPrompt(page.URL, content),
	}, delays)
	if err != nil {
		return nil, false, err
	}

	items, err := ParseResponse(text)
	if err != nil {
		return nil, false, err
	}

	faqs := make([]*faqmine.FAQItem, 0, len(items))
	for _, item := range items {
		faqs = append(faqs, e.buildFAQ(item, page.URL))
	}
	return faqs, false, nil
}

// buildFAQ maps a model item to an FAQItem, filling in defaults for
// missing or unknown fields.
func (e *Extractor) buildFAQ(item ResponseItem, sourceURL string) *faqmine.FAQItem {
	answer := strings.TrimSpace(item.Answer)

	category := strings.TrimSpace(item.Category)
	if category == "" {
		category = faqmine.DefaultCategory
	}
	language := strings.TrimSpace(item.Language)
	if language == "" {
		language = faqmine.DefaultLanguage
	}
	confidence, ok := faqmine.ParseConfidence(strings.ToLower(strings.TrimSpace(item.Confidence)))
	if !ok {
		confidence = faqmine.ConfidenceMedium
	}

	return &faqmine.FAQItem{
		ID:           e.newID(),
		Question:     strings.TrimSpace(item.Question),
		Answer:       answer,
		Category:     category,
		Language:     language,
		SourceURL:    sourceURL,
		Confidence:   confidence,
		IsIncomplete: faqmine.IsIncomplete(answer),
		ExtractedAt:  e.now(),
	}
}

func (e *Extractor) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now().UTC()
}

func (e *Extractor) newID() string {
	if e.NewID != nil {
		return e.NewID()
	}
	return uuid.New().String()
}
