package faqmine_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/faqmine"
	"github.com/fwojciec/faqmine/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallback_ExtractFAQs(t *testing.T) {
	t.Parallel()

	pages := []*faqmine.PageContent{{URL: "https://example.com/faq", Content: "content"}}
	extractor := func(faqs []*faqmine.FAQItem, err error, called *bool) *mock.FAQExtractor {
		return &mock.FAQExtractor{
			ExtractFAQsFn: func(_ context.Context, _ []*faqmine.PageContent, _ faqmine.ExtractProgressFunc) ([]*faqmine.FAQItem, error) {
				*called = true
				return faqs, err
			},
		}
	}

	t.Run("returns primary results when found", func(t *testing.T) {
		t.Parallel()

		var primaryCalled, secondaryCalled bool
		f := &faqmine.Fallback{
			Primary:   extractor([]*faqmine.FAQItem{{ID: "p"}}, nil, &primaryCalled),
			Secondary: extractor([]*faqmine.FAQItem{{ID: "s"}}, nil, &secondaryCalled),
		}

		got, err := f.ExtractFAQs(context.Background(), pages, nil)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "p", got[0].ID)
		assert.True(t, primaryCalled)
		assert.False(t, secondaryCalled)
	})

	t.Run("falls back when primary finds nothing", func(t *testing.T) {
		t.Parallel()

		var primaryCalled, secondaryCalled bool
		f := &faqmine.Fallback{
			Primary:   extractor(nil, nil, &primaryCalled),
			Secondary: extractor([]*faqmine.FAQItem{{ID: "s"}}, nil, &secondaryCalled),
		}

		got, err := f.ExtractFAQs(context.Background(), pages, nil)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "s", got[0].ID)
		assert.True(t, secondaryCalled)
	})

	t.Run("falls back when primary fails", func(t *testing.T) {
		t.Parallel()

		var primaryCalled, secondaryCalled bool
		f := &faqmine.Fallback{
			Primary:   extractor(nil, errors.New("quota exceeded"), &primaryCalled),
			Secondary: extractor([]*faqmine.FAQItem{{ID: "s"}}, nil, &secondaryCalled),
		}

		got, err := f.ExtractFAQs(context.Background(), pages, nil)

		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("stops when context is cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var primaryCalled, secondaryCalled bool
		f := &faqmine.Fallback{
			Primary:   extractor(nil, context.Canceled, &primaryCalled),
			Secondary: extractor([]*faqmine.FAQItem{{ID: "s"}}, nil, &secondaryCalled),
		}

		_, err := f.ExtractFAQs(ctx, pages, nil)

		require.ErrorIs(t, err, context.Canceled)
		assert.False(t, secondaryCalled)
	})
}
