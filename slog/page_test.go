package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/faqmine"
	"github.com/fwojciec/faqmine/mock"
	faqslog "github.com/fwojciec/faqmine/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingPageSource_Pages(t *testing.T) {
	t.Parallel()

	t.Run("logs path and count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.PageSource{
			PagesFn: func(context.Context) ([]*faqmine.PageContent, error) {
				return []*faqmine.PageContent{{URL: "a"}, {URL: "b"}, {URL: "c"}}, nil
			},
		}

		src := faqslog.NewLoggingPageSource(inner, "crawl.json", logger)
		pages, err := src.Pages(context.Background())

		require.NoError(t, err)
		assert.Len(t, pages, 3)
		output := buf.String()
		assert.Contains(t, output, "load pages")
		assert.Contains(t, output, "path=crawl.json")
		assert.Contains(t, output, "count=3")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.PageSource{
			PagesFn: func(context.Context) ([]*faqmine.PageContent, error) {
				return nil, faqmine.Errorf(faqmine.ENOTFOUND, "crawl export not found")
			},
		}

		src := faqslog.NewLoggingPageSource(inner, "missing.json", logger)
		_, err := src.Pages(context.Background())

		require.Error(t, err)
		assert.Contains(t, buf.String(), "count=0")
		assert.Contains(t, buf.String(), "crawl export not found")
	})
}
