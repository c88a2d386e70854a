package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/faqmine"
	main "github.com/fwojciec/faqmine/cmd/faqmine"
	"github.com/fwojciec/faqmine/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists runs with id, mode, source and counts", func(t *testing.T) {
		t.Parallel()

		var gotFilter faqmine.RunFilter
		runs := &mock.RunService{
			FindRunsFn: func(_ context.Context, filter faqmine.RunFilter) ([]*faqmine.Run, error) {
				gotFilter = filter
				return []*faqmine.Run{
					{ID: "run-2", Source: "https://b.example.com", Mode: faqmine.ModeOpenAI, PageCount: 3, FAQCount: 12, CreatedAt: time.Date(2025, 1, 16, 11, 0, 0, 0, time.UTC)},
					{ID: "run-1", Source: "https://a.example.com", Mode: faqmine.ModeHeuristic, PageCount: 5, FAQCount: 7, CreatedAt: time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: stderr, Runs: runs}

		err := (&main.RunsCmd{Limit: 5}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 5, gotFilter.Limit)
		output := stdout.String()
		assert.Contains(t, output, "run-2")
		assert.Contains(t, output, "run-1")
		assert.Contains(t, output, "openai")
		assert.Contains(t, output, "https://a.example.com")
		assert.Contains(t, output, "5 pages  7 faqs")
		assert.Less(t, bytes.Index(stdout.Bytes(), []byte("run-2")), bytes.Index(stdout.Bytes(), []byte("run-1")))
	})

	t.Run("shows helpful message when no runs exist", func(t *testing.T) {
		t.Parallel()

		runs := &mock.RunService{
			FindRunsFn: func(_ context.Context, _ faqmine.RunFilter) ([]*faqmine.Run, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Runs: runs}

		require.NoError(t, (&main.RunsCmd{}).Run(deps))
		assert.Contains(t, stdout.String(), "No runs")
	})

	t.Run("returns error when FindRuns fails", func(t *testing.T) {
		t.Parallel()

		dbErr := errors.New("database connection failed")
		runs := &mock.RunService{
			FindRunsFn: func(_ context.Context, _ faqmine.RunFilter) ([]*faqmine.Run, error) {
				return nil, dbErr
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Runs: runs}

		err := (&main.RunsCmd{}).Run(deps)

		assert.Equal(t, dbErr, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
