package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/faqmine"
	main "github.com/fwojciec/faqmine/cmd/faqmine"
	"github.com/fwojciec/faqmine/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("deletes the run", func(t *testing.T) {
		t.Parallel()

		var deleted string
		runs := &mock.RunService{
			DeleteRunFn: func(_ context.Context, id string) error {
				deleted = id
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Runs: runs}

		err := (&main.DeleteCmd{ID: "run-1", Force: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "run-1", deleted)
		assert.Contains(t, stdout.String(), "Deleted run run-1")
	})

	t.Run("requires force", func(t *testing.T) {
		t.Parallel()

		runs := &mock.RunService{
			DeleteRunFn: func(_ context.Context, _ string) error {
				t.Error("delete should not be called")
				return nil
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Runs: runs}

		err := (&main.DeleteCmd{ID: "run-1"}).Run(deps)

		assert.Equal(t, faqmine.EINVALID, faqmine.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("reports a missing run", func(t *testing.T) {
		t.Parallel()

		runs := &mock.RunService{
			DeleteRunFn: func(_ context.Context, _ string) error {
				return faqmine.Errorf(faqmine.ENOTFOUND, "run not found")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Runs: runs}

		err := (&main.DeleteCmd{ID: "missing", Force: true}).Run(deps)

		assert.Equal(t, faqmine.ENOTFOUND, faqmine.ErrorCode(err))
		assert.Contains(t, stderr.String(), `run "missing" not found`)
	})
}
