package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/faqmine/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Atomic Export Files
// Exports appear at their target path only once fully written

func TestFile_CommitMovesToTarget(t *testing.T) {
	t.Parallel()

	// Given an export file in a new directory
	target := filepath.Join(t.TempDir(), "out", "faqs.csv")
	f, err := fs.CreateFile(target)
	require.NoError(t, err)

	// When I write and commit
	_, err = f.WriteString("Question,Answer\n")
	require.NoError(t, err)

	// Then the target does not exist before commit
	_, err = os.Stat(target)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, f.Commit())

	// And the target holds the data afterwards
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "Question,Answer\n", string(data))

	// And no temporary files remain
	entries, err := os.ReadDir(filepath.Dir(target))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFile_AbortLeavesExistingTarget(t *testing.T) {
	t.Parallel()

	// Given an existing export
	target := filepath.Join(t.TempDir(), "faqs.json")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0644))

	// When a new export is aborted
	f, err := fs.CreateFile(target)
	require.NoError(t, err)
	_, err = f.WriteString("partial")
	require.NoError(t, err)
	require.NoError(t, f.Abort())

	// Then the old export is untouched
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))

	entries, err := os.ReadDir(filepath.Dir(target))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFile_AbortAfterCommitIsNoop(t *testing.T) {
	t.Parallel()

	target := filepath.Join(t.TempDir(), "faqs.json")
	f, err := fs.CreateFile(target)
	require.NoError(t, err)
	require.NoError(t, f.Commit())

	assert.NoError(t, f.Abort())
	_, err = os.Stat(target)
	assert.NoError(t, err)
}
