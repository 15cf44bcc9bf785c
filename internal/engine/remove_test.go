package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveTreeDirectory(t *testing.T) {
	eng := newTestEngine(t)
	root := t.TempDir()
	src := buildTree(t, root)

	outcomes, err := eng.RemoveTree(context.Background(), src)
	require.NoError(t, err)

	// 3 files + 3 directories.
	assert.Len(t, outcomes, 6)
	for _, o := range outcomes {
		assert.NoError(t, o.Err, "outcome for %s", o.Path)
	}
	_, statErr := os.Lstat(src)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRemoveTreeSingleFile(t *testing.T) {
	eng := newTestEngine(t)
	root := t.TempDir()
	p := filepath.Join(root, "f.txt")
	writeFile(t, p, "x")

	outcomes, err := eng.RemoveTree(context.Background(), p)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.True(t, outcomes[0].Success())
}

func TestRemoveTreeUnlinksSymlinkWithoutFollowing(t *testing.T) {
	eng := newTestEngine(t)
	root := t.TempDir()
	target := filepath.Join(root, "target.txt")
	writeFile(t, target, "keep me")
	link := filepath.Join(root, "link")
	require.NoError(t, os.Symlink(target, link))

	outcomes, err := eng.RemoveTree(context.Background(), link)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.True(t, outcomes[0].Success())

	// The link target survives.
	assert.Equal(t, "keep me", readFile(t, target))
}

func TestRemoveTreeMissingPath(t *testing.T) {
	eng := newTestEngine(t)

	outcomes, err := eng.RemoveTree(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.ErrorIs(t, outcomes[0].Err, ErrNotFound)
}

func TestRemoveManyPartialFailure(t *testing.T) {
	eng := newTestEngine(t)
	root := t.TempDir()
	p := filepath.Join(root, "f.txt")
	writeFile(t, p, "x")
	missing := filepath.Join(root, "missing")

	result := eng.RemoveMany(context.Background(), []string{p, missing})

	assert.Equal(t, 1, result.Successes)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, missing, result.Failures[0].Path)
}

func TestRemoveTreeInvalidPath(t *testing.T) {
	eng := newTestEngine(t)

	_, err := eng.RemoveTree(context.Background(), "relative/path")
	assert.ErrorIs(t, err, ErrInvalidPath)
}
