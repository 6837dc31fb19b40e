package sweep

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyDirsRemovesNested(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "b", "c"), 0750))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "keep"), 0750))
	require.NoError(t, os.WriteFile(filepath.Join(root, "keep", "file.txt"), []byte("x"), 0600))

	removed := EmptyDirs(root, false)

	// a/b/c, a/b and a all become empty bottom-up.
	assert.Equal(t, 3, removed)
	assert.NoDirExists(t, filepath.Join(root, "a"))
	assert.DirExists(t, filepath.Join(root, "keep"))
	assert.DirExists(t, root, "the root itself is never removed")
}

func TestEmptyDirsDryRun(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty"), 0750))

	removed := EmptyDirs(root, true)

	assert.Equal(t, 1, removed)
	assert.DirExists(t, filepath.Join(root, "empty"), "dry run must not remove anything")
}

func TestEmptyDirsNothingToDo(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "file.txt"), []byte("x"), 0600))

	assert.Equal(t, 0, EmptyDirs(root, false))
}
