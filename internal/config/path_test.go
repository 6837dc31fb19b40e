package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("AUTOCLEAN_TEST_DIR", "/opt/data")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"tilde slash", "~/Downloads", filepath.Join(home, "Downloads")},
		{"bare tilde", "~", home},
		{"env var", "$AUTOCLEAN_TEST_DIR/files", "/opt/data/files"},
		{"plain path", "/var/tmp", "/var/tmp"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}

func TestDataDir(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	dir, err := DataDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".autoclean"), dir)
}

func TestResolveFoldersExistingPath(t *testing.T) {
	dir := t.TempDir()

	resolved, err := ResolveFolders([]string{dir})
	require.NoError(t, err)
	assert.Equal(t, []string{dir}, resolved)
}

func TestResolveFoldersMissingPath(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	_, err := ResolveFolders([]string{missing})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "don't exist")
	assert.Contains(t, err.Error(), missing)
}

func TestResolveFoldersShorthand(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	downloads := filepath.Join(home, "Downloads")
	if _, err := os.Stat(downloads); err != nil {
		t.Skipf("no %s on this machine", downloads)
	}

	resolved, err := ResolveFolders([]string{"Downloads"})
	require.NoError(t, err)
	assert.Equal(t, []string{downloads}, resolved, "shorthand matching is case-insensitive")
}

func TestResolveFoldersEmptyArgs(t *testing.T) {
	resolved, err := ResolveFolders(nil)
	require.NoError(t, err)
	assert.Empty(t, resolved)
}
