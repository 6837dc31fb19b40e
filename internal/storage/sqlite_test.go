package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testRun(created time.Time) Run {
	return Run{
		ID:             uuid.NewString(),
		CreatedAt:      created,
		Folders:        []string{"/home/u/Downloads", "/home/u/Desktop"},
		DryRun:         false,
		AutoOrganize:   true,
		DeleteEmpty:    true,
		TotalFiles:     10,
		OrganizedFiles: 9,
		SkippedFiles:   1,
		TotalSizeBytes: 4096,
		Elapsed:        1500 * time.Millisecond,
	}
}

func TestSaveAndListRuns(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	run := testRun(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, store.SaveRun(ctx, run))

	runs, err := store.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	got := runs[0]
	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, run.Folders, got.Folders)
	assert.True(t, got.AutoOrganize)
	assert.True(t, got.DeleteEmpty)
	assert.False(t, got.DryRun)
	assert.Equal(t, 10, got.TotalFiles)
	assert.Equal(t, 9, got.OrganizedFiles)
	assert.Equal(t, 1, got.SkippedFiles)
	assert.EqualValues(t, 4096, got.TotalSizeBytes)
	assert.Equal(t, 1500*time.Millisecond, got.Elapsed)
}

func TestListRunsOrderAndLimit(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	var ids []string
	for i := 0; i < 3; i++ {
		run := testRun(base.Add(time.Duration(i) * time.Hour))
		ids = append(ids, run.ID)
		require.NoError(t, store.SaveRun(ctx, run))
	}

	runs, err := store.ListRuns(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, ids[2], runs[0].ID, "newest first")
	assert.Equal(t, ids[1], runs[1].ID)
}

func TestSaveRunRequiresID(t *testing.T) {
	store := testStore(t)
	err := store.SaveRun(context.Background(), Run{})
	require.Error(t, err)
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	_, err := Open("")
	require.Error(t, err)
}
