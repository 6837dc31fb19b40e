package mover

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autoclean/internal/model"
	"autoclean/internal/plan"
)

func writeFile(t *testing.T, dir, name, content string) *model.FileRecord {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	info, err := os.Stat(path)
	require.NoError(t, err)
	rec := model.NewFileRecord(path, info)
	return &rec
}

func categoryPlan(label string, files ...*model.FileRecord) plan.CategoryPlan {
	p := plan.CategoryPlan{Label: label, Files: files}
	for _, f := range files {
		p.TotalSize += f.SizeBytes
	}
	return p
}

// snapshot returns every path under root, for byte-for-byte dry-run checks.
func snapshot(t *testing.T, root string) []string {
	t.Helper()
	var paths []string
	err := filepath.Walk(root, func(path string, _ os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		paths = append(paths, path)
		return nil
	})
	require.NoError(t, err)
	return paths
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestExecuteMovesFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.jpg", "photo")
	b := writeFile(t, dir, "b.jpg", "another")

	m := New(false)
	result, err := m.Execute(context.Background(), dir, []plan.CategoryPlan{
		categoryPlan("🖼️ Images", a, b),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.TotalFiles)
	assert.Equal(t, 2, result.OrganizedFiles)
	assert.Equal(t, 0, result.SkippedFiles)
	assert.Equal(t, []string{"🖼️ Images"}, result.CategoriesCreated)
	assert.Equal(t, result.TotalFiles, result.OrganizedFiles+result.SkippedFiles)

	assert.FileExists(t, filepath.Join(dir, "Images", "a.jpg"))
	assert.FileExists(t, filepath.Join(dir, "Images", "b.jpg"))
	assert.Equal(t, filepath.Join(dir, "Images", "a.jpg"), a.FullPath)
	assert.NoFileExists(t, filepath.Join(dir, "a.jpg"))
}

func TestExecuteCollisionRename(t *testing.T) {
	dir := t.TempDir()

	// A prior run already produced Images/a.jpg.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "Images"), 0750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Images", "a.jpg"), []byte("old"), 0600))

	a := writeFile(t, dir, "a.jpg", "new")

	clock := fixedClock(time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC))
	m := NewWithClock(false, clock)
	result, err := m.Execute(context.Background(), dir, []plan.CategoryPlan{
		categoryPlan("🖼️ Images", a),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.OrganizedFiles)
	// Both files survive: no overwrite, no data loss.
	assert.FileExists(t, filepath.Join(dir, "Images", "a.jpg"))
	assert.FileExists(t, filepath.Join(dir, "Images", "a_20240102_150405.jpg"))
	assert.Equal(t, filepath.Join(dir, "Images", "a_20240102_150405.jpg"), a.FullPath)

	// The pre-existing directory is not recorded as created.
	assert.Empty(t, result.CategoriesCreated)
}

func TestDryRunLeavesFilesystemUnchanged(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.jpg", "photo")
	b := writeFile(t, dir, "b.txt", "text")

	before := snapshot(t, dir)

	m := New(true)
	plans := []plan.CategoryPlan{
		categoryPlan("🖼️ Images", a),
		categoryPlan("📄 Documents", b),
	}

	first, err := m.Execute(context.Background(), dir, plans)
	require.NoError(t, err)

	assert.Equal(t, before, snapshot(t, dir), "dry run must not touch the filesystem")
	assert.Equal(t, 2, first.TotalFiles)
	assert.Equal(t, 2, first.OrganizedFiles)
	assert.Equal(t, 0, first.SkippedFiles)
	assert.Empty(t, first.CategoriesCreated)
	assert.Equal(t, filepath.Join(dir, "a.jpg"), a.FullPath, "dry run must not rewrite paths")

	// Idempotence: a second dry run over the same input yields the same counts.
	second, err := New(true).Execute(context.Background(), dir, plans)
	require.NoError(t, err)
	assert.Equal(t, first.TotalFiles, second.TotalFiles)
	assert.Equal(t, first.OrganizedFiles, second.OrganizedFiles)
	assert.Equal(t, first.SkippedFiles, second.SkippedFiles)
	assert.Equal(t, before, snapshot(t, dir))
}

func TestMoveFailureIsPerFile(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.jpg", "photo")
	gone := &model.FileRecord{
		Name:     "gone.jpg",
		FullPath: filepath.Join(dir, "gone.jpg"), // never written
	}

	m := New(false)
	result, err := m.Execute(context.Background(), dir, []plan.CategoryPlan{
		categoryPlan("🖼️ Images", gone, a),
	})
	require.NoError(t, err, "per-file failures must not abort the run")

	assert.Equal(t, 2, result.TotalFiles)
	assert.Equal(t, 1, result.OrganizedFiles)
	assert.Equal(t, 1, result.SkippedFiles)
	assert.FileExists(t, filepath.Join(dir, "Images", "a.jpg"))
}

func TestExecuteCancelled(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.jpg", "photo")
	b := writeFile(t, dir, "b.jpg", "photo")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := New(false)
	result, err := m.Execute(ctx, dir, []plan.CategoryPlan{
		categoryPlan("🖼️ Images", a, b),
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, result.TotalFiles, result.OrganizedFiles+result.SkippedFiles)
	assert.Equal(t, 0, result.OrganizedFiles)
}

func TestCollisionName(t *testing.T) {
	now := time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC)

	assert.Equal(t, "report_20240630_235959.pdf", collisionName("report.pdf", now))
	assert.Equal(t, "archive.tar_20240630_235959.gz", collisionName("archive.tar.gz", now))
	assert.Equal(t, "noext_20240630_235959", collisionName("noext", now))
}
