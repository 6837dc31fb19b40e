// Package mover executes organization plans against the filesystem.
package mover

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"autoclean/internal/category"
	"autoclean/internal/model"
	"autoclean/internal/plan"
)

// collisionFormat is the timestamp suffix appended to a destination name
// that already exists: {stem}_{YYYYMMDD_HHMMSS}{ext}.
const collisionFormat = "20060102_150405"

// Mover moves files into per-category subfolders of their source directory.
//
// Failures are per-file: a move that fails is logged, counted as skipped,
// and the run continues. In dry-run mode every step runs except filesystem
// mutation, and the returned result has the same shape as a live run.
type Mover struct {
	clock func() time.Time
	// Progress, when set, is called once per file attempt.
	Progress func()
	dryRun   bool
}

// New creates a mover using the wall clock for collision timestamps.
func New(dryRun bool) *Mover {
	return NewWithClock(dryRun, time.Now)
}

// NewWithClock creates a mover with an injected clock, for deterministic
// collision suffixes in tests.
func NewWithClock(dryRun bool, clock func() time.Time) *Mover {
	return &Mover{clock: clock, dryRun: dryRun}
}

// Execute runs the plans for one source directory. Categories are processed
// in plan order and files in bucket order; that ordering is the one
// observable guarantee for collision-timestamp determinism.
//
// The only returned error is context cancellation; everything else is
// absorbed into the result's skipped count. A move is a non-interruptible
// unit: cancellation takes effect between files.
func (m *Mover) Execute(ctx context.Context, dir string, plans []plan.CategoryPlan) (model.OrganizationResult, error) {
	start := time.Now()
	result := model.OrganizationResult{
		Directory:       dir,
		FilesByCategory: make(map[string][]*model.FileRecord),
		TotalFiles:      plan.TotalFiles(plans),
	}

	for pi, p := range plans {
		destDir := filepath.Join(dir, category.DisplayName(p.Label))

		if !m.dryRun {
			created, err := m.ensureDir(destDir)
			if err != nil {
				slog.Error("Failed to create category directory",
					"directory", destDir, "category", p.Label, "error", err)
				result.SkippedFiles += len(p.Files)
				m.advance(len(p.Files))
				continue
			}
			if created {
				result.CategoriesCreated = append(result.CategoriesCreated, p.Label)
			}
		}

		for fi, f := range p.Files {
			select {
			case <-ctx.Done():
				remaining := len(p.Files) - fi + plan.TotalFiles(plans[pi+1:])
				result.SkippedFiles += remaining
				result.TotalSizeBytes = result.OrganizedSize()
				result.Elapsed = time.Since(start)
				slog.Warn("Organization interrupted", "directory", dir, "files_remaining", remaining)
				return result, ctx.Err()
			default:
			}

			if err := m.moveFile(f, destDir); err != nil {
				slog.Error("Failed to move file", "file", f.Name, "error", err)
				result.SkippedFiles++
			} else {
				result.FilesByCategory[p.Label] = append(result.FilesByCategory[p.Label], f)
				result.OrganizedFiles++
			}
			m.advance(1)
		}
	}

	result.TotalSizeBytes = result.OrganizedSize()
	result.Elapsed = time.Since(start)
	return result, nil
}

// ensureDir creates dir if absent, reporting whether it was newly created.
// A pre-existing directory is not an error.
func (m *Mover) ensureDir(dir string) (bool, error) {
	if _, err := os.Stat(dir); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, err
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return false, err
	}
	return true, nil
}

// moveFile moves one record into destDir, renaming on collision. On success
// the record's FullPath reflects its new location. Dry runs perform the
// collision check for preview accuracy but mutate nothing.
func (m *Mover) moveFile(f *model.FileRecord, destDir string) error {
	dest := filepath.Join(destDir, f.Name)
	if _, err := os.Stat(dest); err == nil {
		dest = filepath.Join(destDir, collisionName(f.Name, m.clock()))
	}

	if m.dryRun {
		return nil
	}

	if err := move(f.FullPath, dest); err != nil {
		return err
	}
	f.FullPath = dest
	return nil
}

func (m *Mover) advance(n int) {
	if m.Progress == nil {
		return
	}
	for i := 0; i < n; i++ {
		m.Progress()
	}
}

// collisionName appends a timestamp suffix to a colliding file name.
func collisionName(name string, now time.Time) string {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	return fmt.Sprintf("%s_%s%s", stem, now.Format(collisionFormat), ext)
}

// move renames src to dest, falling back to copy+delete across volumes.
func move(src, dest string) error {
	err := os.Rename(src, dest)
	if err == nil {
		return nil
	}

	var linkErr *os.LinkError
	if errors.As(err, &linkErr) && errors.Is(linkErr.Err, syscall.EXDEV) {
		return copyAndRemove(src, dest)
	}
	return err
}

func copyAndRemove(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat source: %w", err)
	}

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dest)
		return fmt.Errorf("failed to copy across volumes: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(dest)
		return fmt.Errorf("failed to flush destination: %w", err)
	}

	return os.Remove(src)
}
