// Package sweep removes directories left empty after organization.
package sweep

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// EmptyDirs removes every empty directory beneath root, deepest first so
// that directories containing only empty directories are swept too. The
// root itself is never removed. Dry runs count candidates without removing.
// Unreadable directories are skipped.
func EmptyDirs(root string, dryRun bool) int {
	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			slog.Warn("Could not walk directory", "path", path, "error", err)
			return nil
		}
		if d.IsDir() && path != root {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		slog.Error("Empty-directory sweep failed", "root", root, "error", err)
		return 0
	}

	// Deepest first.
	sort.Slice(dirs, func(i, j int) bool {
		return strings.Count(dirs[i], string(os.PathSeparator)) > strings.Count(dirs[j], string(os.PathSeparator))
	})

	removed := 0
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil || len(entries) > 0 {
			continue
		}
		if !dryRun {
			if err := os.Remove(dir); err != nil {
				slog.Warn("Could not remove empty directory", "path", dir, "error", err)
				continue
			}
		}
		removed++
		slog.Info("Removed empty directory", "path", dir, "dry_run", dryRun)
	}

	return removed
}
