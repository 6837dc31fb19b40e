// Package scan discovers the files to organize in a source directory.
package scan

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"autoclean/internal/model"
)

// ListFiles returns a record for every regular file directly inside dir, in
// directory order. Subdirectories are not descended into; a file that fails
// to stat mid-scan is logged and skipped, never fatal.
func ListFiles(dir string) ([]*model.FileRecord, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	records := make([]*model.FileRecord, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		info, err := entry.Info()
		if err != nil {
			slog.Warn("Could not stat file, skipping", "path", path, "error", err)
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}
		rec := model.NewFileRecord(path, info)
		records = append(records, &rec)
	}

	return records, nil
}
