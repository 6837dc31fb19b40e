// Package model defines the core domain models used throughout the application.
package model

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// FileRecord describes one file discovered during a scan.
//
// Category starts empty and is assigned exactly once during classification;
// FullPath is updated by the mover when a move succeeds so the record always
// points at the file's current location.
type FileRecord struct {
	Created   time.Time `json:"created"`
	Modified  time.Time `json:"modified"`
	Accessed  time.Time `json:"accessed"`
	Name      string    `json:"name"`
	FullPath  string    `json:"full_path"`
	SizeHuman string    `json:"size_human"`
	Extension string    `json:"extension"`
	Category  string    `json:"category,omitempty"`
	SizeBytes int64     `json:"size_bytes"`
}

// NewFileRecord builds a FileRecord from a path and its stat info.
// Creation and access times fall back to the modification time on platforms
// where the stdlib exposes no portable source for them.
func NewFileRecord(path string, info os.FileInfo) FileRecord {
	mod := info.ModTime()
	return FileRecord{
		Name:      info.Name(),
		FullPath:  path,
		SizeBytes: info.Size(),
		SizeHuman: humanize.IBytes(uint64(info.Size())),
		Created:   mod,
		Modified:  mod,
		Accessed:  mod,
		Extension: NormalizeExtension(filepath.Ext(info.Name())),
	}
}

// NormalizeExtension lower-cases an extension and strips the leading dot.
// A name with no extension normalizes to the empty string.
func NormalizeExtension(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
