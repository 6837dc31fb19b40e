package model

import "time"

// OrganizationResult captures the outcome of organizing a single directory.
//
// Invariant: OrganizedFiles + SkippedFiles == TotalFiles. Dry runs produce a
// result with the same shape as live runs so reporting code never branches
// on run mode.
type OrganizationResult struct {
	FilesByCategory   map[string][]*FileRecord `json:"files_by_category"`
	Directory         string                   `json:"directory"`
	CategoriesCreated []string                 `json:"categories_created"`
	TotalFiles        int                      `json:"total_files"`
	OrganizedFiles    int                      `json:"organized_files"`
	SkippedFiles      int                      `json:"skipped_files"`
	TotalSizeBytes    int64                    `json:"total_size_bytes"`
	Elapsed           time.Duration            `json:"elapsed_ns"`
}

// OrganizedSize sums the sizes of every file filed into a category bucket.
func (r OrganizationResult) OrganizedSize() int64 {
	var total int64
	for _, files := range r.FilesByCategory {
		for _, f := range files {
			total += f.SizeBytes
		}
	}
	return total
}
