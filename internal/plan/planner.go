// Package plan turns classification results into ordered move plans.
package plan

import (
	"autoclean/internal/classify"
	"autoclean/internal/model"
)

// CategoryPlan is one category's slice of a directory plan: the files bound
// for that category and their aggregate size.
type CategoryPlan struct {
	Label     string
	Files     []*model.FileRecord
	TotalSize int64
}

// Build flattens a classification result into category plans in table
// declaration order. Categories with no files are omitted. Read-only: the
// result and its buckets are not mutated.
func Build(result *classify.Result) []CategoryPlan {
	var plans []CategoryPlan
	for _, label := range result.Table().Labels() {
		files := result.Files(label)
		if len(files) == 0 {
			continue
		}
		var size int64
		for _, f := range files {
			size += f.SizeBytes
		}
		plans = append(plans, CategoryPlan{Label: label, Files: files, TotalSize: size})
	}
	return plans
}

// TotalFiles counts every file across the given plans.
func TotalFiles(plans []CategoryPlan) int {
	n := 0
	for _, p := range plans {
		n += len(p.Files)
	}
	return n
}
