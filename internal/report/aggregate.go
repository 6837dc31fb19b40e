// Package report aggregates, renders, and persists organization results.
package report

import (
	"sort"
	"time"

	"autoclean/internal/category"
	"autoclean/internal/model"
)

// CategoryCount is one histogram entry.
type CategoryCount struct {
	Label string
	Count int
}

// Summary is the pure reduction of a run's per-directory results.
type Summary struct {
	Histogram      []CategoryCount
	TotalFiles     int
	TotalOrganized int
	TotalSkipped   int
	TotalSizeBytes int64
	SuccessRate    float64
	AverageElapsed time.Duration
}

// Summarize reduces results into run-wide statistics. Safe to call any
// number of times; inputs are never mutated. The histogram is sorted by
// descending count, ties broken by table declaration order.
func Summarize(results []model.OrganizationResult, table *category.Table) Summary {
	var s Summary
	counts := make(map[string]int)

	var elapsed time.Duration
	for _, r := range results {
		s.TotalFiles += r.TotalFiles
		s.TotalOrganized += r.OrganizedFiles
		s.TotalSkipped += r.SkippedFiles
		s.TotalSizeBytes += r.TotalSizeBytes
		elapsed += r.Elapsed
		for label, files := range r.FilesByCategory {
			counts[label] += len(files)
		}
	}

	if s.TotalFiles > 0 {
		s.SuccessRate = float64(s.TotalOrganized) / float64(s.TotalFiles) * 100
	}
	if len(results) > 0 {
		s.AverageElapsed = elapsed / time.Duration(len(results))
	}

	s.Histogram = make([]CategoryCount, 0, len(counts))
	for label, count := range counts {
		s.Histogram = append(s.Histogram, CategoryCount{Label: label, Count: count})
	}
	sort.SliceStable(s.Histogram, func(i, j int) bool {
		if s.Histogram[i].Count != s.Histogram[j].Count {
			return s.Histogram[i].Count > s.Histogram[j].Count
		}
		return table.Index(s.Histogram[i].Label) < table.Index(s.Histogram[j].Label)
	})

	return s
}
