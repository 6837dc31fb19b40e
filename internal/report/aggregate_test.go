package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autoclean/internal/category"
	"autoclean/internal/model"
)

func testTable(t *testing.T) *category.Table {
	t.Helper()
	tbl, err := category.NewTable([]category.Category{
		{Label: "📁 Archives", Extensions: []string{"zip"}},
		{Label: "🖼️ Images", Extensions: []string{"jpg"}},
		{Label: "📄 Documents", Extensions: []string{"pdf"}},
		{Label: "❓ Misc"},
	}, "❓ Misc")
	require.NoError(t, err)
	return tbl
}

func TestSummarize(t *testing.T) {
	tbl := testTable(t)
	results := []model.OrganizationResult{
		{
			TotalFiles:     3,
			OrganizedFiles: 2,
			SkippedFiles:   1,
			TotalSizeBytes: 300,
			Elapsed:        2 * time.Second,
			FilesByCategory: map[string][]*model.FileRecord{
				"🖼️ Images":   {{Name: "a.jpg"}, {Name: "b.jpg"}},
				"📄 Documents": {{Name: "c.pdf"}},
			},
		},
		{
			TotalFiles:     1,
			OrganizedFiles: 1,
			TotalSizeBytes: 100,
			Elapsed:        4 * time.Second,
			FilesByCategory: map[string][]*model.FileRecord{
				"📁 Archives": {{Name: "d.zip"}},
			},
		},
	}

	s := Summarize(results, tbl)

	assert.Equal(t, 4, s.TotalFiles)
	assert.Equal(t, 3, s.TotalOrganized)
	assert.Equal(t, 1, s.TotalSkipped)
	assert.EqualValues(t, 400, s.TotalSizeBytes)
	assert.InDelta(t, 75.0, s.SuccessRate, 0.001)
	assert.Equal(t, 3*time.Second, s.AverageElapsed)

	// Descending count; the 1-count tie breaks by table order:
	// Archives is declared before Documents.
	require.Len(t, s.Histogram, 3)
	assert.Equal(t, CategoryCount{Label: "🖼️ Images", Count: 2}, s.Histogram[0])
	assert.Equal(t, CategoryCount{Label: "📁 Archives", Count: 1}, s.Histogram[1])
	assert.Equal(t, CategoryCount{Label: "📄 Documents", Count: 1}, s.Histogram[2])
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, testTable(t))

	assert.Equal(t, 0, s.TotalFiles)
	assert.Zero(t, s.SuccessRate, "success rate must be 0, not a division fault")
	assert.Zero(t, s.AverageElapsed)
	assert.Empty(t, s.Histogram)
}

func TestSummarizeIsRepeatable(t *testing.T) {
	tbl := testTable(t)
	results := []model.OrganizationResult{{
		TotalFiles:     1,
		OrganizedFiles: 1,
		FilesByCategory: map[string][]*model.FileRecord{
			"🖼️ Images": {{Name: "a.jpg"}},
		},
	}}

	first := Summarize(results, tbl)
	second := Summarize(results, tbl)
	assert.Equal(t, first, second)
}
