package report

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"autoclean/internal/category"
)

// RenderSummary renders the run summary as a two-column metric table.
func RenderSummary(s Summary) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Metric", "Value"})
	tw.AppendRows([]table.Row{
		{"Total Files Processed", s.TotalFiles},
		{"Files Organized", s.TotalOrganized},
		{"Files Skipped", s.TotalSkipped},
		{"Total Size Organized", humanize.IBytes(uint64(s.TotalSizeBytes))},
		{"Success Rate", fmt.Sprintf("%.1f%%", s.SuccessRate)},
		{"Average Processing Time", s.AverageElapsed.Round(1e6).String()},
	})
	return tw.Render()
}

// RenderHistogram renders the per-category breakdown sorted by count.
func RenderHistogram(s Summary) string {
	if len(s.Histogram) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Category", "Files", "Percentage"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})

	for _, entry := range s.Histogram {
		pct := 0.0
		if s.TotalOrganized > 0 {
			pct = float64(entry.Count) / float64(s.TotalOrganized) * 100
		}
		tw.AppendRow(table.Row{
			category.DisplayName(entry.Label),
			entry.Count,
			fmt.Sprintf("%.1f%%", pct),
		})
	}
	return tw.Render()
}
