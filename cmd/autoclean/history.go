package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"autoclean/internal/cli"
	"autoclean/internal/config"
	"autoclean/internal/storage"
)

func historyCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past organization runs",
		Long:  `Display the run history recorded in the local SQLite database.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dataDir, err := config.DataDir()
			if err != nil {
				return err
			}

			store, err := storage.Open(filepath.Join(dataDir, "history.db"))
			if err != nil {
				return fmt.Errorf("failed to open run history: %w", err)
			}
			defer store.Close()

			runs, err := store.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Println(cli.FormatWarning("No runs recorded yet"))
				return nil
			}

			tw := table.NewWriter()
			tw.SetStyle(table.StyleRounded)
			tw.AppendHeader(table.Row{"Run", "Date", "Folders", "Files", "Organized", "Skipped", "Size", "Mode"})
			tw.SetColumnConfigs([]table.ColumnConfig{
				{Number: 4, Align: text.AlignRight},
				{Number: 5, Align: text.AlignRight},
				{Number: 6, Align: text.AlignRight},
				{Number: 7, Align: text.AlignRight},
			})

			for _, run := range runs {
				mode := "live"
				if run.DryRun {
					mode = "dry-run"
				}
				tw.AppendRow(table.Row{
					shortID(run.ID),
					run.CreatedAt.Format("2006-01-02 15:04"),
					strings.Join(folderNames(run.Folders), ", "),
					run.TotalFiles,
					run.OrganizedFiles,
					run.SkippedFiles,
					humanize.IBytes(uint64(run.TotalSizeBytes)),
					mode,
				})
			}

			fmt.Println(tw.Render())
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of runs to show")
	return cmd
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func folderNames(paths []string) []string {
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = filepath.Base(p)
	}
	return names
}
