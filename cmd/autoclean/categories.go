package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"autoclean/internal/category"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Inspect the category table",
		Long:  `Show the built-in categories and the extensions each one claims.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		Long:  `Display every category in declaration order with a sample of its extensions.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			tbl := category.Default()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				headerStyle.Render("Category"),
				headerStyle.Render("Extensions"),
				headerStyle.Render("Sample"))
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				strings.Repeat("-", 20),
				strings.Repeat("-", 10),
				strings.Repeat("-", 40))

			for _, cat := range tbl.Categories() {
				sample := cat.Extensions
				if len(sample) > 8 {
					sample = sample[:8]
				}
				fmt.Fprintf(w, "%s\t%d\t%s\n", cat.Label, len(cat.Extensions), strings.Join(sample, ", "))
			}

			return nil
		},
	}
}
