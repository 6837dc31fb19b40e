package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"autoclean/internal/plan"
)

// previewSampleSize is how many example files each category shows.
const previewSampleSize = 3

// RenderPreview renders the planned organization of one directory as an
// indented tree: each category with its file count and aggregate size, plus
// a few example files.
func RenderPreview(dir string, plans []plan.CategoryPlan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", FolderIcon, TitleStyle.Render(filepath.Base(dir)))

	totalFiles := 0
	var totalSize int64
	for _, p := range plans {
		fmt.Fprintf(&b, "├── %s (%s, %s)\n",
			p.Label,
			SuccessStyle.Render(fmt.Sprintf("%d files", len(p.Files))),
			SubtleStyle.Render(humanize.IBytes(uint64(p.TotalSize))))

		for i, f := range p.Files {
			if i == previewSampleSize {
				fmt.Fprintf(&b, "│   └── %s\n",
					SubtleStyle.Render(fmt.Sprintf("... and %d more files", len(p.Files)-previewSampleSize)))
				break
			}
			fmt.Fprintf(&b, "│   ├── %s %s (%s)\n", FileIcon, f.Name, f.SizeHuman)
		}

		totalFiles += len(p.Files)
		totalSize += p.TotalSize
	}

	fmt.Fprintf(&b, "└── Total: %d files, %s\n", totalFiles, humanize.IBytes(uint64(totalSize)))
	return b.String()
}
