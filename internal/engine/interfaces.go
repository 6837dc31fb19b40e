package engine

import (
	"context"

	"autoclean/internal/model"
	"autoclean/internal/storage"
)

// Prompter is the interactive surface the engine blocks on: category
// selection for ambiguous files and the pre-move confirmation. A scripted
// implementation substitutes for a terminal in tests.
type Prompter interface {
	SelectCategory(ctx context.Context, file *model.FileRecord, candidates []string, fallback string) (string, error)
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// HistoryStore persists completed runs. Optional: a nil store disables
// history without changing engine behavior.
type HistoryStore interface {
	SaveRun(ctx context.Context, run storage.Run) error
}
