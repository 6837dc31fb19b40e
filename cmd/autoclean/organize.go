package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"autoclean/internal/category"
	"autoclean/internal/classify"
	"autoclean/internal/cli"
	"autoclean/internal/config"
	"autoclean/internal/engine"
	"autoclean/internal/storage"
	"autoclean/internal/tui"
)

var organizeFlags struct {
	dryRun       bool
	autoOrganize bool
	noBackup     bool
	deleteEmpty  bool
}

func runOrganize(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	folders, err := selectFolders(args)
	if err != nil {
		return err
	}
	if len(folders) == 0 {
		fmt.Println(cli.FormatWarning("No folders selected. Exiting."))
		return nil
	}

	dataDir, err := config.DataDir()
	if err != nil {
		return err
	}

	// History is best-effort: an unopenable database downgrades to a run
	// without history, never a failed run.
	var history engine.HistoryStore
	store, err := storage.Open(filepath.Join(dataDir, "history.db"))
	if err != nil {
		slog.Warn("Run history unavailable", "error", err)
	} else {
		defer store.Close()
		history = store
	}

	prompter := cli.NewPrompter(nil, nil)
	resolver, err := buildResolver(prompter)
	if err != nil {
		return err
	}

	organizer := engine.New(engine.Config{
		Resolver:     resolver,
		Prompter:     prompter,
		History:      history,
		ReportDir:    filepath.Join(dataDir, "reports"),
		LockPath:     filepath.Join(dataDir, "autoclean.lock"),
		ShowProgress: true,
		Options: engine.Options{
			DryRun:       organizeFlags.dryRun,
			AutoOrganize: organizeFlags.autoOrganize,
			CreateBackup: !organizeFlags.noBackup,
			DeleteEmpty:  organizeFlags.deleteEmpty,
		},
	})

	if _, err := organizer.Run(ctx, folders); err != nil {
		return fmt.Errorf("organization failed: %w", err)
	}
	return nil
}

// selectFolders resolves CLI arguments, or shows the interactive picker when
// none were given.
func selectFolders(args []string) ([]string, error) {
	if len(args) > 0 {
		return config.ResolveFolders(args)
	}

	common := config.CommonFolders()
	choices := make([]tui.Folder, 0, len(common))
	for _, f := range common {
		choices = append(choices, tui.Folder{
			Name:      f.Name,
			Path:      f.Path,
			FileCount: countFiles(f.Path),
		})
	}
	if len(choices) == 0 {
		return nil, nil
	}

	return tui.PickFolders(choices)
}

func countFiles(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}
	n := 0
	for _, e := range entries {
		if !e.IsDir() {
			n++
		}
	}
	return n
}

// buildResolver picks the ambiguity policy: interactive unless
// --auto-organize, in which case first-match or the opt-in random policy.
// AUTOCLEAN_RESOLVER_SEED seeds the random policy for reproducible runs.
func buildResolver(prompter *cli.Prompter) (classify.Resolver, error) {
	if !organizeFlags.autoOrganize {
		return classify.NewInteractive(prompter, category.FallbackLabel), nil
	}

	switch name := viper.GetString("organize.resolver"); name {
	case "first-match", "":
		return classify.FirstMatch{}, nil
	case "random":
		seed := viper.GetInt64("resolver_seed")
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		return classify.NewRandom(seed), nil
	default:
		return nil, fmt.Errorf("invalid resolver: %s", name)
	}
}
