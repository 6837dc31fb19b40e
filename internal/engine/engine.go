// Package engine orchestrates scanning, classification, and organization.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/schollz/progressbar/v3"

	"autoclean/internal/category"
	"autoclean/internal/classify"
	"autoclean/internal/cli"
	"autoclean/internal/model"
	"autoclean/internal/mover"
	"autoclean/internal/plan"
	"autoclean/internal/report"
	"autoclean/internal/scan"
	"autoclean/internal/storage"
	"autoclean/internal/sweep"
)

// ErrAlreadyRunning is returned when another organize run holds the lock.
var ErrAlreadyRunning = errors.New("another autoclean run is already in progress")

// Options holds the run configuration.
type Options struct {
	DryRun       bool
	AutoOrganize bool
	CreateBackup bool
	DeleteEmpty  bool
}

// Config holds the engine's dependencies. Zero fields get working defaults.
type Config struct {
	Table        *category.Table
	Resolver     classify.Resolver
	Prompter     Prompter
	History      HistoryStore
	Out          io.Writer
	Clock        func() time.Time
	ReportDir    string
	LockPath     string
	Options      Options
	ShowProgress bool
}

// Organizer runs the scan → classify → resolve → plan → move → report
// pipeline. Execution is single-threaded and synchronous: the dominant cost
// is filesystem latency, and ordering guarantees are simplest without
// concurrent mutation of shared buckets.
type Organizer struct {
	table        *category.Table
	resolver     classify.Resolver
	prompter     Prompter
	history      HistoryStore
	out          io.Writer
	clock        func() time.Time
	reportDir    string
	lockPath     string
	opts         Options
	showProgress bool
}

// New creates an organizer from the given configuration.
func New(cfg Config) *Organizer {
	if cfg.Table == nil {
		cfg.Table = category.Default()
	}
	if cfg.Resolver == nil {
		cfg.Resolver = classify.FirstMatch{}
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	return &Organizer{
		table:        cfg.Table,
		resolver:     cfg.Resolver,
		prompter:     cfg.Prompter,
		history:      cfg.History,
		out:          cfg.Out,
		clock:        cfg.Clock,
		reportDir:    cfg.ReportDir,
		lockPath:     cfg.LockPath,
		opts:         cfg.Options,
		showProgress: cfg.ShowProgress,
	}
}

type directoryPlan struct {
	dir   string
	plans []plan.CategoryPlan
}

type ambiguousFile struct {
	file       *model.FileRecord
	candidates []string
}

// Run organizes the given folders and returns the persisted report.
//
// Directory-level failures (unreadable folder) are logged and skipped so one
// bad folder never aborts a multi-folder run. The only errors returned are
// lock contention and context cancellation.
func (o *Organizer) Run(ctx context.Context, folders []string) (report.Report, error) {
	unlock, err := o.acquireLock()
	if err != nil {
		return report.Report{}, err
	}
	defer unlock()

	if o.opts.CreateBackup && !o.opts.DryRun {
		slog.Debug("Backup archives are not implemented, skipping backup step")
	}

	dirPlans, err := o.classifyFolders(ctx, folders)
	if err != nil {
		return report.Report{}, err
	}
	if len(dirPlans) == 0 {
		fmt.Fprintln(o.out, cli.FormatWarning("No files to organize"))
		return report.Report{}, nil
	}

	fmt.Fprintln(o.out, cli.FormatTitle("Organization Preview"))
	for _, dp := range dirPlans {
		fmt.Fprintln(o.out, cli.RenderPreview(dp.dir, dp.plans))
	}

	if o.opts.DryRun {
		fmt.Fprintln(o.out, cli.FormatWarning("DRY RUN MODE - No files will be moved"))
	} else if !o.opts.AutoOrganize && o.prompter != nil {
		proceed, err := o.prompter.Confirm(ctx, "Proceed with organization?")
		if err != nil {
			return report.Report{}, err
		}
		if !proceed {
			fmt.Fprintln(o.out, cli.FormatWarning("Operation cancelled"))
			return report.Report{}, nil
		}
	}

	results, moveErr := o.executePlans(ctx, dirPlans)

	summary := report.Summarize(results, o.table)
	fmt.Fprintln(o.out, cli.FormatTitle("Organization Report"))
	fmt.Fprintln(o.out, report.RenderSummary(summary))
	if histogram := report.RenderHistogram(summary); histogram != "" {
		fmt.Fprintln(o.out, histogram)
	}

	rep := report.New(folders, report.Settings{
		DryRun:       o.opts.DryRun,
		AutoOrganize: o.opts.AutoOrganize,
		CreateBackup: o.opts.CreateBackup,
		DeleteEmpty:  o.opts.DeleteEmpty,
	}, results)

	if o.reportDir != "" {
		path, err := rep.Save(o.reportDir)
		if err != nil {
			slog.Error("Failed to save report", "error", err)
		} else {
			fmt.Fprintln(o.out, cli.FormatSuccess("Report saved to: "+path))
		}
	}

	o.saveHistory(ctx, rep, summary)

	if moveErr != nil {
		// Interrupted mid-run: everything already moved stays moved.
		return rep, moveErr
	}

	if o.opts.DeleteEmpty {
		removed := 0
		for _, dir := range folders {
			removed += sweep.EmptyDirs(dir, o.opts.DryRun)
		}
		if removed > 0 {
			fmt.Fprintln(o.out, cli.FormatSuccess(fmt.Sprintf("Removed %d empty folders", removed)))
		}
	}

	return rep, nil
}

// classifyFolders scans and classifies every folder, resolving ambiguous
// files through the configured policy. Folders that fail to scan are logged
// and skipped.
func (o *Organizer) classifyFolders(ctx context.Context, folders []string) ([]directoryPlan, error) {
	var dirPlans []directoryPlan

	for _, dir := range folders {
		files, err := scan.ListFiles(dir)
		if err != nil {
			slog.Error("Could not scan directory", "directory", dir, "error", err)
			continue
		}
		slog.Info("Scanned directory", "directory", dir, "files", len(files))

		result := classify.NewResult(o.table)
		var ambiguous []ambiguousFile

		for _, f := range files {
			candidates := classify.Classify(f, o.table)
			switch len(candidates) {
			case 0:
				result.AddFallback(f)
			case 1:
				result.Add(candidates[0], f)
			default:
				ambiguous = append(ambiguous, ambiguousFile{file: f, candidates: candidates})
			}
		}

		for _, a := range ambiguous {
			choice, err := o.resolver.Resolve(ctx, a.file, a.candidates)
			if err != nil {
				return nil, err
			}
			if choice == classify.Skip {
				slog.Info("Skipped ambiguous file", "file", a.file.Name)
				continue
			}
			result.Add(choice, a.file)
		}

		plans := plan.Build(result)
		if len(plans) == 0 {
			continue
		}
		dirPlans = append(dirPlans, directoryPlan{dir: dir, plans: plans})
	}

	return dirPlans, nil
}

// executePlans moves every planned file. Cancellation stops between files;
// partial results are still returned for reporting.
func (o *Organizer) executePlans(ctx context.Context, dirPlans []directoryPlan) ([]model.OrganizationResult, error) {
	results := make([]model.OrganizationResult, 0, len(dirPlans))

	for _, dp := range dirPlans {
		m := mover.NewWithClock(o.opts.DryRun, o.clock)
		if o.showProgress {
			bar := progressbar.NewOptions(plan.TotalFiles(dp.plans),
				progressbar.OptionSetDescription(fmt.Sprintf("Organizing %s", filepath.Base(dp.dir))),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionClearOnFinish(),
			)
			m.Progress = func() { _ = bar.Add(1) }
		}

		res, err := m.Execute(ctx, dp.dir, dp.plans)
		results = append(results, res)
		if err != nil {
			return results, err
		}
	}

	return results, nil
}

func (o *Organizer) saveHistory(ctx context.Context, rep report.Report, summary report.Summary) {
	if o.history == nil {
		return
	}

	var elapsed time.Duration
	for _, r := range rep.Results {
		elapsed += r.Elapsed
	}

	err := o.history.SaveRun(ctx, storage.Run{
		ID:             rep.RunID,
		CreatedAt:      rep.Timestamp,
		Folders:        rep.Folders,
		DryRun:         rep.Settings.DryRun,
		AutoOrganize:   rep.Settings.AutoOrganize,
		DeleteEmpty:    rep.Settings.DeleteEmpty,
		TotalFiles:     summary.TotalFiles,
		OrganizedFiles: summary.TotalOrganized,
		SkippedFiles:   summary.TotalSkipped,
		TotalSizeBytes: summary.TotalSizeBytes,
		Elapsed:        elapsed,
	})
	if err != nil {
		slog.Error("Failed to save run history", "run_id", rep.RunID, "error", err)
	}
}

// acquireLock takes the run lock so two organize runs never race over the
// same folders. An empty lock path disables locking (tests).
func (o *Organizer) acquireLock() (func(), error) {
	if o.lockPath == "" {
		return func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(o.lockPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	lock := flock.New(o.lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire run lock: %w", err)
	}
	if !ok {
		return nil, ErrAlreadyRunning
	}

	return func() {
		if err := lock.Unlock(); err != nil {
			slog.Warn("Failed to release run lock", "path", o.lockPath, "error", err)
		}
	}, nil
}
