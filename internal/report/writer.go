package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"autoclean/internal/model"
)

// Settings records the run configuration alongside the results.
type Settings struct {
	DryRun       bool `json:"dry_run"`
	AutoOrganize bool `json:"auto_organize"`
	CreateBackup bool `json:"create_backup"`
	DeleteEmpty  bool `json:"delete_empty"`
}

// Report is the persisted record of one run.
type Report struct {
	Timestamp time.Time                  `json:"timestamp"`
	RunID     string                     `json:"run_id"`
	Folders   []string                   `json:"folder_paths"`
	Results   []model.OrganizationResult `json:"results"`
	Settings  Settings                   `json:"settings"`
}

// New assembles a report for the given run, stamping it with a fresh run id.
func New(folders []string, settings Settings, results []model.OrganizationResult) Report {
	return Report{
		RunID:     uuid.NewString(),
		Timestamp: time.Now(),
		Folders:   folders,
		Settings:  settings,
		Results:   results,
	}
}

// Save writes the report as indented JSON into dir, one file per run named
// with the run's timestamp. It returns the written path.
func (r Report) Save(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	name := fmt.Sprintf("organization_report_%s.json", r.Timestamp.Format("20060102_150405"))
	path := filepath.Join(dir, name)

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	return path, nil
}
