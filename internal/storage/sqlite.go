// Package storage persists run history in SQLite.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Run is one persisted history row: the configuration and totals of a
// completed organize invocation.
type Run struct {
	CreatedAt      time.Time
	ID             string
	Folders        []string
	TotalFiles     int
	OrganizedFiles int
	SkippedFiles   int
	TotalSizeBytes int64
	Elapsed        time.Duration
	DryRun         bool
	AutoOrganize   bool
	DeleteEmpty    bool
}

// Store is a SQLite-backed run-history store.
type Store struct {
	db     *sql.DB
	dbPath string
}

// Open opens (creating if necessary) the history database at dbPath and
// applies the schema.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("dbPath must not be empty")
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Store{db: db, dbPath: dbPath}
	if err := s.migrate(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate(ctx context.Context) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at TIMESTAMP NOT NULL,
		folders TEXT NOT NULL,
		dry_run BOOLEAN NOT NULL,
		auto_organize BOOLEAN NOT NULL,
		delete_empty BOOLEAN NOT NULL,
		total_files INTEGER NOT NULL,
		organized_files INTEGER NOT NULL,
		skipped_files INTEGER NOT NULL,
		total_size_bytes INTEGER NOT NULL,
		elapsed_ms INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at DESC);`

	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// SaveRun inserts one run into the history.
func (s *Store) SaveRun(ctx context.Context, run Run) error {
	if run.ID == "" {
		return fmt.Errorf("run ID must not be empty")
	}

	folders, err := json.Marshal(run.Folders)
	if err != nil {
		return fmt.Errorf("failed to encode folders: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (id, created_at, folders, dry_run, auto_organize, delete_empty,
			total_files, organized_files, skipped_files, total_size_bytes, elapsed_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.CreatedAt, string(folders), run.DryRun, run.AutoOrganize, run.DeleteEmpty,
		run.TotalFiles, run.OrganizedFiles, run.SkippedFiles, run.TotalSizeBytes,
		run.Elapsed.Milliseconds())
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first. A limit of 0 means
// no limit.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	query := `
		SELECT id, created_at, folders, dry_run, auto_organize, delete_empty,
			total_files, organized_files, skipped_files, total_size_bytes, elapsed_ms
		FROM runs ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var folders string
		var elapsedMs int64
		if err := rows.Scan(&run.ID, &run.CreatedAt, &folders, &run.DryRun,
			&run.AutoOrganize, &run.DeleteEmpty, &run.TotalFiles, &run.OrganizedFiles,
			&run.SkippedFiles, &run.TotalSizeBytes, &elapsedMs); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if err := json.Unmarshal([]byte(folders), &run.Folders); err != nil {
			return nil, fmt.Errorf("failed to decode folders for run %s: %w", run.ID, err)
		}
		run.Elapsed = time.Duration(elapsedMs) * time.Millisecond
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
