// Package common holds cross-cutting helpers shared by every component.
package common

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ParseLevel maps a CLI log-level string to a slog level. Matching is
// case-insensitive; both WARN and WARNING are accepted.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s", level)
	}
}

// SetupLogger configures the process-wide logger once per run. Records go to
// stderr and, when logDir is non-empty, to a per-run log file inside it.
// The log file path is returned so the caller can surface it.
func SetupLogger(level slog.Level, format, logDir string) (string, error) {
	var out io.Writer = os.Stderr
	logPath := ""

	if logDir != "" {
		if err := os.MkdirAll(logDir, 0750); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
		logPath = filepath.Join(logDir, fmt.Sprintf("autoclean_%s.log", time.Now().Format("20060102_150405")))
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return "", fmt.Errorf("failed to open log file: %w", err)
		}
		out = io.MultiWriter(os.Stderr, f)
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(out, opts)
	case "console", "":
		handler = slog.NewTextHandler(out, opts)
	default:
		return "", fmt.Errorf("invalid log format: %s", format)
	}

	slog.SetDefault(slog.New(handler))
	return logPath, nil
}
