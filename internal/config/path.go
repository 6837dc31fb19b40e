// Package config provides configuration and path utilities for the application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands ~ and environment variables in a file path.
// It handles both ~ for home directory and $VAR style environment variables.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}

// DataDir returns the application data directory (~/.autoclean), creating
// nothing. Reports, logs, run history and the run lock live beneath it.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".autoclean"), nil
}

// commonFolderNames lists the supported shorthands in display order.
var commonFolderNames = []string{"downloads", "desktop", "documents", "pictures", "videos", "music"}

var folderDirNames = map[string]string{
	"downloads": "Downloads",
	"desktop":   "Desktop",
	"documents": "Documents",
	"pictures":  "Pictures",
	"videos":    "Videos",
	"music":     "Music",
}

// CommonFolder is a well-known home subfolder users typically organize.
type CommonFolder struct {
	Name string
	Path string
}

// CommonFolders returns the common folders that exist on this machine, in a
// fixed display order.
func CommonFolders() []CommonFolder {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	var folders []CommonFolder
	for _, name := range commonFolderNames {
		path := filepath.Join(home, folderDirNames[name])
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			folders = append(folders, CommonFolder{Name: name, Path: path})
		}
	}
	return folders
}

// ResolveFolders maps CLI folder arguments to absolute paths. A lower-cased
// argument matching a common-folder shorthand resolves against the home
// directory; anything else is taken as a path. Every resolved path must
// exist — a missing one is a fatal validation error, reported before any
// scanning happens.
func ResolveFolders(args []string) ([]string, error) {
	common := make(map[string]string)
	for _, f := range CommonFolders() {
		common[f.Name] = f.Path
	}

	resolved := make([]string, 0, len(args))
	var missing []string
	for _, arg := range args {
		if path, ok := common[strings.ToLower(arg)]; ok {
			resolved = append(resolved, path)
			continue
		}
		path, err := filepath.Abs(ExpandPath(arg))
		if err != nil {
			return nil, fmt.Errorf("failed to resolve path %q: %w", arg, err)
		}
		if _, err := os.Stat(path); err != nil {
			missing = append(missing, arg)
			continue
		}
		resolved = append(resolved, path)
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("the following paths don't exist: %s", strings.Join(missing, ", "))
	}
	return resolved, nil
}
