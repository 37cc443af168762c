package refstore

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cwbudde/vellobench/internal/timing"
)

// FSStore implements the Store interface with one JSON file per reference
// set under a base directory.
//
// Thread-safety: writes use atomic file operations (temp file + rename) and
// need no locks; the frontends access the store strictly serially anyway.
type FSStore struct {
	baseDir string
}

// DefaultDir returns the per-user reference directory.
func DefaultDir() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config directory: %w", err)
	}
	return filepath.Join(cfg, "vello-bench", "references"), nil
}

// NewFSStore creates a filesystem-based store. The baseDir is created if it
// doesn't exist.
func NewFSStore(baseDir string) (*FSStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create reference directory: %w", err)
	}
	return &FSStore{baseDir: baseDir}, nil
}

// sanitizeName maps a user-supplied set name to a safe file stem: letters,
// digits, underscore and hyphen pass through, everything else becomes an
// underscore. An empty name is rejected.
func sanitizeName(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("reference set name cannot be empty")
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String(), nil
}

func (fs *FSStore) path(stem string) string {
	return filepath.Join(fs.baseDir, stem+".json")
}

// Save atomically writes the result set as pretty-printed JSON.
func (fs *FSStore) Save(name string, results []timing.Result) error {
	stem, err := sanitizeName(name)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize reference set: %w", err)
	}

	finalPath := fs.path(stem)
	tempPath := finalPath + ".tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp reference file: %w", err)
	}
	if err := os.Rename(tempPath, finalPath); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename reference file: %w", err)
	}

	slog.Debug("Reference set saved", "name", stem, "path", finalPath, "count", len(results))
	return nil
}

// Load retrieves a reference set by name.
func (fs *FSStore) Load(name string) ([]timing.Result, error) {
	stem, err := sanitizeName(name)
	if err != nil {
		return nil, err
	}

	path := fs.path(stem)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, &NotFoundError{Name: stem}
	} else if err != nil {
		return nil, fmt.Errorf("failed to read reference file: %w", err)
	}

	var results []timing.Result
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("failed to deserialize reference set: %w", err)
	}

	slog.Debug("Reference set loaded", "name", stem, "count", len(results))
	return results, nil
}

// List scans the base directory for reference sets, newest first. Files
// that fail to parse still appear, with a zero count and no platform;
// listing must not fail because one snapshot is corrupt.
func (fs *FSStore) List() ([]Info, error) {
	entries, err := os.ReadDir(fs.baseDir)
	if os.IsNotExist(err) {
		return []Info{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read reference directory: %w", err)
	}

	infos := []Info{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		info := Info{Name: strings.TrimSuffix(entry.Name(), ".json")}
		if fi, err := entry.Info(); err == nil {
			info.CreatedAt = fi.ModTime()
		}

		results, err := fs.Load(info.Name)
		if err != nil {
			slog.Warn("Failed to parse reference set for listing", "name", info.Name, "error", err)
		} else {
			info.Count = len(results)
			if len(results) > 0 {
				p := results[0].Platform
				info.Platform = &p
			}
		}

		infos = append(infos, info)
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].CreatedAt.After(infos[j].CreatedAt)
	})

	slog.Debug("Listed reference sets", "count", len(infos))
	return infos, nil
}

// Delete removes a reference set.
func (fs *FSStore) Delete(name string) error {
	stem, err := sanitizeName(name)
	if err != nil {
		return err
	}

	path := fs.path(stem)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &NotFoundError{Name: stem}
	} else if err != nil {
		return fmt.Errorf("failed to stat reference file: %w", err)
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove reference file: %w", err)
	}

	slog.Debug("Reference set deleted", "name", stem, "path", path)
	return nil
}
