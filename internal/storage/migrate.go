// ABOUTME: Data migration between storage backends.
// ABOUTME: Copies every namespace verbatim from source to destination.

package storage

import (
	"errors"
	"fmt"
	"os"
)

// MigrateSummary records which namespaces were copied and their sizes in bytes.
type MigrateSummary struct {
	Copied  map[Namespace]int
	Skipped []Namespace
}

// MigrateData copies all namespaces from src to dst. Namespaces never
// written in src are skipped, leaving dst to seed them on first use.
func MigrateData(src, dst Backend) (*MigrateSummary, error) {
	summary := &MigrateSummary{Copied: make(map[Namespace]int)}

	for _, ns := range AllNamespaces {
		data, err := src.Get(string(ns))
		if errors.Is(err, ErrNotFound) {
			summary.Skipped = append(summary.Skipped, ns)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read source %s: %w", ns, err)
		}
		if err := dst.Set(string(ns), data); err != nil {
			return nil, fmt.Errorf("write destination %s: %w", ns, err)
		}
		summary.Copied[ns] = len(data)
	}

	return summary, nil
}

// IsDirNonEmpty checks whether a directory exists and contains any files or subdirectories.
// Returns false if the directory does not exist or is empty.
func IsDirNonEmpty(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read directory %q: %w", path, err)
	}
	return len(entries) > 0, nil
}
