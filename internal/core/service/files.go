package service

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"filekit/internal/core/domain"
)

// listFiles returns the regular files directly inside dir matching pattern, sorted by path.
func listFiles(dir, pattern string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrInputNotFound, dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", domain.ErrInvalidInput, dir)
	}

	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("%w: bad pattern %q: %w", domain.ErrInvalidInput, pattern, err)
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		if fi, err := os.Stat(m); err == nil && fi.Mode().IsRegular() {
			files = append(files, m)
		}
	}
	sort.Strings(files)

	return files, nil
}
