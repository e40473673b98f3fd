package utils

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"
)

// IsGoFile checks if a file is a Go source file (includes test files)
func IsGoFile(filename string) bool {
	return strings.HasSuffix(filename, ".go")
}

// IsIgnored reports whether path, or path relative to root, matches one of
// the doublestar patterns. Invalid patterns never match.
func IsIgnored(root, path string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	candidates := []string{filepath.ToSlash(filepath.Clean(path))}
	if rel, err := filepath.Rel(root, path); err == nil && rel != "." {
		candidates = append(candidates, filepath.ToSlash(rel))
	}
	for _, pattern := range patterns {
		for _, name := range candidates {
			if ok, err := doublestar.Match(pattern, name); err == nil && ok {
				return true
			}
		}
	}
	return false
}

// ValidatePatterns returns the first pattern that is not a valid doublestar
// pattern, or "" when all are valid.
func ValidatePatterns(patterns []string) string {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return p
		}
	}
	return ""
}

// FindGoFiles recursively finds all Go source files in a directory. Vendor
// and hidden directories are skipped, as is anything matching ignore. The
// result is sorted.
func FindGoFiles(root string, ignore []string) ([]string, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, err
	}

	var (
		mu      sync.Mutex
		goFiles []string
	)
	cleanRoot := filepath.Clean(root)

	// fastwalk calls the function from multiple goroutines
	err := fastwalk.Walk(nil, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if filepath.Clean(path) == cleanRoot {
				return nil
			}
			name := d.Name()
			if name == "vendor" || strings.HasPrefix(name, ".") || IsIgnored(root, path, ignore) {
				return filepath.SkipDir
			}
			return nil
		}

		if IsGoFile(d.Name()) && !IsIgnored(root, path, ignore) {
			mu.Lock()
			goFiles = append(goFiles, path)
			mu.Unlock()
		}
		return nil
	})

	sort.Strings(goFiles)
	return goFiles, err
}

// IsDirectory checks if the given path is a directory
func IsDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
