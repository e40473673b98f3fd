package utils

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
)

// maxModuleSearchDepth bounds the walk up the directory tree
const maxModuleSearchDepth = 20

// GetProjectModule returns the module path of the nearest go.mod at or above
// path, falling back to a GOPATH-style ".../src/host/owner/repo" layout.
// It returns "" when neither is found.
func GetProjectModule(path string) string {
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	dir := absPath
	if isDir, err := IsDirectory(absPath); err != nil || !isDir {
		dir = filepath.Dir(absPath)
	}

	for i := 0; i < maxModuleSearchDepth; i++ {
		if module := readModulePath(filepath.Join(dir, "go.mod")); module != "" {
			return module
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return gopathModule(filepath.ToSlash(absPath))
}

func readModulePath(goModPath string) string {
	content, err := os.ReadFile(goModPath)
	if err != nil {
		return ""
	}
	return modfile.ModulePath(content)
}

func gopathModule(path string) string {
	_, rest, ok := strings.Cut(path, "/src/")
	if !ok {
		return ""
	}
	parts := strings.Split(rest, "/")
	if len(parts) < 3 {
		return ""
	}
	return strings.Join(parts[:3], "/")
}
