// File: pkg/flatten/policy.go
package flatten

import (
	"path/filepath"

	"go.uber.org/zap"
)

// Default exclusion rules.
var (
	DefaultExcludedDirs       = []string{"node_modules", ".idea", "venv", ".git"}
	DefaultExcludedFiles      = []string{"package-lock.json", ".DS_Store", ".gitattributes", ".gitignore"}
	DefaultExcludedExtensions = []string{".o", ".out", ".exe", ".png", ".pdf"} // Binary and compiled artifacts
)

// Policy decides which directories and files are left out of the output.
// A Policy is immutable once built.
type Policy struct {
	dirs   map[string]struct{}
	files  map[string]struct{}
	exts   map[string]struct{}
	logger *zap.Logger
}

// NewPolicy builds a Policy from the given directory names, file names and extensions.
// Extensions include the leading dot.
func NewPolicy(dirs, files, exts []string, logger *zap.Logger) *Policy {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Policy{
		dirs:   toSet(dirs),
		files:  toSet(files),
		exts:   toSet(exts),
		logger: logger,
	}
}

// DefaultPolicy returns the Policy built from the default exclusion rules.
func DefaultPolicy(logger *zap.Logger) *Policy {
	return NewPolicy(DefaultExcludedDirs, DefaultExcludedFiles, DefaultExcludedExtensions, logger)
}

// IsDirectoryExcluded reports whether a directory with the given name is skipped.
func (p *Policy) IsDirectoryExcluded(name string) bool {
	_, excluded := p.dirs[name]
	p.logger.Info("Checking directory", zap.String("name", name), zap.Bool("excluded", excluded))
	return excluded
}

// IsFileExcluded reports whether a file with the given name is skipped,
// either by its exact name or by its extension.
func (p *Policy) IsFileExcluded(name string) bool {
	_, excluded := p.files[name]
	if !excluded {
		_, excluded = p.exts[filepath.Ext(name)]
	}
	p.logger.Info("Checking file", zap.String("name", name), zap.Bool("excluded", excluded))
	return excluded
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
