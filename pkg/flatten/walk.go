// File: pkg/flatten/walk.go
package flatten

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// EntryKind distinguishes directories from regular files.
type EntryKind int

const (
	KindFile EntryKind = iota
	KindDirectory
)

// Entry is a single included directory or file found during a walk.
type Entry struct {
	Name    string    // Base name of the entry.
	Kind    EntryKind // Directory or regular file.
	Path    string    // Path joined onto the root.
	RelPath string    // Slash separated path relative to the root.
	Depth   int       // Zero for direct children of the root.
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

// SkipFunc is called for every excluded entry.
type SkipFunc func(path string, kind EntryKind)

// pending is a listed entry waiting on the walk stack.
type pending struct {
	dir   string
	info  os.FileInfo
	depth int
}

// walk visits every included entry under root in pre-order, depth first,
// following the order in which directories are listed. Excluded directories
// are not listed at all. Entries that are neither directories nor regular
// files are ignored.
//
// An explicit stack replaces recursion so that tree depth is not bound by
// the goroutine stack.
func walk(fs afero.Fs, root string, policy *Policy, logger *zap.Logger, visit func(Entry) error, skip SkipFunc) error {
	stack, err := listDirectory(fs, root, 0, nil, logger)
	if err != nil {
		return err
	}

	for len(stack) > 0 {
		next := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		name := next.info.Name()
		path := filepath.Join(next.dir, name)

		var kind EntryKind
		switch {
		case next.info.IsDir():
			kind = KindDirectory
			if policy.IsDirectoryExcluded(name) {
				if skip != nil {
					skip(path, kind)
				}
				continue
			}
		case next.info.Mode().IsRegular():
			kind = KindFile
			if policy.IsFileExcluded(name) {
				if skip != nil {
					skip(path, kind)
				}
				continue
			}
		default:
			logger.Info("Ignoring special file", zap.String("path", path), zap.Stringer("mode", next.info.Mode()))
			continue
		}

		entry := Entry{
			Name:    name,
			Kind:    kind,
			Path:    path,
			RelPath: relativePath(root, path),
			Depth:   next.depth,
		}
		if err := visit(entry); err != nil {
			return err
		}

		if kind == KindDirectory {
			stack, err = listDirectory(fs, path, next.depth+1, stack, logger)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// listDirectory reads dir and pushes its entries onto stack in reverse,
// so the first listed entry is popped first.
func listDirectory(fs afero.Fs, dir string, depth int, stack []pending, logger *zap.Logger) ([]pending, error) {
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		logger.Error("Failed to read directory", zap.String("directory", dir), zap.Error(err))
		return stack, fmt.Errorf("failed to read directory '%s': %w", dir, err)
	}
	for i := len(infos) - 1; i >= 0; i-- {
		stack = append(stack, pending{dir: dir, info: infos[i], depth: depth})
	}
	return stack, nil
}

// relativePath returns path relative to root with forward slashes.
// It falls back to path itself when no relative form exists.
func relativePath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
