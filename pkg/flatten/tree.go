// File: pkg/flatten/tree.go
package flatten

import (
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const (
	treeConnector = "├── "
	treeIndent    = "  "
)

// RenderTree returns the indented tree of every included entry below cfg.Root.
// Directories end with a slash. In compressed mode no indentation is emitted.
// A directory that cannot be listed fails the whole render.
func RenderTree(fs afero.Fs, cfg Config, logger *zap.Logger) (string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var tree strings.Builder
	err := walk(fs, cfg.Root, cfg.policy(), logger, func(e Entry) error {
		tree.WriteString(treeLine(e, cfg.Compress))
		return nil
	}, nil)
	if err != nil {
		logger.Error("Failed to generate tree structure", zap.String("root", cfg.Root), zap.Error(err))
		return "", err
	}
	return tree.String(), nil
}

func treeLine(e Entry, compress bool) string {
	var line strings.Builder
	if !compress {
		line.WriteString(strings.Repeat(treeIndent, e.Depth))
	}
	line.WriteString(treeConnector)
	line.WriteString(e.Name)
	if e.IsDir() {
		line.WriteString("/")
	}
	line.WriteString("\n")
	return line.String()
}
