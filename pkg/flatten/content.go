// File: pkg/flatten/content.go
package flatten

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const blockSeparator = "-----------------------------"

// SerializeContents writes one block per included file under cfg.Root to w,
// in traversal order. Each block is written before the next file is read.
// The first unreadable file or failed write stops the walk.
func SerializeContents(fs afero.Fs, cfg Config, w io.Writer, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	skip := func(path string, kind EntryKind) {
		if kind == KindDirectory {
			logger.Info("Skipping directory", zap.String("path", path))
		} else {
			logger.Info("Skipping file", zap.String("path", path))
		}
	}

	return walk(fs, cfg.Root, cfg.policy(), logger, func(e Entry) error {
		if e.IsDir() {
			return nil
		}

		content, err := readText(fs, e.Path)
		if err != nil {
			logger.Error("Failed to read file", zap.String("filePath", e.Path), zap.Error(err))
			return err
		}

		if _, err := io.WriteString(w, FormatBlock(e.RelPath, content, cfg.Compress)); err != nil {
			logger.Error("Failed to write content", zap.String("contentPath", e.RelPath), zap.Error(err))
			return fmt.Errorf("failed to write content of %s: %w", e.RelPath, err)
		}
		return nil
	}, skip)
}

// FormatBlock formats the output block for a single file.
func FormatBlock(relPath, content string, compress bool) string {
	if compress {
		return fmt.Sprintf("File:%s,Content:%s\n", relPath, Collapse(content))
	}
	return fmt.Sprintf("File: %s\nContent:\n%s\n\n%s\n\n", relPath, content, blockSeparator)
}
