// File: pkg/flatten/artifact.go
package flatten

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Artifact is the output file of a run. It is truncated when created and
// only ever appended to afterwards.
type Artifact struct {
	path   string
	file   afero.File
	logger *zap.Logger
}

// CreateArtifact creates or truncates the file at path and writes header as
// its initial content.
func CreateArtifact(fs afero.Fs, path, header string, logger *zap.Logger) (*Artifact, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	file, err := fs.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", path), zap.Error(err))
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	a := &Artifact{path: path, file: file, logger: logger}
	if _, err := a.Write([]byte(header)); err != nil {
		_ = file.Close()
		return nil, err
	}
	return a, nil
}

// Write appends p to the artifact.
func (a *Artifact) Write(p []byte) (int, error) {
	n, err := a.file.Write(p)
	if err != nil {
		a.logger.Error("Failed to write output file", zap.String("file", a.path), zap.Error(err))
		return n, fmt.Errorf("failed to write output file %s: %w", a.path, err)
	}
	return n, nil
}

// Path returns the location of the artifact.
func (a *Artifact) Path() string {
	return a.path
}

// Close closes the underlying file.
func (a *Artifact) Close() error {
	if err := a.file.Close(); err != nil {
		a.logger.Error("Failed to close output file", zap.String("file", a.path), zap.Error(err))
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}
