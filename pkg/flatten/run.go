// File: pkg/flatten/run.go
package flatten

import (
	"fmt"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Run renders the tree of cfg.Root into a fresh artifact at cfg.OutputPath and
// then appends the content of every included file. A failure during the
// content phase leaves the artifact with the tree and the blocks written so far.
func Run(fs afero.Fs, cfg Config, logger *zap.Logger) (err error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	startTime := time.Now()

	tree, err := RenderTree(fs, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to generate tree structure: %w", err)
	}
	if cfg.Compress {
		tree = Collapse(tree)
	}

	artifact, err := CreateArtifact(fs, cfg.OutputPath, TreeHeader(cfg.Root, tree), logger)
	if err != nil {
		return fmt.Errorf("failed to write tree structure: %w", err)
	}
	defer func() {
		if closeErr := artifact.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	logger.Info("Reading directory", zap.String("directory", cfg.Root))
	if err := SerializeContents(fs, cfg, artifact, logger); err != nil {
		return fmt.Errorf("failed to write directory contents: %w", err)
	}

	logger.Info("Directory content has been written",
		zap.String("outputFile", artifact.Path()),
		zap.Duration("elapsed", time.Since(startTime)),
	)
	return nil
}

// TreeHeader returns the initial content of the artifact.
func TreeHeader(root, tree string) string {
	return fmt.Sprintf("Directory Tree for %s:\n\n%s\n\n", root, tree)
}
