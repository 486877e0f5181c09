package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"dirdump/pkg/flatten"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ErrUsage is returned when the command line is incomplete or malformed.
var ErrUsage = errors.New("invalid usage")

const usageText = `Usage: dirdump <directory_path> [--compress]
Please provide the path to the directory you want to scan.
Optional: Use the '--compress' flag to minimize the output.
`

// NewRootCmd returns the dirdump command. The output artifact is written into
// outputDir, or next to the running executable when outputDir is empty.
func NewRootCmd(fs afero.Fs, stdout io.Writer, logger *zap.Logger, outputDir string) *cobra.Command {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	var compress bool

	rootCmd := &cobra.Command{
		Use:   "dirdump <directory_path> [--compress]",
		Short: "Flatten a directory into a single text file",
		Long: `dirdump writes a tree of the given directory followed by the content of every
file in it into one text file, ready to be pasted into a chat prompt.
Tooling directories such as node_modules and .git, lock files and binary
artifacts are left out. With --compress all whitespace is collapsed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprint(cmd.OutOrStdout(), usageText)
				return ErrUsage
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				logger.Warn("Ignoring extra arguments", zap.Strings("args", args[1:]))
			}

			dir := outputDir
			if dir == "" {
				var err error
				if dir, err = executableDir(); err != nil {
					return fmt.Errorf("failed to locate output directory: %w", err)
				}
			}

			cfg := flatten.NewConfig(args[0], compress, dir, flatten.DefaultPolicy(logger))
			return flatten.Run(fs, cfg, logger)
		},
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		fmt.Fprint(cmd.OutOrStdout(), usageText)
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})
	rootCmd.Flags().BoolVar(&compress, "compress", false, "Collapse whitespace to minimize the output")
	addVersion(rootCmd)

	return rootCmd
}

// Execute runs the dirdump command against the real filesystem.
func Execute(logger *zap.Logger) error {
	return NewRootCmd(nil, os.Stdout, logger, "").Execute()
}

func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}
