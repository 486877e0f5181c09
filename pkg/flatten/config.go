// File: pkg/flatten/config.go
package flatten

import "path/filepath"

// Output file names, chosen by mode.
const (
	OutputFileName           = "directory_contents.txt"
	CompressedOutputFileName = "directory_contents_compressed.txt"
)

// Config holds the settings of a single run. It is built once at startup
// and passed by value to every phase.
type Config struct {
	Root       string  // Directory to scan, as given by the user.
	Compress   bool    // Collapse whitespace in the tree and file contents.
	OutputPath string  // Destination of the output artifact.
	Policy     *Policy // Exclusion rules; nil means DefaultPolicy.
}

// NewConfig returns a Config for root whose artifact is written into outputDir
// under the file name matching the mode.
func NewConfig(root string, compress bool, outputDir string, policy *Policy) Config {
	return Config{
		Root:       root,
		Compress:   compress,
		OutputPath: filepath.Join(outputDir, OutputName(compress)),
		Policy:     policy,
	}
}

// OutputName returns the artifact file name for the given mode.
func OutputName(compress bool) string {
	if compress {
		return CompressedOutputFileName
	}
	return OutputFileName
}

func (c Config) policy() *Policy {
	if c.Policy == nil {
		return DefaultPolicy(nil)
	}
	return c.Policy
}
