// File: cmd/version.go
package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Populated at build time, for example:
// go build -ldflags "-X 'dirdump/cmd.Version=1.2.3' -X 'dirdump/cmd.Commit=abcdefg'"
var (
	Version = "dev"  // Semantic version of the application
	Commit  = "none" // Git commit hash
)

// versionLine returns the text printed by --version.
func versionLine() string {
	return fmt.Sprintf("dirdump %s (commit: %s, %s %s/%s)", Version, Commit, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// addVersion enables the --version flag on cmd.
func addVersion(cmd *cobra.Command) {
	cmd.Version = Version
	cmd.SetVersionTemplate(versionLine() + "\n")
}
