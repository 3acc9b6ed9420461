// Package version carries build metadata injected at link time.
package version

import "fmt"

// Set via -ldflags "-X hoopvision/internal/version.Version=..." and
// friends; the defaults identify a local, untagged build.
var (
	// Version is the release version.
	Version = "0.1.0-dev"

	// GitCommit is the short commit hash of the build.
	GitCommit = "unknown"

	// BuildTime is the UTC build timestamp.
	BuildTime = "unknown"
)

// String returns the full build identification line.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
