// Package version holds build metadata injected with -ldflags, e.g.
//
//	-X github.com/jmylchreest/voronoi/internal/version.Version=x.y.z
//	-X github.com/jmylchreest/voronoi/internal/version.Commit=$(git rev-parse HEAD)
//	-X github.com/jmylchreest/voronoi/internal/version.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the semantic version of the application.
	Version = "dev"
	// Commit is the git commit hash of the build.
	Commit = "unknown"
	// Date is the build date in RFC3339 format.
	Date = "unknown"
)

// shortCommitLen is the number of hash characters shown.
const shortCommitLen = 8

// String returns a human-readable version string.
func String() string {
	platform := runtime.GOOS + "/" + runtime.GOARCH
	if Commit == "unknown" || Date == "unknown" {
		return fmt.Sprintf("voronoi version %s (%s, %s)", Version, runtime.Version(), platform)
	}

	commit := Commit
	if len(commit) > shortCommitLen {
		commit = commit[:shortCommitLen]
	}
	return fmt.Sprintf("voronoi version %s (commit: %s, built: %s, %s, %s)",
		Version, commit, Date, runtime.Version(), platform)
}

// Short returns a short version string suitable for CLI output.
func Short() string {
	return Version
}
