package app

import "fmt"

// Set with -ldflags "-X github.com/heartmarshall/users-resources/internal/app.Version=...".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the version string reported by /health and the startup log.
func BuildVersion() string {
	if Commit == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s+%s (%s)", Version, Commit, BuildTime)
}
