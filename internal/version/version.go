// Package version exposes build metadata for the walcord binary.
package version

import "fmt"

// These variables are populated by the Go linker (LDFLAGS) at build time.
var (
	Version    = "2.9.1"   // Overridden by LDFLAGS on release builds
	CommitHash = "unknown" // Default value
	BuildDate  = "unknown" // Default value
)

// String returns the full version line printed by --version.
func String() string {
	if CommitHash == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s (%s, %s)", Version, CommitHash, BuildDate)
}
