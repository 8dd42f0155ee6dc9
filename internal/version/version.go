package version

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version is the semantic version, set with -ldflags "-X ...version.Version=...".
	Version = "0.1.0"
	// Commit is the short git SHA. When not injected it is read from the
	// VCS stamp the Go toolchain embeds, if any.
	Commit = "none"
	// BuildTime is the UTC build timestamp.
	BuildTime = "unknown"
)

// Short returns only the semantic version string.
func Short() string {
	return Version
}

// Full returns the version with commit and build time.
func Full() string {
	return fmt.Sprintf("version: %s, commit: %s, built at: %s", Version, commit(), BuildTime)
}

// commit prefers the injected commit over the embedded VCS revision.
func commit() string {
	if Commit != "none" {
		return Commit
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Commit
	}

	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" && len(setting.Value) >= 7 {
			return setting.Value[:7]
		}
	}

	return Commit
}
