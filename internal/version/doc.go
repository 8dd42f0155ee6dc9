// Package version exposes build metadata for the building-controller binary.
//
// Version, Commit and BuildTime are injected with -ldflags at build time and
// default to local-build values. Short and Full render them for CLI output
// and logs.
package version
