package xform

import (
	"fmt"
	"runtime"
)

var (
	// version, commit, and buildTime are set via ldflags during build by
	// GoReleaser. For development builds these show their zero defaults.
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Version returns the compiled version or "dev" if run from source.
func Version() string {
	return version
}

// Commit returns the compiled git commit short hash, or "unknown" if run
// from source.
func Commit() string {
	return commit
}

// BuildTime returns the compiled build timestamp in RFC3339 format, or
// "unknown" if run from source.
func BuildTime() string {
	return buildTime
}

// GoVersion returns the Go runtime version used to build the binary.
func GoVersion() string {
	return runtime.Version()
}

// BuildInfo returns a human-readable multi-line summary of all build
// metadata, suitable for a --version flag.
func BuildInfo() string {
	return fmt.Sprintf("Version: %s\nCommit: %s\nBuild Time: %s\nGo Version: %s",
		Version(), Commit(), BuildTime(), GoVersion())
}

// UserAgent returns the User-Agent string to use for outbound requests
// made on behalf of xform.
func UserAgent() string {
	return fmt.Sprintf("xform/%s", version)
}
