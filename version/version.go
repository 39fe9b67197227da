// Package version reports build information for the dox binary.
//
// The string values are injected at link time and never change at run time:
//
//	go build -ldflags "-X github.com/dead-horse/dox/version.Version=v1.2.0" ./cmd/dox
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	// Version is the release version, set via ldflags.
	Version string
	// BuildDate is when the binary was built, set via ldflags.
	BuildDate string

	// Revision is the VCS revision recorded by the Go toolchain.
	Revision = revision(debug.ReadBuildInfo)
	// GoVersion is the Go version used to build.
	GoVersion = runtime.Version()
)

// String renders the build information on one line.
func String() string {
	v := Version
	if v == "" {
		v = "devel"
	}

	s := fmt.Sprintf("dox %s (revision %s, %s)", v, Revision, GoVersion)
	if BuildDate != "" {
		s += " built " + BuildDate
	}

	return s
}

func revision(read func() (*debug.BuildInfo, bool)) string {
	rev := "unknown"

	info, ok := read()
	if !ok {
		return rev
	}

	dirty := false

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}

	if dirty {
		return rev + "-dirty"
	}

	return rev
}
