// Package buildinfo carries the release stamp of the lcdgfx tools, set with
//
//	go build -ldflags "-X lcdgfx/internal/buildinfo.Version=v0.3.0 -X lcdgfx/internal/buildinfo.Commit=..."
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short is the version if one was stamped, else the commit, else "dev".
// The window title and log lines use it.
func Short() string {
	switch {
	case Version != "" && Version != "dev":
		return Version
	case Commit != "" && Commit != "unknown":
		return Commit
	}
	if rev := vcsRevision(); rev != "" {
		return rev
	}
	return "dev"
}

// Line is the full stamp printed by -version.
func Line(tool string) string {
	return fmt.Sprintf("%s %s (commit %s, built %s)", tool, Version, Commit, Date)
}

// vcsRevision falls back to the revision the go command embedded, if any.
func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return s.Value[:7]
		}
	}
	return ""
}
