// Package version provides build version information and runtime metadata.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
)

var (
	// These are set via ldflags at build time
	Version = ""
	Commit  = ""
	Date    = ""

	once          sync.Once
	readBuildInfo = debug.ReadBuildInfo
)

const shortCommitLen = 12

func ensureInitialized() {
	once.Do(func() {
		info, ok := readBuildInfo()
		if !ok {
			info = &debug.BuildInfo{}
		}
		applyBuildInfo(info)
	})
}

// applyBuildInfo fills whatever ldflags left empty from the module and VCS
// metadata the toolchain embeds.
func applyBuildInfo(info *debug.BuildInfo) {
	var revision, vcsTime string
	var modified bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			vcsTime = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if Version == "" {
		Version = strings.TrimPrefix(info.Main.Version, "v")
		if Version == "" || Version == "(devel)" {
			Version = "dev"
		}
	}

	if Commit == "" {
		Commit = "unknown"
		if revision != "" {
			Commit = revision[:min(len(revision), shortCommitLen)]
			if modified {
				Commit += "-dirty"
			}
		}
	}

	if Date == "" {
		Date = "unknown"
		if d, _, found := strings.Cut(vcsTime, "T"); found {
			Date = d
		}
	}
}

// Reset clears resolved values so the next accessor re-reads build info.
func Reset() {
	Version, Commit, Date = "", "", ""
	once = sync.Once{}
}

// GetVersion returns the application version.
func GetVersion() string {
	ensureInitialized()
	return Version
}

// GetCommit returns the short VCS revision.
func GetCommit() string {
	ensureInitialized()
	return Commit
}

// GetDate returns the commit date.
func GetDate() string {
	ensureInitialized()
	return Date
}

// Info returns a one-line description of the build.
func Info() string {
	ensureInitialized()
	return fmt.Sprintf("trafficbuddy-tui %s (commit: %s, built: %s, %s/%s)",
		Version, Commit, Date, runtime.GOOS, runtime.GOARCH)
}
