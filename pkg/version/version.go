// Package version holds build metadata injected with -ldflags.
package version

import (
	"fmt"
	"runtime/debug"
)

const unknown = "<unknown>"

// Build metadata, set at link time:
//
//	-ldflags "-X github.com/Sumatoshi-tech/stretch/pkg/version.Version=v1.0.0"
var (
	Version = "dev"
	Commit  = unknown
	Date    = unknown
)

// InitBinaryVersion fills Version and Commit from the embedded module build
// info when they were not set at link time.
func InitBinaryVersion() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	apply(info)
}

func apply(info *debug.BuildInfo) {
	if Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if Commit == unknown {
				Commit = setting.Value
			}
		case "vcs.time":
			if Date == unknown {
				Date = setting.Value
			}
		}
	}
}

// String formats the metadata as shown by the version command.
func String() string {
	return fmt.Sprintf("stretch %s (commit: %s, built: %s)", Version, Commit, Date)
}
