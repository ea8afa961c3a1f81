package version

import (
	"fmt"
	"runtime/debug"
)

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Info is the version information printed by "zipkit version".
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Get resolves the version information from the linker variables, falling
// back to the module and VCS settings in the build info.
func Get() Info {
	return resolve(Version, Commit, Date, readBuildInfo)
}

func readBuildInfo() (*debug.BuildInfo, bool) {
	return debug.ReadBuildInfo()
}

func resolve(version, commit, date string, buildInfo func() (*debug.BuildInfo, bool)) Info {
	info := Info{Version: version, Commit: commit, Date: date}
	bi, ok := buildInfo()
	if !ok {
		if info.Version == "" || info.Version == "dev" {
			info.Version = "development"
		}
		return info
	}

	if info.Version == "" || info.Version == "dev" {
		info.Version = "development"
		if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
	}
	for _, setting := range bi.Settings {
		switch {
		case setting.Key == "vcs.revision" && (info.Commit == "" || info.Commit == "unknown"):
			info.Commit = setting.Value
		case setting.Key == "vcs.time" && (info.Date == "" || info.Date == "unknown"):
			info.Date = setting.Value
		}
	}
	return info
}

// String formats the version with a short commit and the build date when
// they are known, e.g. "v1.2.0 (abc1234, built 2026-01-02T03:04:05Z)".
func (i Info) String() string {
	if i.Commit == "unknown" || len(i.Commit) < 7 {
		return i.Version
	}
	short := i.Commit[:7]
	if i.Date == "unknown" || i.Date == "" {
		return fmt.Sprintf("%s (%s)", i.Version, short)
	}
	return fmt.Sprintf("%s (%s, built %s)", i.Version, short, i.Date)
}
