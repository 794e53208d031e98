package app

import (
	"fmt"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/heartmarshall/campus-ballot/internal/app.Version=v1.2.0".
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion is reported in startup logs and on /health. When the linker
// flags were not set it falls back to the VCS stamp the go tool embeds.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if commit == "" || built == "" {
		c, b := vcsStamp()
		if commit == "" {
			commit = c
		}
		if built == "" {
			built = b
		}
	}
	return formatVersion(Version, commit, built)
}

func formatVersion(version, commit, built string) string {
	if commit == "" {
		commit = "unknown"
	}
	if built == "" {
		built = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, built)
}

func vcsStamp() (revision, at string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", ""
	}
	dirty := false
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			at = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if len(revision) > 12 {
		revision = revision[:12]
	}
	if dirty && revision != "" {
		revision += "+dirty"
	}
	return revision, at
}
