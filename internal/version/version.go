package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Заполняются через -ldflags "-X spacecake-server/internal/version.Commit=..."
var (
	Version   = "dev"
	Commit    string
	BuildDate string // YYYY-MM-DD (UTC)
)

// BuildInfo describes the build metadata in structured form.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"buildDate,omitempty"`
	GoVersion string `json:"goVersion"`
	Modified  bool   `json:"modified,omitempty"`
}

// readVCS достает ревизию из метаданных сборки, если ldflags не задали Commit
var readVCS = func() (revision string, modified bool) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	return revision, modified
}

// Info returns structured version information.
// Safe to call at any time.
func Info() BuildInfo {
	info := BuildInfo{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}
	if info.Commit == "" {
		info.Commit, info.Modified = readVCS()
	}
	if len(info.Commit) > 12 {
		info.Commit = info.Commit[:12]
	}
	return info
}

// String returns a human-readable build string.
func String() string {
	info := Info()

	commit := coalesce(info.Commit, "unknown")
	if info.Modified {
		commit += "+dirty"
	}
	return fmt.Sprintf("Spacecake %s commit[%s] built[%s] %s",
		info.Version, commit, coalesce(info.BuildDate, "local"), info.GoVersion)
}

func coalesce(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
