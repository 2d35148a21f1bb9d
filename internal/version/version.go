// Package version reports build information for swatch.
// Values are injected at build time using ldflags, e.g.
//
//	-ldflags "-X github.com/jmylchreest/swatch/internal/version.Version=x.y.z"
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Name is the binary name used in version strings.
const Name = "swatch"

var (
	// Version is the semantic version of the application.
	Version = "dev"

	// Commit is the git commit hash of the build.
	Commit = "unknown"

	// Date is the build date in RFC3339 format.
	Date = "unknown"
)

// Info holds all version information for the application.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the build information. For `go install` builds without
// ldflags the module version and VCS revision are taken from the binary.
func Get() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch {
		case s.Key == "vcs.revision" && info.Commit == "unknown":
			info.Commit = s.Value
		case s.Key == "vcs.time" && info.Date == "unknown":
			info.Date = s.Value
		}
	}
	return info
}

// String returns a human-readable version line.
func (i Info) String() string {
	if i.Commit != "unknown" && i.Date != "unknown" {
		return fmt.Sprintf("%s version %s (commit: %s, built: %s, %s, %s)",
			Name, i.Version, shortCommit(i.Commit), i.Date, i.GoVersion, i.Platform)
	}
	return fmt.Sprintf("%s version %s (%s, %s)", Name, i.Version, i.GoVersion, i.Platform)
}

func shortCommit(c string) string {
	if len(c) > 8 {
		return c[:8]
	}
	return c
}
