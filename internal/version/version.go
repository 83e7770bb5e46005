// Package version reports the selectkit build version.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/muurk/selectkit/internal/version.Version=v0.3.0 \
//	                   -X github.com/muurk/selectkit/internal/version.Commit=abc1234"
var (
	Version = ""
	Commit  = ""
)

const shortCommitLen = 7

// Info describes the running binary.
type Info struct {
	Version   string
	Commit    string
	Modified  bool
	GoVersion string
	Platform  string
}

// Get returns build information, filling gaps from the embedded VCS
// metadata. Unknown values fall back to "dev" and "unknown".
func Get() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		info = fromBuildInfo(info, bi)
	}

	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "unknown"
	}
	return info
}

func fromBuildInfo(info Info, bi *debug.BuildInfo) Info {
	if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = s.Value
				if len(info.Commit) > shortCommitLen {
					info.Commit = info.Commit[:shortCommitLen]
				}
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// String returns a single line such as "v0.3.0 (abc1234-dirty, go1.24.10 linux/amd64)".
func (i Info) String() string {
	commit := i.Commit
	if i.Modified && !strings.HasSuffix(commit, "-dirty") {
		commit += "-dirty"
	}
	return fmt.Sprintf("%s (%s, %s %s)", i.Version, commit, i.GoVersion, i.Platform)
}

// Full returns the full version string
func Full() string {
	return Get().String()
}
