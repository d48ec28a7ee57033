package version

import (
	"runtime/debug"
	"strings"
	"time"
)

// These variables can be overridden at build time with ldflags
var (
	Version   string // -X github.com/trufnetwork/poa-extradata/cmd/version.Version=...
	Commit    string // -X github.com/trufnetwork/poa-extradata/cmd/version.Commit=...
	BuildTime string // -X github.com/trufnetwork/poa-extradata/cmd/version.BuildTime=...
)

const (
	devVersion      = "(devel)"
	dirtySuffix     = "dirty"
	shortHashLength = 9
)

// vcsInfo holds what the go toolchain stamped into the binary.
type vcsInfo struct {
	Version  string
	Revision string
	Time     time.Time
	Modified bool
}

var readBuildInfo = debug.ReadBuildInfo

func buildVCSInfo() vcsInfo {
	var info vcsInfo
	bi, ok := readBuildInfo()
	if !ok {
		return info
	}
	info.Version = bi.Main.Version
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Revision = s.Value
		case "vcs.time":
			info.Time, _ = time.Parse(time.RFC3339, s.Value)
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// getVersion returns the ldflags version if set, otherwise the module version
func getVersion() string {
	if Version != "" {
		return Version
	}
	if v := buildVCSInfo().Version; v != "" {
		return v
	}
	return devVersion
}

// getCommit returns the commit (short form) from ldflags or build info
func getCommit() string {
	commit := Commit
	if commit == "" {
		commit = buildVCSInfo().Revision
	}

	// Return short form for readability
	if len(commit) > shortHashLength {
		return commit[:shortHashLength]
	}
	return commit
}

// getBuildTime returns the ldflags build time if it parses, otherwise the vcs commit time
func getBuildTime() time.Time {
	if BuildTime != "" {
		if t, err := time.Parse(time.RFC3339, BuildTime); err == nil {
			return t
		}
	}
	return buildVCSInfo().Time
}

// getBuildTimeDisplay returns a formatted build time with context about whether it's commit or build time
func getBuildTimeDisplay() string {
	buildTime := getBuildTime()
	if buildTime.IsZero() {
		return "unknown"
	}

	// A custom build time on a dirty workspace is the time of the build, not of a commit
	if BuildTime != "" && strings.HasSuffix(Version, dirtySuffix) {
		return buildTime.Format(time.RFC3339) + " (build time)"
	}
	return buildTime.Format(time.RFC3339) + " (commit time)"
}
