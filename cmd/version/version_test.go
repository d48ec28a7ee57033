package version

import (
	"bytes"
	"encoding/json"
	"regexp"
	"runtime"
	"runtime/debug"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withLdflags(t *testing.T, version, commit, buildTime string) {
	t.Helper()
	oldVersion, oldCommit, oldBuildTime := Version, Commit, BuildTime
	Version, Commit, BuildTime = version, commit, buildTime
	t.Cleanup(func() {
		Version, Commit, BuildTime = oldVersion, oldCommit, oldBuildTime
	})
}

func withBuildInfo(t *testing.T, bi *debug.BuildInfo) {
	t.Helper()
	old := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, bi != nil }
	t.Cleanup(func() { readBuildInfo = old })
}

func TestVersionFallbacks(t *testing.T) {
	t.Run("LdflagsWin", func(t *testing.T) {
		withLdflags(t, "v1.2.3", "0123456789abcdef", "2024-05-01T10:00:00Z")
		withBuildInfo(t, nil)

		assert.Equal(t, "v1.2.3", getVersion())
		assert.Equal(t, "012345678", getCommit())
		assert.Equal(t, "2024-05-01T10:00:00Z (commit time)", getBuildTimeDisplay())
	})

	t.Run("DirtyBuild", func(t *testing.T) {
		withLdflags(t, "v1.2.3-dirty", "", "2024-05-01T10:00:00Z")
		withBuildInfo(t, nil)

		assert.Equal(t, "2024-05-01T10:00:00Z (build time)", getBuildTimeDisplay())
	})

	t.Run("BuildInfo", func(t *testing.T) {
		withLdflags(t, "", "", "")
		withBuildInfo(t, &debug.BuildInfo{
			Main: debug.Module{Version: "v0.4.0"},
			Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abcdefabcdefabcdef"},
				{Key: "vcs.time", Value: "2024-01-02T03:04:05Z"},
			},
		})

		assert.Equal(t, "v0.4.0", getVersion())
		assert.Equal(t, "abcdefabc", getCommit())
		assert.Equal(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), getBuildTime())
	})

	t.Run("NothingKnown", func(t *testing.T) {
		withLdflags(t, "", "", "")
		withBuildInfo(t, nil)

		assert.Equal(t, devVersion, getVersion())
		assert.Empty(t, getCommit())
		assert.Equal(t, "unknown", getBuildTimeDisplay())
	})
}

func TestVersionCmd(t *testing.T) {
	withLdflags(t, "v1.2.3", "0123456789abcdef", "")
	withBuildInfo(t, nil)

	t.Run("Text", func(t *testing.T) {
		var out bytes.Buffer
		cmd := NewVersionCmd()
		cmd.SetOut(&out)
		cmd.SetArgs([]string{})
		require.NoError(t, cmd.Execute())

		assert.Regexp(t, regexp.QuoteMeta(VersionLabel)+`\s+v1\.2\.3`, out.String())
		assert.Regexp(t, regexp.QuoteMeta(CommitLabel)+`\s+012345678`, out.String())
		assert.Contains(t, out.String(), runtime.GOOS+"/"+runtime.GOARCH)
	})

	t.Run("JSON", func(t *testing.T) {
		var out bytes.Buffer
		cmd := NewVersionCmd()
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"--output", "json"})
		require.NoError(t, cmd.Execute())

		var info versionInfo
		require.NoError(t, json.Unmarshal(out.Bytes(), &info))
		assert.Equal(t, "v1.2.3", info.Version)
		assert.Equal(t, "unknown", info.BuildTime)
		assert.Equal(t, runtime.Version(), info.GoVersion)
	})

	t.Run("UnsupportedOutput", func(t *testing.T) {
		cmd := NewVersionCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"--output", "yaml"})
		require.ErrorContains(t, cmd.Execute(), "unsupported output format")
	})
}
