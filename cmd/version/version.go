package version

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

const (
	VersionLabel   = "Version:"
	CommitLabel    = "Git commit:"
	BuiltLabel     = "Built:"
	GoVersionLabel = "Go version:"
	OSArchLabel    = "OS/Arch:"
)

const (
	outputText = "text"
	outputJSON = "json"
)

type versionInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
	Os        string `json:"os"`
	Arch      string `json:"arch"`
}

func currentVersionInfo() versionInfo {
	return versionInfo{
		Version:   getVersion(),
		GitCommit: getCommit(),
		BuildTime: getBuildTimeDisplay(),
		GoVersion: runtime.Version(),
		Os:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// writeText prints one label/value pair per line, values aligned on a tab stop.
func (v versionInfo) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 8, 1, '\t', 0)
	rows := [][2]string{
		{VersionLabel, v.Version},
		{CommitLabel, v.GitCommit},
		{BuiltLabel, v.BuildTime},
		{GoVersionLabel, v.GoVersion},
		{OSArchLabel, v.Os + "/" + v.Arch},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, " %s\t%s\n", r[0], r[1]); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func (v versionInfo) writeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func NewVersionCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display the application version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := currentVersionInfo()
			switch output {
			case outputText:
				return info.writeText(cmd.OutOrStdout())
			case outputJSON:
				return info.writeJSON(cmd.OutOrStdout())
			default:
				return fmt.Errorf("unsupported output format %q", output)
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format (text|json)")

	return cmd
}
