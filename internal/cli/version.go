package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/notebook/internal/buildinfo"
)

const defaultModulePath = "github.com/aidanlsb/notebook"

type versionInfo struct {
	Version    string
	ModulePath string
	Commit     string
	CommitTime string
	Modified   bool
	GoVersion  string
	Platform   string
}

var readBuildInfo = debug.ReadBuildInfo

func newVersionCmd(binary string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version and build information",
		Args:  cobra.NoArgs,
		// Version needs no configuration.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			info := currentVersionInfo()
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "%s %s\n", binary, info.Version)
			fmt.Fprintf(out, "module: %s\n", info.ModulePath)
			if info.Commit != "" {
				fmt.Fprintf(out, "commit: %s\n", info.Commit)
			}
			if info.CommitTime != "" {
				fmt.Fprintf(out, "commit_time: %s\n", info.CommitTime)
			}
			fmt.Fprintf(out, "go: %s\n", info.GoVersion)
			fmt.Fprintf(out, "platform: %s\n", info.Platform)
			if info.Modified {
				fmt.Fprintln(out, "modified: true")
			}
		},
	}
}

func currentVersionInfo() versionInfo {
	info := versionInfo{
		Version:    "devel",
		ModulePath: defaultModulePath,
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
	}

	bi, ok := readBuildInfo()
	if ok && bi != nil {
		if bi.Main.Path != "" {
			info.ModulePath = bi.Main.Path
		}
		info.Version = normalizeVersion(bi.Main.Version)
		if bi.GoVersion != "" {
			info.GoVersion = bi.GoVersion
		}
		settings := make(map[string]string, len(bi.Settings))
		for _, s := range bi.Settings {
			settings[s.Key] = s.Value
		}
		info.Commit = settings["vcs.revision"]
		info.CommitTime = settings["vcs.time"]
		info.Modified = strings.EqualFold(settings["vcs.modified"], "true")
	}

	// Release builds stamp these with -ldflags.
	if info.Version == "devel" && buildinfo.Version != "" {
		info.Version = normalizeVersion(buildinfo.Version)
	}
	if info.Commit == "" {
		info.Commit = buildinfo.Commit
	}
	if info.CommitTime == "" {
		info.CommitTime = buildinfo.Date
	}
	return info
}

func normalizeVersion(version string) string {
	if version == "" || version == "(devel)" {
		return "devel"
	}
	return strings.TrimPrefix(version, "v")
}
