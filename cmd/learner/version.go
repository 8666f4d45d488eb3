package main

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set with -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			writeVersion(cmd.OutOrStdout(), buildCommit())
			return nil
		},
	}
}

func writeVersion(out io.Writer, revision string) {
	fmt.Fprintf(out, "learner %s\ncommit: %s\nbuilt: %s\ngo: %s\n", version, revision, date, runtime.Version())
}

// buildCommit prefers the ldflags value and falls back to the VCS stamp the
// go tool embeds in local builds.
func buildCommit() string {
	if commit != "none" {
		return commit
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return commit
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" && setting.Value != "" {
			return setting.Value
		}
	}
	return commit
}
