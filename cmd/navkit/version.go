package main

import (
	"encoding/json"
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// buildInfo describes the running binary.
type buildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// currentBuild reports the linker-injected version, falling back to the
// module version recorded by `go install`.
func currentBuild() buildInfo {
	b := buildInfo{
		Version:   version,
		Commit:    commit,
		Date:      date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if b.Version == "dev" {
		if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			b.Version = bi.Main.Version
		}
	}
	return b
}

func versionCmd() *cobra.Command {
	var (
		short  bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print version, commit, and build information for the navkit CLI.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			b := currentBuild()

			switch {
			case short:
				fmt.Fprintln(w, b.Version)
			case asJSON:
				return json.NewEncoder(w).Encode(b)
			default:
				printBanner(w)
				fmt.Fprintln(w)
				fmt.Fprintf(w, "  Version:    %s\n", b.Version)
				fmt.Fprintf(w, "  Commit:     %s\n", b.Commit)
				fmt.Fprintf(w, "  Built:      %s\n", b.Date)
				fmt.Fprintf(w, "  Go version: %s\n", b.GoVersion)
				fmt.Fprintf(w, "  OS/Arch:    %s\n", b.Platform)
				fmt.Fprintln(w)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print only version number")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print build information as JSON")

	return cmd
}
