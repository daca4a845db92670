package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vango-dev/navkit/pkg/location"
)

func parseCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "parse <fragment>...",
		Short: "Split path-like fragments into path, query and hash",
		Long: `Split each fragment the way the hash source does.

Examples:
  navkit parse '/users?page=2#top'
  navkit parse --json '/a?#' 'no-slash'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			locs := make([]location.Location, len(args))
			for i, arg := range args {
				locs[i] = location.Parse(arg)
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(locs)
			}
			for i, loc := range locs {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				printLocation(cmd.OutOrStdout(), loc)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print results as JSON")

	return cmd
}

func printLocation(w io.Writer, loc location.Location) {
	fmt.Fprintf(w, "  path:  %s\n", loc.Path)
	fmt.Fprintf(w, "  query: %s\n", loc.Query)
	fmt.Fprintf(w, "  hash:  %s\n", loc.Hash)
}
