package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/navkit/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌┐┌┌─┐┬  ┬┬┌─┬┌┬┐
  │││├─┤└┐┌┘├┴┐│ │
  ┘└┘┴ ┴ └┘ ┴ ┴┴ ┴
`

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		verbose bool
		noColor bool
	)

	rootCmd := &cobra.Command{
		Use:   "navkit",
		Short: "Location tracking and link interception for single-page apps",
		Long: `navkit derives the current path, query and hash of a single-page
application from either the navigation history or the URL hash, and routes
same-origin link clicks client-side.

The CLI exercises the library against a headless window and serves
built applications with history-mode fallback:

  • parse    split a path-like fragment
  • locate   show what the tracker reports for a URL
  • click    replay a link click through the interceptor
  • serve    serve a build directory
  • config   manage navkit.json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd.ErrOrStderr(), verbose)
			if noColor {
				errors.DisableColors()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored error output")

	rootCmd.AddCommand(
		parseCmd(),
		locateCmd(),
		clickCmd(),
		serveCmd(),
		configCmd(),
		versionCmd(),
	)

	return rootCmd
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// printBanner prints the navkit banner.
func printBanner(w io.Writer) {
	fmt.Fprint(w, banner)
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
