package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vango-dev/navkit/pkg/dom"
	"github.com/vango-dev/navkit/pkg/location"
	"github.com/vango-dev/navkit/pkg/options"
)

// routingFlags are the options flags shared by commands that run a tracker.
type routingFlags struct {
	mode string
	base string
}

func (f *routingFlags) register(flags *pflag.FlagSet) {
	flags.StringVarP(&f.mode, "mode", "m", string(options.ModeWindow), `Routing mode, "window" or "hash"`)
	flags.StringVar(&f.base, "base", "", "Base path the application is mounted under")
}

// store builds the options store, warning about modes the tracker ignores.
func (f *routingFlags) store(w io.Writer) *options.Store {
	o := options.Options{Mode: options.Mode(f.mode)}
	if !o.Mode.Known() {
		warn(w, "mode %q is not window or hash; the location will stay at its initial value", f.mode)
	}
	if f.base != "" {
		base := f.base
		o.BasePath = &base
	}
	return options.New(o)
}

func locateCmd() *cobra.Command {
	var flags routingFlags

	cmd := &cobra.Command{
		Use:   "locate <url>",
		Short: "Show the location the tracker reports for a URL",
		Long: `Open a headless window at <url> and print the location selected
by the tracker for the given routing mode.

Examples:
  navkit locate 'https://app.test/users?page=2#top'
  navkit locate --mode hash 'https://app.test/index.html#/users?page=2'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			win, err := dom.NewMemoryWindow(args[0])
			if err != nil {
				return err
			}
			opts := flags.store(cmd.OutOrStdout())
			tracker := location.NewTracker(win, opts)

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "  mode:  %s\n", opts.Get().Mode)
			printLocation(w, tracker.Current())
			return nil
		},
	}

	flags.register(cmd.Flags())

	return cmd
}
