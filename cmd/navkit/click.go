package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/navkit/pkg/dom"
	"github.com/vango-dev/navkit/pkg/link"
	"github.com/vango-dev/navkit/pkg/location"
	"github.com/vango-dev/navkit/pkg/router"
)

func clickCmd() *cobra.Command {
	var (
		flags  routingFlags
		target string
		ignore bool
		ctrl   bool
		shift  bool
		alt    bool
		meta   bool
	)

	cmd := &cobra.Command{
		Use:   "click <page-url> <href>",
		Short: "Replay a link click through the interceptor",
		Long: `Open a headless window at <page-url>, click an anchor pointing at
<href> and report whether the interceptor routed it client-side, and where
the tracker ends up.

Examples:
  navkit click https://app.test/ /users
  navkit click --mode hash https://app.test/ '/users?page=2'
  navkit click --ctrl https://app.test/ /users
  navkit click https://app.test/ https://other.test/`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			win, err := dom.NewMemoryWindow(args[0])
			if err != nil {
				return err
			}
			opts := flags.store(w)
			tracker := location.NewTracker(win, opts)
			history := router.NewHistory(win, opts)
			ic := link.New(win, history)

			// Keep the tracker's sources listening during the click.
			unsub := tracker.Location().Subscribe(func(location.Location) {})
			defer unsub()

			attrs := dom.Attrs{}
			if target != "" {
				attrs["target"] = target
			}
			if ignore {
				attrs[link.DefaultIgnoreAttribute] = "true"
			}
			anchor := dom.A(args[1], attrs)

			var mods dom.Modifiers
			if ctrl {
				mods |= dom.ModCtrl
			}
			if shift {
				mods |= dom.ModShift
			}
			if alt {
				mods |= dom.ModAlt
			}
			if meta {
				mods |= dom.ModMeta
			}

			decision, err := ic.HandleClick(&dom.Event{Type: dom.EventClick, Target: anchor, Modifiers: mods})
			if err != nil {
				return err
			}

			fmt.Fprintf(w, "  decision: %s\n", decision)
			fmt.Fprintf(w, "  href:     %s\n", win.Location().Href)
			printLocation(w, tracker.Current())
			return nil
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().StringVar(&target, "target", "", "Anchor target attribute")
	cmd.Flags().BoolVar(&ignore, "ignore", false, "Mark the anchor with "+link.DefaultIgnoreAttribute)
	cmd.Flags().BoolVar(&ctrl, "ctrl", false, "Hold Ctrl while clicking")
	cmd.Flags().BoolVar(&shift, "shift", false, "Hold Shift while clicking")
	cmd.Flags().BoolVar(&alt, "alt", false, "Hold Alt while clicking")
	cmd.Flags().BoolVar(&meta, "meta", false, "Hold Meta while clicking")

	return cmd
}
