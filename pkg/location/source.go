package location

import (
	"log/slog"

	"github.com/vango-dev/navkit/pkg/dom"
	"github.com/vango-dev/navkit/pkg/metrics"
	"github.com/vango-dev/navkit/pkg/reactive"
)

// Source names, used in logs and metric labels.
const (
	SourceWindow = "window"
	SourceHash   = "hash"
)

// Source is a reactive Location producer tied to one window event.
type Source = reactive.ReadOnly[Location]

// WindowLocation reads the window's pathname, search and hash as they are.
func WindowLocation(win dom.Window) Location {
	loc := win.Location()
	return Location{Path: loc.Pathname, Query: loc.Search, Hash: loc.Hash}
}

// HashLocation reads the pseudo-URL carried in the window's hash fragment.
func HashLocation(win dom.Window) Location {
	return parseHashFragment(win.Location().Hash)
}

// NewWindowSource tracks the real navigation history of win, refreshing on
// popstate.
func NewWindowSource(win dom.Window) *Source {
	return newSource(SourceWindow, dom.EventPopState, win, WindowLocation, slog.Default(), nil)
}

// NewHashSource tracks the hash pseudo-URL of win, refreshing on
// hashchange.
func NewHashSource(win dom.Window) *Source {
	return newSource(SourceHash, dom.EventHashChange, win, HashLocation, slog.Default(), nil)
}

// newSource builds a value whose window listener exists only while the
// value has subscribers. The location is re-read on activation so a source
// that was idle while the window navigated does not start out stale.
func newSource(name, event string, win dom.Window, read func(dom.Window) Location, logger *slog.Logger, m *metrics.Collectors) *Source {
	return reactive.NewReadable(read(win), func(set func(Location)) reactive.Stop {
		set(read(win))

		reg := win.AddEventListener(event, func(*dom.Event) {
			m.LocationUpdated(name)
			set(read(win))
		})
		m.ListenerAcquired(name)
		logger.Debug("location listener registered", "source", name, "event", event)

		return func() {
			reg.Remove()
			m.ListenerReleased(name)
			logger.Debug("location listener removed", "source", name, "event", event)
		}
	})
}
