package location

import (
	"log/slog"
	"sync"

	"github.com/vango-dev/navkit/internal/errors"
	"github.com/vango-dev/navkit/pkg/dom"
	"github.com/vango-dev/navkit/pkg/metrics"
	"github.com/vango-dev/navkit/pkg/options"
	"github.com/vango-dev/navkit/pkg/reactive"
)

// Tracker owns the location sources of one window and publishes the one
// selected by the options' mode.
type Tracker struct {
	opts   *options.Store
	window *Source
	hash   *Source

	selected *reactive.ReadOnly[Location]
	path     *reactive.ReadOnly[string]
	query    *reactive.ReadOnly[string]
	fragment *reactive.ReadOnly[string]

	logger  *slog.Logger
	metrics *metrics.Collectors

	// warned records unknown modes already logged.
	warnedMu sync.Mutex
	warned   map[options.Mode]bool
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithLogger sets the tracker's logger.
func WithLogger(logger *slog.Logger) TrackerOption {
	return func(t *Tracker) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMetrics records listener activity on m.
func WithMetrics(m *metrics.Collectors) TrackerOption {
	return func(t *Tracker) {
		t.metrics = m
	}
}

// NewTracker creates a tracker for win driven by opts.
func NewTracker(win dom.Window, opts *options.Store, trackerOpts ...TrackerOption) *Tracker {
	t := &Tracker{
		opts:   opts,
		logger: slog.Default().With("component", "location"),
		warned: make(map[options.Mode]bool),
	}
	for _, opt := range trackerOpts {
		opt(t)
	}

	t.window = newSource(SourceWindow, dom.EventPopState, win, WindowLocation, t.logger, t.metrics)
	t.hash = newSource(SourceHash, dom.EventHashChange, win, HashLocation, t.logger, t.metrics)

	t.selected = reactive.DeriveSet3[options.Options, Location, Location, Location](
		opts, t.window, t.hash, Root, t.selectLocation,
	)

	t.path = reactive.Derive[Location, string](t.selected, func(l Location) string { return l.Path })
	t.query = reactive.Derive[Location, string](t.selected, func(l Location) string { return l.Query })
	t.fragment = reactive.Derive[Location, string](t.selected, func(l Location) string { return l.Hash })

	return t
}

// selectLocation publishes the source matching the mode. Unknown modes
// publish nothing, so the last selected location stays in place.
func (t *Tracker) selectLocation(o options.Options, win, hash Location, set func(Location)) {
	switch o.Mode {
	case options.ModeWindow:
		set(win)
	case options.ModeHash:
		set(hash)
	default:
		t.warnUnknownMode(o.Mode)
	}
}

func (t *Tracker) warnUnknownMode(mode options.Mode) {
	t.warnedMu.Lock()
	seen := t.warned[mode]
	t.warned[mode] = true
	t.warnedMu.Unlock()

	if !seen {
		err := errors.New("N001")
		t.logger.Warn("location updates paused", "mode", string(mode), "code", err.Code, "error", err.Message)
	}
}

// Options returns the store driving the tracker.
func (t *Tracker) Options() *options.Store {
	return t.opts
}

// WindowSource returns the source tracking the real navigation history.
func (t *Tracker) WindowSource() *Source {
	return t.window
}

// HashSource returns the source tracking the hash pseudo-URL.
func (t *Tracker) HashSource() *Source {
	return t.hash
}

// Location returns the selected location.
func (t *Tracker) Location() *reactive.ReadOnly[Location] {
	return t.selected
}

// Path returns the selected location's path. It notifies on every location
// change, even when the path itself is unchanged.
func (t *Tracker) Path() *reactive.ReadOnly[string] {
	return t.path
}

// Query returns the selected location's query, "?"-prefixed or empty.
func (t *Tracker) Query() *reactive.ReadOnly[string] {
	return t.query
}

// Hash returns the selected location's hash, "#"-prefixed or empty.
func (t *Tracker) Hash() *reactive.ReadOnly[string] {
	return t.fragment
}

// Current returns a snapshot of the selected location.
func (t *Tracker) Current() Location {
	return t.selected.Get()
}
