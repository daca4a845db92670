package router

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/vango-dev/navkit/internal/errors"
	"github.com/vango-dev/navkit/pkg/dom"
	"github.com/vango-dev/navkit/pkg/options"
)

// NavigateOptions configures navigation behavior.
type NavigateOptions struct {
	// Replace replaces the current history entry instead of pushing.
	Replace bool

	// Params are query parameters to add to the URL.
	Params map[string]any
}

// NavigateOption is a functional option for Navigate.
type NavigateOption func(*NavigateOptions)

// WithReplace replaces the current history entry instead of pushing.
func WithReplace() NavigateOption {
	return func(o *NavigateOptions) {
		o.Replace = true
	}
}

// WithParams adds query parameters to the navigation URL.
func WithParams(params map[string]any) NavigateOption {
	return func(o *NavigateOptions) {
		o.Params = params
	}
}

// NavigationRequest represents a pending navigation.
type NavigationRequest struct {
	Path    string
	Options NavigateOptions
}

// BuildURL constructs the URL for a navigation request.
func (nr *NavigationRequest) BuildURL() (string, error) {
	u, err := url.Parse(nr.Path)
	if err != nil {
		return "", fmt.Errorf("invalid path: %s", nr.Path)
	}

	if nr.Options.Params != nil {
		q := u.Query()
		for k, v := range nr.Options.Params {
			q.Set(k, fmt.Sprintf("%v", v))
		}
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}

// HistoryWindow is a window whose session history can be changed.
type HistoryWindow interface {
	dom.Window

	// PushState adds a history entry without firing events.
	PushState(href string) error

	// ReplaceState replaces the current entry without firing events.
	ReplaceState(href string) error

	// Go traverses history, firing popstate (and hashchange when the
	// fragment differs).
	Go(delta int) error

	// Dispatch delivers an event to the window's listeners.
	Dispatch(ev *dom.Event)
}

// History navigates a HistoryWindow in the way the location sources
// observe: in window mode it writes the URL and fires popstate, in hash mode
// it writes the target into the fragment and fires hashchange.
//
// History implements link.Router.
type History struct {
	win    HistoryWindow
	opts   *options.Store
	logger *slog.Logger
}

// Option configures a History.
type Option func(*History)

// WithLogger sets the router's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(h *History) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// NewHistory creates a router for win using the mode and base path in opts.
func NewHistory(win HistoryWindow, opts *options.Store, routerOpts ...Option) *History {
	h := &History{
		win:    win,
		opts:   opts,
		logger: slog.Default().With("component", "router"),
	}
	for _, opt := range routerOpts {
		opt(h)
	}
	return h
}

// Push adds a history entry for href. Failures are logged.
func (h *History) Push(href string) {
	if err := h.navigate(href, false); err != nil {
		h.logger.Warn("push failed", "href", href, "error", err)
	}
}

// Replace replaces the current history entry with href. Failures are logged.
func (h *History) Replace(href string) {
	if err := h.navigate(href, true); err != nil {
		h.logger.Warn("replace failed", "href", href, "error", err)
	}
}

// Navigate performs a client-side navigation to path.
func (h *History) Navigate(path string, opts ...NavigateOption) error {
	req := NavigationRequest{Path: path}
	for _, opt := range opts {
		opt(&req.Options)
	}

	href, err := req.BuildURL()
	if err != nil {
		return errors.New("N101").Wrap(err)
	}
	return h.navigate(href, req.Options.Replace)
}

// Back navigates back in history.
func (h *History) Back() error {
	return h.win.Go(-1)
}

// Forward navigates forward in history.
func (h *History) Forward() error {
	return h.win.Go(1)
}

func (h *History) navigate(href string, replace bool) error {
	o := h.opts.Get()

	var (
		target string
		event  string
	)
	switch o.Mode {
	case options.ModeWindow:
		target = href
		event = dom.EventPopState
	case options.ModeHash:
		pseudo, err := h.hashTarget(href, o.BasePathOr(""))
		if err != nil {
			return err
		}
		target = "#" + pseudo
		event = dom.EventHashChange
	default:
		return errors.New("N001").WithSuggestion(fmt.Sprintf("mode %q cannot be navigated", o.Mode))
	}

	var err error
	if replace {
		err = h.win.ReplaceState(target)
	} else {
		err = h.win.PushState(target)
	}
	if err != nil {
		return err
	}

	h.logger.Debug("navigated", "href", href, "mode", string(o.Mode), "replace", replace)
	h.win.Dispatch(&dom.Event{Type: event})
	return nil
}

// hashTarget converts href into the pseudo-URL stored in the fragment.
// Links that already point into the current document's fragment
// ("#/users") keep their fragment; other same-origin links contribute their
// path, query and fragment with basePath removed.
func (h *History) hashTarget(href, basePath string) (string, error) {
	doc := h.win.Location()
	base, err := url.Parse(doc.Href)
	if err != nil {
		return "", errors.New("N301").Wrap(err)
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", errors.New("N101").Wrap(err)
	}
	resolved := dom.Normalize(base.ResolveReference(ref))

	if sameDocument(resolved, base) {
		if resolved.Fragment == "" {
			return "/", nil
		}
		return dom.Fragment(resolved), nil
	}

	p := resolved.EscapedPath()
	if basePath != "" && basePath != "/" {
		trimmed := strings.TrimSuffix(basePath, "/")
		if p == trimmed || strings.HasPrefix(p, trimmed+"/") {
			p = strings.TrimPrefix(p, trimmed)
		}
	}
	if p == "" {
		p = "/"
	}
	if resolved.RawQuery != "" {
		p += "?" + resolved.RawQuery
	}
	if resolved.Fragment != "" {
		p += "#" + dom.Fragment(resolved)
	}
	return p, nil
}

func sameDocument(a, b *url.URL) bool {
	x, y := *a, *b
	x.Fragment, x.RawFragment = "", ""
	y.Fragment, y.RawFragment = "", ""
	return dom.Normalize(&x).String() == dom.Normalize(&y).String()
}
