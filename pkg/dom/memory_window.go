package dom

import (
	"net/url"
	"sync"

	"github.com/vango-dev/navkit/internal/errors"
)

// MemoryWindow is a headless Window with a session history. It behaves like
// a browser tab for the purposes of navigation: PushState and ReplaceState
// change the URL silently, fragment navigations and history traversal fire
// popstate and hashchange.
type MemoryWindow struct {
	events listenerSet

	mu      sync.Mutex
	entries []*url.URL
	index   int
}

// NewMemoryWindow creates a window whose document is at href.
func NewMemoryWindow(href string) (*MemoryWindow, error) {
	u, err := url.Parse(href)
	if err != nil {
		return nil, errors.New("N301").Wrap(err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, errors.New("N301").WithDetail("window URL " + href + " is not absolute")
	}
	return &MemoryWindow{entries: []*url.URL{Normalize(u)}}, nil
}

// AddEventListener implements EventTarget.
func (w *MemoryWindow) AddEventListener(eventType string, fn Listener) *Registration {
	return w.events.add(eventType, fn)
}

// ListenerCount implements EventTarget.
func (w *MemoryWindow) ListenerCount(eventType string) int {
	return w.events.count(eventType)
}

// Location implements Window.
func (w *MemoryWindow) Location() DocumentLocation {
	return LocationFromURL(w.current())
}

// Dispatch delivers ev to the window's listeners.
func (w *MemoryWindow) Dispatch(ev *Event) {
	w.events.dispatch(ev)
}

// Len returns the number of session history entries.
func (w *MemoryWindow) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.entries)
}

func (w *MemoryWindow) current() *url.URL {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.entries[w.index]
}

// resolve parses href relative to the current URL and enforces same-origin.
func (w *MemoryWindow) resolve(href string) (*url.URL, error) {
	cur := w.current()
	ref, err := url.Parse(href)
	if err != nil {
		return nil, errors.New("N301").Wrap(err)
	}
	next := Normalize(cur.ResolveReference(ref))
	if Origin(next) != Origin(cur) {
		return nil, errors.New("N302").WithDetail("cannot move from " + Origin(cur) + " to " + Origin(next))
	}
	return next, nil
}

// PushState adds a history entry for href without firing events.
func (w *MemoryWindow) PushState(href string) error {
	next, err := w.resolve(href)
	if err != nil {
		return err
	}
	w.mu.Lock()
	w.entries = append(w.entries[:w.index+1], next)
	w.index++
	w.mu.Unlock()
	return nil
}

// ReplaceState replaces the current history entry without firing events.
func (w *MemoryWindow) ReplaceState(href string) error {
	next, err := w.resolve(href)
	if err != nil {
		return err
	}
	w.mu.Lock()
	w.entries[w.index] = next
	w.mu.Unlock()
	return nil
}

// SetHash navigates to a new fragment, as assigning location.hash does.
// A "#" prefix is optional. Nothing happens when the fragment is unchanged.
func (w *MemoryWindow) SetHash(hash string) error {
	if len(hash) > 0 && hash[0] == '#' {
		hash = hash[1:]
	}
	base := *w.current()
	base.Fragment = ""
	base.RawFragment = ""
	next, err := url.Parse(base.String() + "#" + hash)
	if err != nil {
		return errors.New("N301").Wrap(err)
	}
	return w.navigateFragment(next)
}

// Assign navigates to href. Only same-document navigations that change
// nothing but the fragment are supported; they push an entry and fire
// popstate then hashchange. Other targets are pushed silently.
func (w *MemoryWindow) Assign(href string) error {
	next, err := w.resolve(href)
	if err != nil {
		return err
	}
	return w.navigateFragment(next)
}

func (w *MemoryWindow) navigateFragment(next *url.URL) error {
	next = Normalize(next)
	cur := w.current()
	if next.String() == cur.String() {
		return nil
	}

	w.mu.Lock()
	w.entries = append(w.entries[:w.index+1], next)
	w.index++
	w.mu.Unlock()

	if sameDocument(cur, next) {
		w.Dispatch(&Event{Type: EventPopState})
		w.Dispatch(&Event{Type: EventHashChange})
	}
	return nil
}

// Back moves one entry back in history.
func (w *MemoryWindow) Back() error {
	return w.Go(-1)
}

// Forward moves one entry forward in history.
func (w *MemoryWindow) Forward() error {
	return w.Go(1)
}

// Go traverses history by delta entries and fires popstate, followed by
// hashchange when the fragment differs.
func (w *MemoryWindow) Go(delta int) error {
	w.mu.Lock()
	target := w.index + delta
	if delta == 0 || target < 0 || target >= len(w.entries) {
		w.mu.Unlock()
		return errors.New("N303")
	}
	prev := w.entries[w.index]
	w.index = target
	next := w.entries[target]
	w.mu.Unlock()

	w.Dispatch(&Event{Type: EventPopState})
	if prev.Fragment != next.Fragment {
		w.Dispatch(&Event{Type: EventHashChange})
	}
	return nil
}

func sameDocument(a, b *url.URL) bool {
	x, y := *a, *b
	x.Fragment, x.RawFragment = "", ""
	y.Fragment, y.RawFragment = "", ""
	return x.String() == y.String()
}
