package dom

import (
	"reflect"
	"testing"

	"github.com/vango-dev/navkit/internal/errors"
)

func newTestWindow(t *testing.T, href string) (*MemoryWindow, *[]string) {
	t.Helper()
	w, err := NewMemoryWindow(href)
	if err != nil {
		t.Fatalf("NewMemoryWindow(%q): %v", href, err)
	}
	var events []string
	w.AddEventListener(EventPopState, func(ev *Event) { events = append(events, ev.Type) })
	w.AddEventListener(EventHashChange, func(ev *Event) { events = append(events, ev.Type) })
	return w, &events
}

func TestNewMemoryWindowRejectsRelative(t *testing.T) {
	for _, href := range []string{"/just/a/path", "example.com", "http://[::1"} {
		if _, err := NewMemoryWindow(href); !errors.HasCode(err, "N301") {
			t.Errorf("NewMemoryWindow(%q) error = %v, want N301", href, err)
		}
	}
}

func TestPushAndReplaceStateAreSilent(t *testing.T) {
	w, events := newTestWindow(t, "http://app.test/")

	if err := w.PushState("/users?page=2"); err != nil {
		t.Fatal(err)
	}
	loc := w.Location()
	if loc.Pathname != "/users" || loc.Search != "?page=2" {
		t.Errorf("Location() = %+v", loc)
	}

	if err := w.ReplaceState("/users#top"); err != nil {
		t.Fatal(err)
	}
	if w.Location().Href != "http://app.test/users#top" {
		t.Errorf("Href = %q", w.Location().Href)
	}
	if w.Len() != 2 {
		t.Errorf("Len() = %d, want 2", w.Len())
	}
	if len(*events) != 0 {
		t.Errorf("events = %v, want none", *events)
	}
}

func TestPushStateRejectsCrossOrigin(t *testing.T) {
	w, _ := newTestWindow(t, "http://app.test/")
	if err := w.PushState("https://other.test/"); !errors.HasCode(err, "N302") {
		t.Errorf("PushState() error = %v, want N302", err)
	}
}

func TestSetHashFiresEvents(t *testing.T) {
	w, events := newTestWindow(t, "http://app.test/index.html")

	if err := w.SetHash("#/settings?tab=2"); err != nil {
		t.Fatal(err)
	}
	if got := w.Location().Hash; got != "#/settings?tab=2" {
		t.Errorf("Hash = %q", got)
	}
	if !reflect.DeepEqual(*events, []string{EventPopState, EventHashChange}) {
		t.Errorf("events = %v", *events)
	}

	*events = nil
	if err := w.SetHash("/settings?tab=2"); err != nil {
		t.Fatal(err)
	}
	if len(*events) != 0 {
		t.Errorf("unchanged hash fired %v", *events)
	}
}

func TestAssignOtherDocumentIsSilent(t *testing.T) {
	w, events := newTestWindow(t, "http://app.test/a")

	if err := w.Assign("/b"); err != nil {
		t.Fatal(err)
	}
	if w.Location().Pathname != "/b" {
		t.Errorf("Pathname = %q", w.Location().Pathname)
	}
	if len(*events) != 0 {
		t.Errorf("events = %v, want none", *events)
	}

	if err := w.Assign("#x"); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(*events, []string{EventPopState, EventHashChange}) {
		t.Errorf("events = %v", *events)
	}
}

func TestHistoryTraversal(t *testing.T) {
	w, events := newTestWindow(t, "http://app.test/")

	_ = w.PushState("/one")
	_ = w.SetHash("frag")
	*events = nil

	if err := w.Back(); err != nil {
		t.Fatal(err)
	}
	if w.Location().Href != "http://app.test/one" {
		t.Errorf("Href = %q", w.Location().Href)
	}
	if !reflect.DeepEqual(*events, []string{EventPopState, EventHashChange}) {
		t.Errorf("events = %v", *events)
	}

	*events = nil
	if err := w.Back(); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(*events, []string{EventPopState}) {
		t.Errorf("events = %v", *events)
	}

	if err := w.Back(); !errors.HasCode(err, "N303") {
		t.Errorf("Back() at start error = %v, want N303", err)
	}

	if err := w.Forward(); err != nil {
		t.Fatal(err)
	}
	if w.Location().Pathname != "/one" {
		t.Errorf("Pathname = %q", w.Location().Pathname)
	}

	_ = w.PushState("/two")
	if err := w.Forward(); !errors.HasCode(err, "N303") {
		t.Errorf("Forward() after push error = %v, want N303", err)
	}
	if w.Len() != 3 {
		t.Errorf("Len() = %d, want 3", w.Len())
	}
}
