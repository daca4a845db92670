package router_test

import (
	"reflect"
	"testing"

	"github.com/vango-dev/navkit/pkg/dom"
	"github.com/vango-dev/navkit/pkg/link"
	"github.com/vango-dev/navkit/pkg/location"
	"github.com/vango-dev/navkit/pkg/options"
	"github.com/vango-dev/navkit/pkg/router"
)

func TestClicksDriveTrackedLocation(t *testing.T) {
	for _, mode := range []options.Mode{options.ModeWindow, options.ModeHash} {
		t.Run(string(mode), func(t *testing.T) {
			win, err := dom.NewMemoryWindow("http://app.test/")
			if err != nil {
				t.Fatal(err)
			}
			opts := options.New(options.Options{Mode: mode})
			tracker := location.NewTracker(win, opts)
			history := router.NewHistory(win, opts)

			users := router.Link("/users?page=2")
			native := router.NativeLink("/logout")
			root := dom.El("body", nil, users, native)

			handle := link.New(win, history).Attach(root)
			defer handle.Detach()

			var paths []string
			unsub := tracker.Path().Subscribe(func(p string) { paths = append(paths, p) })
			defer unsub()

			if ev := dom.Click(users, 0); !ev.DefaultPrevented() {
				t.Error("users link should be intercepted")
			}
			if ev := dom.Click(native, 0); ev.DefaultPrevented() {
				t.Error("native link should pass through")
			}

			want := location.Location{Path: "/users", Query: "?page=2"}
			if got := tracker.Current(); got != want {
				t.Errorf("Current() = %+v, want %+v", got, want)
			}
			if !reflect.DeepEqual(paths, []string{"/", "/users"}) {
				t.Errorf("paths = %v", paths)
			}

			if err := history.Back(); err != nil {
				t.Fatal(err)
			}
			if got := tracker.Current().Path; got != "/" {
				t.Errorf("Path after Back = %q, want /", got)
			}
		})
	}
}

func TestHashModeKeepsNestedFragment(t *testing.T) {
	win, err := dom.NewMemoryWindow("http://app.test/")
	if err != nil {
		t.Fatal(err)
	}
	opts := options.New(options.Options{Mode: options.ModeHash})
	tracker := location.NewTracker(win, opts)
	history := router.NewHistory(win, opts)

	unsub := tracker.Location().Subscribe(func(location.Location) {})
	defer unsub()

	history.Push("http://app.test/docs?x=1#sec")

	want := location.Location{Path: "/docs", Query: "?x=1", Hash: "#sec"}
	if got := tracker.Current(); got != want {
		t.Errorf("Current() = %+v, want %+v", got, want)
	}
	if got := win.Location().Href; got != "http://app.test/#/docs?x=1#sec" {
		t.Errorf("Href = %q", got)
	}
}
