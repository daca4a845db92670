// Package location tracks the current path, query and hash of a single-page
// application.
//
// Two sources produce Location values from a dom.Window:
//
//   - the window source reads pathname/search/hash and refreshes on popstate
//   - the hash source reads a pseudo-URL from the hash fragment
//     ("#/users?page=2#bio") and refreshes on hashchange
//
// A Tracker combines both with an options.Store and publishes whichever
// source matches the configured mode:
//
//	opts := options.New(options.Default())
//	tr := location.NewTracker(win, opts)
//
//	unsub := tr.Path().Subscribe(func(p string) {
//	    fmt.Println("path is now", p)
//	})
//	defer unsub()
//
//	opts.Set(options.WithMode(options.ModeHash)) // Path now follows the hash
//
// Sources register their window listener only while something subscribes
// to them (directly or through the tracker), and remove it when the last
// subscriber leaves.
//
// When the mode is neither "window" nor "hash" the tracker stops publishing
// and keeps the last location it saw until a known mode is set again.
package location
