// Package router provides a reference implementation of the navigation
// side of client-side routing.
//
// History writes to a window's session history in the shape the location
// sources expect:
//
//	opts := options.New(options.Default())
//	h := router.NewHistory(win, opts)
//	h.Push("/users")                       // pushState + popstate
//
//	opts.Set(options.WithMode(options.ModeHash))
//	h.Push("/users?page=2")                // #/users?page=2 + hashchange
//
// History satisfies link.Router, so it can be handed straight to a
// link.Interceptor. Link, NativeLink and NewTabLink build anchors with the
// attributes the interceptor understands.
package router
