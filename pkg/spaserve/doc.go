// Package spaserve serves a single-page application's build output.
//
// History-mode routing produces URLs such as /users/42 that exist only in
// the client. A Server answers those deep links with the app shell so the
// location tracker can take over after load:
//
//	srv, err := spaserve.New(spaserve.Config{Dir: "dist", BasePath: "/app/"})
//	if err != nil {
//		return err
//	}
//	http.ListenAndServe(":8080", srv)
//
// Requests for files that exist are served directly. GET and HEAD requests
// for extensionless paths fall back to the index document. Anything else,
// including traversal attempts, is a 404.
package spaserve
