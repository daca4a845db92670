// Package errors provides structured, coded errors for navkit.
//
// Every error carries a short code (e.g. "N101") that maps to a registered
// template with a category, a one-line message, a longer explanation and a
// documentation link. Callers decorate the template with a suggestion or a
// wrapped cause:
//
//	err := errors.New("N101").
//	    WithDetail(fmt.Sprintf("href %q could not be resolved", href)).
//	    Wrap(parseErr)
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR N101: Invalid link href
//	//
//	//   href "http://[::1" could not be resolved
//	//
//	//   Learn more: https://navkit.dev/docs/errors/N101
//
// # Error Categories
//
//   - config: navkit.json loading and validation
//   - routing: options and location tracking
//   - link: anchor click interception
//   - host: the window/document the library is bound to
//   - cli: command line failures
package errors
