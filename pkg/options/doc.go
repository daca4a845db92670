// Package options holds the routing configuration shared by the location
// tracker and the router: which location source is active (Mode) and an
// optional base path.
//
//	opts := options.New(options.Default())
//	opts.Set(options.WithMode(options.ModeHash))
//
// Set performs a shallow merge of the given fields and notifies every
// subscriber synchronously. Mode is not validated; a value other than
// ModeWindow or ModeHash is stored and propagated as is.
package options
