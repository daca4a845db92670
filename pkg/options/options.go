package options

import (
	"github.com/vango-dev/navkit/pkg/reactive"
)

// Mode selects the active location source.
type Mode string

const (
	// ModeWindow tracks the real navigation history (pathname, search, hash).
	ModeWindow Mode = "window"

	// ModeHash tracks a pseudo-URL carried in the hash fragment.
	ModeHash Mode = "hash"
)

// Known reports whether m is one of the supported modes.
func (m Mode) Known() bool {
	return m == ModeWindow || m == ModeHash
}

// Options is the routing configuration.
type Options struct {
	// Mode selects the active location source.
	Mode Mode

	// BasePath is passed through to consumers. nil means no base path.
	BasePath *string
}

// Default returns window mode with no base path.
func Default() Options {
	return Options{Mode: ModeWindow}
}

// BasePathOr returns the base path, or fallback when unset.
func (o Options) BasePathOr(fallback string) string {
	if o.BasePath == nil {
		return fallback
	}
	return *o.BasePath
}

// Option changes one field during Set.
type Option func(*Options)

// WithMode sets Mode.
func WithMode(m Mode) Option {
	return func(o *Options) {
		o.Mode = m
	}
}

// WithBasePath sets BasePath.
func WithBasePath(p string) Option {
	return func(o *Options) {
		o.BasePath = &p
	}
}

// WithoutBasePath clears BasePath.
func WithoutBasePath() Option {
	return func(o *Options) {
		o.BasePath = nil
	}
}

// Partial lists fields to merge; nil fields are left untouched.
type Partial struct {
	Mode *Mode

	// BasePath, when non-nil, replaces Options.BasePath; a nil inner
	// pointer clears it.
	BasePath **string
}

// Merge applies every non-nil field of p.
func Merge(p Partial) Option {
	return func(o *Options) {
		if p.Mode != nil {
			o.Mode = *p.Mode
		}
		if p.BasePath != nil {
			o.BasePath = *p.BasePath
		}
	}
}

// Store is a reactive holder of Options.
type Store struct {
	w *reactive.Writable[Options]
}

// New creates a store holding initial.
func New(initial Options) *Store {
	return &Store{w: reactive.NewWritable(initial, nil)}
}

// Subscribe delivers the current options immediately and then after every
// Set. It implements reactive.Readable[Options].
func (s *Store) Subscribe(fn func(Options)) reactive.Unsubscribe {
	return s.w.Subscribe(fn)
}

// Get returns the current options.
func (s *Store) Get() Options {
	return s.w.Peek()
}

// Set merges the given changes into the current options and notifies all
// subscribers, even when no field changed.
func (s *Store) Set(changes ...Option) {
	s.w.Update(func(o Options) Options {
		for _, change := range changes {
			if change != nil {
				change(&o)
			}
		}
		return o
	})
}

// SubscriberCount returns the number of active subscriptions.
func (s *Store) SubscriberCount() int {
	return s.w.SubscriberCount()
}
