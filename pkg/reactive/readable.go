package reactive

// Unsubscribe removes a subscription. Calling it more than once is a no-op.
type Unsubscribe func()

// Stop releases whatever a StartFunc acquired.
type Stop func()

// StartFunc runs when a value gains its first subscriber. The setter it
// receives publishes new values; the returned Stop (which may be nil) runs
// when the last subscriber leaves. Concurrent subscribers wait for a running
// StartFunc, so it must not subscribe to or unsubscribe from its own value.
type StartFunc[T any] func(set func(T)) Stop

// Readable is the read side of a reactive value.
type Readable[T any] interface {
	// Subscribe registers fn, calls it with the current value, and then
	// calls it again on every change until the returned Unsubscribe runs.
	Subscribe(fn func(T)) Unsubscribe

	// Get returns the current value. An inactive value is briefly activated
	// so lazily tracked sources report fresh state.
	Get() T
}

// ReadOnly exposes a Writable's read side only.
type ReadOnly[T any] struct {
	w *Writable[T]
}

// NewReadable creates a value that can only be changed by its StartFunc.
func NewReadable[T any](initial T, start StartFunc[T]) *ReadOnly[T] {
	return &ReadOnly[T]{w: NewWritable(initial, start)}
}

// Subscribe implements Readable.
func (r *ReadOnly[T]) Subscribe(fn func(T)) Unsubscribe {
	return r.w.Subscribe(fn)
}

// Get implements Readable.
func (r *ReadOnly[T]) Get() T {
	return r.w.Get()
}

// Peek returns the last published value without activating the value.
func (r *ReadOnly[T]) Peek() T {
	return r.w.Peek()
}

// SubscriberCount returns the number of active subscriptions.
func (r *ReadOnly[T]) SubscriberCount() int {
	return r.w.SubscriberCount()
}

// Active reports whether the StartFunc is currently holding its resources.
func (r *ReadOnly[T]) Active() bool {
	return r.w.Active()
}

// WithEquals configures an equality function used to suppress redundant
// notifications.
func (r *ReadOnly[T]) WithEquals(fn func(T, T) bool) *ReadOnly[T] {
	r.w.WithEquals(fn)
	return r
}
