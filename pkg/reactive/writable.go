package reactive

import (
	"slices"
	"sync"
	"sync/atomic"
)

// subscriber is a registered callback. removed is checked during a
// notification pass so a callback unsubscribed mid-pass is not called.
type subscriber[T any] struct {
	id      uint64
	fn      func(T)
	removed atomic.Bool
}

// Writable is a reactive value that any holder can set.
type Writable[T any] struct {
	// startMu serializes the 0->1 and 1->0 transitions so that start and
	// stop never overlap and a subscriber never sees a half-started value.
	// It is held while start and stop run; mu is not.
	startMu sync.Mutex

	// mu protects every field below.
	mu sync.Mutex

	value T
	subs  []*subscriber[T]

	// start and stop implement lazy activation. active is true from the
	// first subscription until the last subscriber leaves.
	start  StartFunc[T]
	stop   Stop
	active bool

	// equal suppresses notifications for unchanged values. nil means every
	// Set notifies.
	equal func(T, T) bool

	// notifying is set while a notification pass runs. dirty records that
	// the value changed again during the pass.
	notifying bool
	dirty     bool
}

// NewWritable creates a value with an optional StartFunc.
func NewWritable[T any](initial T, start StartFunc[T]) *Writable[T] {
	return &Writable[T]{
		value: initial,
		start: start,
	}
}

// Subscribe implements Readable.
func (w *Writable[T]) Subscribe(fn func(T)) Unsubscribe {
	if fn == nil {
		return func() {}
	}

	w.startMu.Lock()
	w.mu.Lock()
	first := !w.active
	w.active = true
	w.mu.Unlock()

	// Values set by start before the subscriber is registered are not
	// delivered separately; the subscriber receives the latest one below.
	if first && w.start != nil {
		stop := w.start(w.Set)
		w.mu.Lock()
		w.stop = stop
		w.mu.Unlock()
	}

	sub := &subscriber[T]{id: nextID(), fn: fn}

	w.mu.Lock()
	w.subs = append(w.subs, sub)
	value := w.value
	w.mu.Unlock()
	w.startMu.Unlock()

	fn(value)

	var once sync.Once
	return func() {
		once.Do(func() { w.unsubscribe(sub) })
	}
}

// unsubscribe removes sub and runs stop on the 1->0 transition.
func (w *Writable[T]) unsubscribe(sub *subscriber[T]) {
	sub.removed.Store(true)

	w.startMu.Lock()
	defer w.startMu.Unlock()

	w.mu.Lock()
	for i, existing := range w.subs {
		if existing.id == sub.id {
			w.subs = slices.Delete(w.subs, i, i+1)
			break
		}
	}

	var stop Stop
	if len(w.subs) == 0 && w.active {
		w.active = false
		stop = w.stop
		w.stop = nil
	}
	w.mu.Unlock()

	if stop != nil {
		stop()
	}
}

// Set stores value and notifies subscribers.
func (w *Writable[T]) Set(value T) {
	w.mu.Lock()
	if w.equal != nil && w.equal(w.value, value) {
		w.mu.Unlock()
		return
	}
	w.value = value
	if w.notifying {
		w.dirty = true
		w.mu.Unlock()
		return
	}
	w.notifying = true
	w.mu.Unlock()

	w.flush()
}

// Update sets the value to fn applied to the current value.
func (w *Writable[T]) Update(fn func(T) T) {
	w.Set(fn(w.Peek()))
}

// flush delivers the current value to a snapshot of the subscribers,
// repeating while Sets keep arriving during delivery.
func (w *Writable[T]) flush() {
	for {
		w.mu.Lock()
		value := w.value
		subs := make([]*subscriber[T], len(w.subs))
		copy(subs, w.subs)
		w.dirty = false
		w.mu.Unlock()

		for _, sub := range subs {
			if sub.removed.Load() {
				continue
			}
			sub.fn(value)
		}

		w.mu.Lock()
		if !w.dirty {
			w.notifying = false
			w.mu.Unlock()
			return
		}
		w.mu.Unlock()
	}
}

// Get implements Readable.
func (w *Writable[T]) Get() T {
	var value T
	unsub := w.Subscribe(func(v T) { value = v })
	unsub()
	return value
}

// Peek returns the stored value without subscribing or activating.
func (w *Writable[T]) Peek() T {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.value
}

// SubscriberCount returns the number of active subscriptions.
func (w *Writable[T]) SubscriberCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.subs)
}

// Active reports whether the value currently has subscribers.
func (w *Writable[T]) Active() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.active
}

// WithEquals returns the value configured with an equality function.
// Sets of a value equal to the current one are then dropped.
func (w *Writable[T]) WithEquals(fn func(T, T) bool) *Writable[T] {
	w.mu.Lock()
	w.equal = fn
	w.mu.Unlock()
	return w
}
