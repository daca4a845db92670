package dom

import (
	"slices"
	"sync"
)

// Event types used by navigation code.
const (
	EventClick      = "click"
	EventPopState   = "popstate"
	EventHashChange = "hashchange"
)

// Modifiers is a bitmask of keyboard modifiers held during an event.
type Modifiers uint8

const (
	ModCtrl  Modifiers = 0x01
	ModShift Modifiers = 0x02
	ModAlt   Modifiers = 0x04
	ModMeta  Modifiers = 0x08
)

// Has returns true if the specified modifier is set.
func (m Modifiers) Has(mod Modifiers) bool {
	return m&mod != 0
}

// Any returns true if any modifier is set.
func (m Modifiers) Any() bool {
	return m != 0
}

// Event is a dispatched DOM event.
type Event struct {
	Type      string
	Target    Node
	Modifiers Modifiers

	defaultPrevented   bool
	propagationStopped bool
}

// PreventDefault cancels the host's default action (e.g. following a link).
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// StopPropagation prevents delivery to further ancestors.
func (e *Event) StopPropagation() {
	e.propagationStopped = true
}

// Listener handles an event.
type Listener func(*Event)

// EventTarget is anything listeners can be attached to.
type EventTarget interface {
	// AddEventListener registers fn for eventType. The returned
	// Registration removes it again.
	AddEventListener(eventType string, fn Listener) *Registration

	// ListenerCount returns how many listeners are registered for eventType.
	ListenerCount(eventType string) int
}

// Registration is a handle to a registered listener.
type Registration struct {
	once   sync.Once
	remove func()
}

// Remove unregisters the listener. It is safe to call more than once.
func (r *Registration) Remove() {
	if r == nil {
		return
	}
	r.once.Do(func() {
		if r.remove != nil {
			r.remove()
		}
	})
}

type listenerEntry struct {
	id uint64
	fn Listener
}

// listenerSet is the shared EventTarget bookkeeping.
type listenerSet struct {
	mu     sync.Mutex
	nextID uint64
	byType map[string][]listenerEntry
}

func (s *listenerSet) add(eventType string, fn Listener) *Registration {
	if fn == nil {
		return &Registration{}
	}

	s.mu.Lock()
	if s.byType == nil {
		s.byType = make(map[string][]listenerEntry)
	}
	s.nextID++
	id := s.nextID
	s.byType[eventType] = append(s.byType[eventType], listenerEntry{id: id, fn: fn})
	s.mu.Unlock()

	return &Registration{remove: func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		entries := s.byType[eventType]
		for i, e := range entries {
			if e.id == id {
				s.byType[eventType] = slices.Delete(entries, i, i+1)
				return
			}
		}
	}}
}

func (s *listenerSet) count(eventType string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byType[eventType])
}

// dispatch calls a snapshot of the listeners outside the lock.
func (s *listenerSet) dispatch(ev *Event) {
	s.mu.Lock()
	entries := slices.Clone(s.byType[ev.Type])
	s.mu.Unlock()

	for _, e := range entries {
		e.fn(ev)
	}
}
