// Package events provides a small synchronous event emitter that satisfies
// deprecate.Emitter.
//
// Listeners run in registration order on the emitting goroutine. Emit stops
// at the first listener error and returns it. Listeners may register new
// listeners or emit other events; those changes apply to later emissions.
package events

import (
	"slices"
	"sync"
)

// Key names an event. Prefer package-level constants.
type Key = string

// Listener handles one emission of an event.
type Listener = func(args ...any) error

// Emitter is a string-keyed event emitter. The zero value is ready to use.
type Emitter struct {
	mu        sync.RWMutex
	listeners map[Key][]Listener
}

// New returns an empty Emitter.
func New() *Emitter {
	return &Emitter{listeners: make(map[Key][]Listener)}
}

// On appends listener to event. A nil listener is ignored.
func (e *Emitter) On(event Key, listener Listener) {
	if listener == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.listeners == nil {
		e.listeners = make(map[Key][]Listener)
	}
	e.listeners[event] = append(e.listeners[event], listener)
}

// Emit calls every listener of event with args and returns the first error.
// It returns nil when event has no listeners.
func (e *Emitter) Emit(event Key, args ...any) error {
	e.mu.RLock()
	snapshot := slices.Clone(e.listeners[event])
	e.mu.RUnlock()

	for _, listener := range snapshot {
		if err := listener(args...); err != nil {
			return err
		}
	}
	return nil
}

// ListenerCount returns the number of listeners registered on event.
func (e *Emitter) ListenerCount(event Key) int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.listeners[event])
}

// RemoveAll drops every listener of event.
func (e *Emitter) RemoveAll(event Key) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.listeners, event)
}
