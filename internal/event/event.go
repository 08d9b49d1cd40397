// Package event provides a generic observer list.
package event

import "sync"

// Event dispatches values of type T to subscribed listeners.
//
// Dispatch is synchronous and in registration order. Listeners run outside
// the lock, so a listener may subscribe or unsubscribe during dispatch; such
// changes take effect from the next Trigger.
type Event[T any] struct {
	mu        sync.Mutex
	nextID    uint64
	listeners []listener[T]
}

type listener[T any] struct {
	id uint64
	fn func(T)
}

// Subscribe adds fn to the listener list and returns a function that removes
// it. The returned function is safe to call more than once.
func (e *Event[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	e.mu.Lock()
	e.nextID++
	id := e.nextID
	e.listeners = append(e.listeners, listener[T]{id: id, fn: fn})
	e.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { e.remove(id) })
	}
}

// Trigger calls every listener with v.
func (e *Event[T]) Trigger(v T) {
	e.mu.Lock()
	snapshot := make([]listener[T], len(e.listeners))
	copy(snapshot, e.listeners)
	e.mu.Unlock()

	for _, l := range snapshot {
		l.fn(v)
	}
}

// Len returns the number of subscribed listeners.
func (e *Event[T]) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.listeners)
}

// Clear removes every listener.
func (e *Event[T]) Clear() {
	e.mu.Lock()
	e.listeners = nil
	e.mu.Unlock()
}

func (e *Event[T]) remove(id uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, l := range e.listeners {
		if l.id == id {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			return
		}
	}
}
