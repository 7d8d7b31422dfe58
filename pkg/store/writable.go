package store

import (
	"encoding/json"
)

// Readable is a value that can be read and observed.
type Readable[T any] interface {
	// Get returns the current value.
	Get() T

	// Subscribe registers fn, invokes it once with the current value and
	// then on every change. The returned Unsubscriber removes fn.
	Subscribe(fn func(T)) Unsubscriber
}

// Writable is a mutable reactive cell.
// Safe for concurrent use, but no ordering is promised between writers on
// different goroutines.
type Writable[T any] struct {
	obs   observers[T]
	value T

	name  string
	hooks Hooks
	equal EqualFunc
}

var _ Readable[string] = (*Writable[string])(nil)

// New creates a cell holding initial.
func New[T any](initial T, opts ...Option) *Writable[T] {
	s := newSettings(opts)
	return &Writable[T]{
		value: initial,
		name:  s.name,
		hooks: s.hooks,
		equal: s.equal,
	}
}

// Name returns the name reported in hook events.
func (w *Writable[T]) Name() string {
	return w.name
}

// Get returns the current value.
func (w *Writable[T]) Get() T {
	w.obs.mu.Lock()
	defer w.obs.mu.Unlock()
	return w.value
}

// Set replaces the value and notifies subscribers before returning.
// A Set made from inside a subscriber is delivered once the current round
// completes.
func (w *Writable[T]) Set(v T) {
	w.obs.mu.Lock()
	if w.equal != nil && w.equal(w.value, v) {
		n := len(w.obs.subs)
		w.obs.mu.Unlock()
		w.hooks.emit(w.hooks.OnSet, EventSetSkipped, w.name, v, n)
		return
	}
	w.value = v
	mustDrain := w.obs.enqueueLocked(v)
	n := len(w.obs.subs)
	w.obs.mu.Unlock()

	w.hooks.emit(w.hooks.OnSet, EventSet, w.name, v, n)
	if mustDrain {
		w.obs.drain(w.onRound)
	}
}

// Update sets the value to fn applied to the current value.
func (w *Writable[T]) Update(fn func(T) T) {
	w.Set(fn(w.Get()))
}

// Subscribe registers fn and invokes it immediately with the current value.
func (w *Writable[T]) Subscribe(fn func(T)) Unsubscriber {
	w.obs.mu.Lock()
	sub := w.obs.addLocked(fn)
	current := w.value
	n := len(w.obs.subs)
	w.obs.mu.Unlock()

	w.hooks.emit(w.hooks.OnSubscribe, EventSubscribe, w.name, nil, n)
	fn(current)

	return func() {
		removed, left := w.obs.remove(sub)
		if removed {
			w.hooks.emit(w.hooks.OnUnsubscribe, EventUnsubscribe, w.name, nil, left)
		}
	}
}

// Subscribers returns the number of active subscriptions.
func (w *Writable[T]) Subscribers() int {
	return w.obs.len()
}

// MarshalJSON encodes the current value.
func (w *Writable[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.Get())
}

// MarshalYAML encodes the current value.
func (w *Writable[T]) MarshalYAML() (any, error) {
	return w.Get(), nil
}

func (w *Writable[T]) onRound(v T, delivered int) {
	w.hooks.emit(w.hooks.OnNotify, EventNotify, w.name, v, delivered)
}
