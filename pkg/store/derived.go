package store

import (
	"encoding/json"
	"sync/atomic"
)

// Derived is a read-only view whose value is always fn(source).
// It has no setter. It subscribes to its source only while it has
// subscribers of its own.
type Derived[S, T any] struct {
	source Readable[S]
	fn     func(S) T

	// obs.mu also guards the fields below.
	obs      observers[T]
	last     T // last value forwarded to subscribers
	attached bool
	gen      uint64 // bumped on every detach
	stop     Unsubscriber

	name  string
	hooks Hooks
}

var _ Readable[string] = (*Derived[string, string])(nil)

// Derive creates a view of source mapped through fn. fn must be pure.
func Derive[S, T any](source Readable[S], fn func(S) T, opts ...Option) *Derived[S, T] {
	s := newSettings(opts)
	return &Derived[S, T]{
		source: source,
		fn:     fn,
		name:   s.name,
		hooks:  s.hooks,
	}
}

// Identity returns v unchanged.
func Identity[T any](v T) T {
	return v
}

// Name returns the name reported in hook events.
func (d *Derived[S, T]) Name() string {
	return d.name
}

// Get returns fn applied to the current source value.
func (d *Derived[S, T]) Get() T {
	return d.fn(d.source.Get())
}

// Subscribe registers fn and invokes it immediately with the current value.
// While a source round is still being delivered, the current value is the
// last one the view forwarded; later values follow in order.
func (d *Derived[S, T]) Subscribe(fn func(T)) Unsubscriber {
	seed := d.Get()

	d.obs.mu.Lock()
	first := !d.attached
	if first {
		d.attached = true
		d.last = seed
	}
	sub := d.obs.addLocked(fn)
	current := d.last
	n := len(d.obs.subs)
	gen := d.gen
	d.obs.mu.Unlock()

	if first {
		d.attach(gen)
	}
	d.hooks.emit(d.hooks.OnSubscribe, EventSubscribe, d.name, nil, n)
	fn(current)

	return func() {
		removed, left := d.obs.remove(sub)
		if !removed {
			return
		}
		d.hooks.emit(d.hooks.OnUnsubscribe, EventUnsubscribe, d.name, nil, left)
		if left == 0 {
			d.detach()
		}
	}
}

// Subscribers returns the number of active subscriptions.
func (d *Derived[S, T]) Subscribers() int {
	return d.obs.len()
}

// MarshalJSON encodes the current value.
func (d *Derived[S, T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Get())
}

// MarshalYAML encodes the current value.
func (d *Derived[S, T]) MarshalYAML() (any, error) {
	return d.Get(), nil
}

// attach subscribes upstream for the attachment started at gen. No lock is
// held across source.Subscribe, so source hooks may use d.
func (d *Derived[S, T]) attach(gen uint64) {
	// The source replays its current value on Subscribe; the seed already
	// covers it.
	var primed atomic.Bool
	stop := d.source.Subscribe(func(v S) {
		if primed.CompareAndSwap(false, true) {
			return
		}
		d.forward(v)
	})

	d.obs.mu.Lock()
	if d.attached && d.gen == gen && d.stop == nil {
		d.stop = stop
		stop = nil
	}
	d.obs.mu.Unlock()

	// Detached while subscribing upstream.
	if stop != nil {
		stop()
	}
}

func (d *Derived[S, T]) detach() {
	d.obs.mu.Lock()
	if !d.attached || len(d.obs.subs) > 0 {
		d.obs.mu.Unlock()
		return
	}
	d.attached = false
	d.gen++
	stop := d.stop
	d.stop = nil
	d.obs.mu.Unlock()

	if stop != nil {
		stop()
	}
}

func (d *Derived[S, T]) forward(v S) {
	mapped := d.fn(v)
	d.obs.mu.Lock()
	d.last = mapped
	mustDrain := d.obs.enqueueLocked(mapped)
	d.obs.mu.Unlock()

	if mustDrain {
		d.obs.drain(d.onRound)
	}
}

func (d *Derived[S, T]) onRound(v T, delivered int) {
	d.hooks.emit(d.hooks.OnNotify, EventNotify, d.name, v, delivered)
}
