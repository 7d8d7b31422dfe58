package store

import (
	"sync"
	"sync/atomic"
)

// Unsubscriber removes a subscription. Calling it more than once is a no-op.
type Unsubscriber func()

type subscription[T any] struct {
	id     uint64
	fn     func(T)
	active atomic.Bool
}

// queued is one pending round: a value and the subscribers registered when
// it was written. A subscriber that joins later already received the value
// through its immediate call.
type queued[T any] struct {
	v    T
	subs []*subscription[T]
}

// observers is an ordered subscriber list with a pending-value queue.
// Values enqueued while a round is being delivered wait for that round to
// finish, so every subscriber sees writes in write order.
//
// mu also guards the value of the owning store.
type observers[T any] struct {
	mu          sync.Mutex
	nextID      uint64
	subs        []*subscription[T]
	pending     []queued[T]
	dispatching bool
}

// addLocked registers fn. The caller must hold o.mu.
func (o *observers[T]) addLocked(fn func(T)) *subscription[T] {
	o.nextID++
	sub := &subscription[T]{id: o.nextID, fn: fn}
	sub.active.Store(true)
	o.subs = append(o.subs, sub)
	return sub
}

// remove unregisters sub and returns the remaining count.
// It reports false if sub was already removed.
func (o *observers[T]) remove(sub *subscription[T]) (bool, int) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !sub.active.CompareAndSwap(true, false) {
		return false, len(o.subs)
	}
	for i, s := range o.subs {
		if s.id == sub.id {
			// Queued rounds and a round in flight keep the old slice.
			next := make([]*subscription[T], 0, len(o.subs)-1)
			next = append(next, o.subs[:i]...)
			o.subs = append(next, o.subs[i+1:]...)
			break
		}
	}
	return true, len(o.subs)
}

func (o *observers[T]) len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.subs)
}

// enqueueLocked queues v and reports whether the caller must drain.
// The caller must hold o.mu.
func (o *observers[T]) enqueueLocked(v T) bool {
	o.pending = append(o.pending, queued[T]{v: v, subs: o.subs})
	if o.dispatching {
		return false
	}
	o.dispatching = true
	return true
}

// drain delivers queued values until the queue is empty. onRound, if set,
// is called after each round with the value and the number of callbacks
// invoked. o.mu must not be held.
func (o *observers[T]) drain(onRound func(v T, delivered int)) {
	finished := false
	defer func() {
		if finished {
			return
		}
		// A subscriber panicked: drop the queue so later writes still dispatch.
		o.mu.Lock()
		o.pending = nil
		o.dispatching = false
		o.mu.Unlock()
	}()

	for {
		o.mu.Lock()
		if len(o.pending) == 0 {
			o.pending = nil
			o.dispatching = false
			o.mu.Unlock()
			finished = true
			return
		}
		next := o.pending[0]
		o.pending = o.pending[1:]
		o.mu.Unlock()

		n := deliver(next.subs, next.v)
		if onRound != nil {
			onRound(next.v, n)
		}
	}
}

func deliver[T any](round []*subscription[T], v T) (n int) {
	for _, sub := range round {
		if !sub.active.Load() {
			continue
		}
		sub.fn(v)
		n++
	}
	return n
}
