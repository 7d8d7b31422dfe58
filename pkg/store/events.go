package store

import "time"

// EventType defines the category of a store event.
type EventType string

const (
	EventSet         EventType = "set"
	EventSetSkipped  EventType = "set_skipped" // equality policy suppressed the round
	EventNotify      EventType = "notify"
	EventSubscribe   EventType = "subscribe"
	EventUnsubscribe EventType = "unsubscribe"
)

// Event describes a single observable change on a store.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Store     string    `json:"store"`
	Value     any       `json:"value,omitempty"`

	// Subscribers is the active subscriber count after the change.
	Subscribers int `json:"subscribers"`
}

// Hooks defines callbacks for store observability.
// They run synchronously in the goroutine that caused the event.
type Hooks struct {
	OnSet         func(*Event)
	OnNotify      func(*Event)
	OnSubscribe   func(*Event)
	OnUnsubscribe func(*Event)
}

// MergeHooks combines several hook sets into one that calls each in order.
func MergeHooks(hooks ...Hooks) Hooks {
	chain := func(pick func(Hooks) func(*Event)) func(*Event) {
		var fns []func(*Event)
		for _, h := range hooks {
			if fn := pick(h); fn != nil {
				fns = append(fns, fn)
			}
		}
		if len(fns) == 0 {
			return nil
		}
		return func(e *Event) {
			for _, fn := range fns {
				fn(e)
			}
		}
	}

	return Hooks{
		OnSet:         chain(func(h Hooks) func(*Event) { return h.OnSet }),
		OnNotify:      chain(func(h Hooks) func(*Event) { return h.OnNotify }),
		OnSubscribe:   chain(func(h Hooks) func(*Event) { return h.OnSubscribe }),
		OnUnsubscribe: chain(func(h Hooks) func(*Event) { return h.OnUnsubscribe }),
	}
}

func (h Hooks) emit(fn func(*Event), typ EventType, name string, value any, subscribers int) {
	if fn == nil {
		return
	}
	fn(&Event{
		Timestamp:   time.Now(),
		Type:        typ,
		Store:       name,
		Value:       value,
		Subscribers: subscribers,
	})
}
