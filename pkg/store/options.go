package store

import "reflect"

// EqualFunc reports whether two values are equal for the purpose of
// suppressing a notification round.
type EqualFunc func(a, b any) bool

type settings struct {
	name  string
	hooks Hooks
	equal EqualFunc
}

// Option configures a Writable or Derived store.
type Option func(*settings)

// WithName sets the name reported in hook events.
func WithName(name string) Option {
	return func(s *settings) {
		s.name = name
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks Hooks) Option {
	return func(s *settings) {
		s.hooks = hooks
	}
}

// WithEqual installs a custom equality policy. A nil func restores the
// default policy of notifying on every write.
func WithEqual(eq EqualFunc) Option {
	return func(s *settings) {
		s.equal = eq
	}
}

// SkipUnchanged suppresses notification when the new value equals the old
// one. Only comparable dynamic types are compared: slices, maps and funcs
// always notify, and so does NaN.
func SkipUnchanged() Option {
	return WithEqual(SafeEqual)
}

// SafeEqual is the equality used by SkipUnchanged.
func SafeEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	// Structs and arrays with interface fields can still panic on ==.
	switch ta.Kind() {
	case reflect.Struct, reflect.Array:
		defer func() { _ = recover() }()
	}
	return a == b
}

func newSettings(opts []Option) settings {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
