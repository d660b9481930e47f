package model

// Opt is a value that may be absent. Consumers resolve it with Or against a
// named fallback constant instead of treating the zero value as "missing".
type Opt[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value.
func Some[T any](v T) Opt[T] { return Opt[T]{value: v, ok: true} }

// None returns an absent value.
func None[T any]() Opt[T] { return Opt[T]{} }

// Get returns the value and whether it is present.
func (o Opt[T]) Get() (T, bool) { return o.value, o.ok }

// Present reports whether a value is set.
func (o Opt[T]) Present() bool { return o.ok }

// Or returns the value, or fallback when absent.
func (o Opt[T]) Or(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}
