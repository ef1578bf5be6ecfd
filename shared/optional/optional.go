// Package optional provides a minimal explicit-absence carrier.
//
// The containers in this module never signal absence with errors or nil:
// a missing binding is a value of its own. Value[T] is that value, the
// comma-ok pair reified into something that can travel through combinator
// functions and sit inside other data structures.
package optional

// Value holds either a T or nothing.
// The zero Value is None.
type Value[T any] struct {
	val T
	ok  bool
}

// Some wraps a present value.
func Some[T any](v T) Value[T] {
	return Value[T]{val: v, ok: true}
}

// None is the absent value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// FromOk converts a comma-ok pair.
func FromOk[T any](v T, ok bool) Value[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// Get returns the comma-ok view.
func (o Value[T]) Get() (T, bool) {
	return o.val, o.ok
}

// IsSome reports presence.
func (o Value[T]) IsSome() bool {
	return o.ok
}

// OrElse returns the held value, or fallback when absent.
func (o Value[T]) OrElse(fallback T) T {
	if !o.ok {
		return fallback
	}
	return o.val
}

// Or returns o when present, otherwise other. This is the left-biased
// choice used to express union-style merges.
func (o Value[T]) Or(other Value[T]) Value[T] {
	if o.ok {
		return o
	}
	return other
}

// Map transforms the held value, keeping absence absent.
func Map[A, B any](o Value[A], f func(A) B) Value[B] {
	if v, ok := o.Get(); ok {
		return Some(f(v))
	}
	return None[B]()
}
