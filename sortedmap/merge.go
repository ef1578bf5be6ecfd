package sortedmap

import (
	"github.com/on-the-ground/persist_ive_go/sortedmap/internal/seq"
	"github.com/on-the-ground/persist_ive_go/shared/optional"
)

// Pair carries the values both sides of a Combine associate with one key.
type Pair[A, B any] = seq.Pair[A, B]

// Combine pairs two maps key by key: the result binds every key present
// in either input to the values each side holds for it, either side
// possibly absent. Both inputs must share the same key ordering.
func Combine[K, A, B any](a Map[K, A], b Map[K, B]) Map[K, Pair[A, B]] {
	return Map[K, Pair[A, B]]{cmp: a.cmp, entries: seq.Combine(a.cmp, a.entries, b.entries)}
}

// Merge combines two maps under f in one linear pass. For every key
// present in either input, f receives the value each side binds (absent
// sides are None) and answers the output binding; None drops the key.
//
// Merge obeys the pointwise law
//
//	Merge(f, a, b).Find(k) == f(a.Find(k), b.Find(k))
//
// for every key present in either input, and is observationally the same
// as Combine followed by filtering, without building the paired map.
// Both inputs must share the same key ordering.
func Merge[K, A, B, C any](
	f func(optional.Value[A], optional.Value[B]) optional.Value[C],
	a Map[K, A],
	b Map[K, B],
) Map[K, C] {
	return Map[K, C]{cmp: a.cmp, entries: seq.Merge(a.cmp, f, a.entries, b.entries)}
}

// Union is the left-biased union: every binding of a, plus the bindings
// of b whose keys a lacks.
func Union[K, V any](a, b Map[K, V]) Map[K, V] {
	return Merge(func(l, r optional.Value[V]) optional.Value[V] {
		return l.Or(r)
	}, a, b)
}

// Inter keeps the keys bound on both sides, with a's values.
func Inter[K, V any](a, b Map[K, V]) Map[K, V] {
	return Merge(func(l, r optional.Value[V]) optional.Value[V] {
		if l.IsSome() && r.IsSome() {
			return l
		}
		return optional.None[V]()
	}, a, b)
}

// Diff keeps the bindings of a whose keys b lacks.
func Diff[K, V any](a, b Map[K, V]) Map[K, V] {
	return Merge(func(l, r optional.Value[V]) optional.Value[V] {
		if r.IsSome() {
			return optional.None[V]()
		}
		return l
	}, a, b)
}
