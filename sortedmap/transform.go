package sortedmap

import "github.com/on-the-ground/persist_ive_go/sortedmap/internal/seq"

// Fold reduces the map with a strict left fold in ascending key order.
// Package-level because the accumulator type is independent of the map's.
func Fold[K, V, A any](m Map[K, V], init A, f func(k K, v V, acc A) A) A {
	return seq.Fold(m.entries, init, f)
}

// MapValues returns a map with the same keys, each value replaced by
// f(value). The key order is untouched, so the result shares the input's
// canonical shape.
func MapValues[K, A, B any](m Map[K, A], f func(A) B) Map[K, B] {
	return Map[K, B]{cmp: m.cmp, entries: seq.MapValues(m.entries, f)}
}

// MapKeyed is MapValues with the key passed to the transform.
func MapKeyed[K, A, B any](m Map[K, A], f func(K, A) B) Map[K, B] {
	return Map[K, B]{cmp: m.cmp, entries: seq.MapKeyed(m.entries, f)}
}
