package sortedmap

import (
	"fmt"
	"iter"

	"go.uber.org/multierr"

	"github.com/on-the-ground/persist_ive_go/ordering"
	"github.com/on-the-ground/persist_ive_go/sortedmap/internal/seq"
)

// Entry is one key/value binding of a Map.
type Entry[K, V any] = seq.Entry[K, V]

// Map is a persistent sorted map. The zero Map is not usable; construct
// with New or FromEntries. All methods leave their receiver unchanged.
//
// Every Map carries the comparator it was built with. Binary operations
// (Merge, Combine, Equal, Compare) require both operands to have been
// built with the same ordering; feeding them maps with different orders
// is a caller bug with unspecified results.
type Map[K, V any] struct {
	cmp     ordering.Func[K]
	entries []seq.Entry[K, V]
}

// New returns the empty map over the given key ordering.
func New[K, V any](cmp ordering.Func[K]) Map[K, V] {
	if cmp == nil {
		panic("sortedmap: nil ordering.Func")
	}
	return Map[K, V]{cmp: cmp}
}

// FromEntries builds a map by adding each entry in turn; on equivalent
// keys the last entry wins, like repeated Add.
func FromEntries[K, V any](cmp ordering.Func[K], entries ...Entry[K, V]) Map[K, V] {
	m := New[K, V](cmp)
	for _, e := range entries {
		m = m.Add(e.Key, e.Value)
	}
	return m
}

// Len returns the number of bindings.
func (m Map[K, V]) Len() int {
	return len(m.entries)
}

// IsEmpty reports whether the map has no bindings.
func (m Map[K, V]) IsEmpty() bool {
	return len(m.entries) == 0
}

// Mem reports whether a key equivalent to k is bound.
func (m Map[K, V]) Mem(k K) bool {
	return seq.Mem(m.cmp, m.entries, k)
}

// Find returns the value bound to a key equivalent to k.
func (m Map[K, V]) Find(k K) (V, bool) {
	return seq.Find(m.cmp, m.entries, k)
}

// Add returns a map with k bound to v. An existing equivalent binding is
// replaced, and the newly supplied key becomes the stored representative.
func (m Map[K, V]) Add(k K, v V) Map[K, V] {
	return Map[K, V]{cmp: m.cmp, entries: seq.Add(m.cmp, m.entries, k, v)}
}

// Remove returns a map without any binding for k. Removing an absent key
// returns an equal map.
func (m Map[K, V]) Remove(k K) Map[K, V] {
	return Map[K, V]{cmp: m.cmp, entries: seq.Remove(m.cmp, m.entries, k)}
}

// Entries returns the bindings in ascending key order. The slice is a
// copy; mutating it cannot disturb the map.
func (m Map[K, V]) Entries() []Entry[K, V] {
	out := make([]Entry[K, V], len(m.entries))
	copy(out, m.entries)
	return out
}

// All iterates the bindings in ascending key order.
func (m Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Keys iterates the keys in ascending order.
func (m Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, e := range m.entries {
			if !yield(e.Key) {
				return
			}
		}
	}
}

// Values iterates the values in ascending key order.
func (m Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, e := range m.entries {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Min returns the binding with the least key.
func (m Map[K, V]) Min() (Entry[K, V], bool) {
	if len(m.entries) == 0 {
		return Entry[K, V]{}, false
	}
	return m.entries[0], true
}

// Max returns the binding with the greatest key.
func (m Map[K, V]) Max() (Entry[K, V], bool) {
	if len(m.entries) == 0 {
		return Entry[K, V]{}, false
	}
	return m.entries[len(m.entries)-1], true
}

// Validate re-checks the sortedness invariant and reports every violation
// found. Operations of this package maintain the invariant by
// construction, so Validate exists for tests and for debugging suspect
// comparators, not for production control flow.
func (m Map[K, V]) Validate() error {
	if m.cmp == nil {
		return fmt.Errorf("sortedmap: zero Map, no ordering attached")
	}
	var err error
	for i := 1; i < len(m.entries); i++ {
		if m.cmp(m.entries[i-1].Key, m.entries[i].Key) >= 0 {
			err = multierr.Append(err, fmt.Errorf(
				"sortedmap: entries %d and %d out of order: %v, %v",
				i-1, i, m.entries[i-1].Key, m.entries[i].Key,
			))
		}
	}
	return err
}
