// Package seq implements the engines behind sortedmap: plain functions over
// slices of entries held in strictly increasing key order. The functions
// never see the public wrapper type; they receive a sequence plus the
// ordering capability and promise to keep the sortedness invariant: given
// sorted input they produce sorted output, with no two equivalent keys.
//
// Sequences are treated as immutable. Every update allocates a fresh slice,
// so a result never shares backing storage with its inputs and prior values
// stay valid forever.
package seq

import "github.com/on-the-ground/persist_ive_go/ordering"

// Entry is one stored key/value association.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Find scans left to right for a key equivalent to k. Sortedness lets the
// scan abort as soon as it passes the position k would occupy, so absence is
// detected without reading the whole sequence.
func Find[K, V any](cmp ordering.Func[K], s []Entry[K, V], k K) (V, bool) {
	for _, e := range s {
		switch c := cmp(k, e.Key); {
		case c < 0:
			// passed the insertion point, k cannot appear later
			var zero V
			return zero, false
		case c == 0:
			return e.Value, true
		}
	}
	var zero V
	return zero, false
}

// Mem reports whether a key equivalent to k is present.
func Mem[K, V any](cmp ordering.Func[K], s []Entry[K, V], k K) bool {
	_, ok := Find(cmp, s, k)
	return ok
}

// Add returns s with k bound to v. If an equivalent key is already present,
// the entry is replaced with the newly supplied key AND value; the stored
// representative of the equivalence class is always the most recent one.
// Otherwise the new entry is spliced in at the unique position that keeps
// the sequence strictly increasing.
func Add[K, V any](cmp ordering.Func[K], s []Entry[K, V], k K, v V) []Entry[K, V] {
	i := 0
	for ; i < len(s); i++ {
		c := cmp(k, s[i].Key)
		if c < 0 {
			break
		}
		if c == 0 {
			out := make([]Entry[K, V], len(s))
			copy(out, s)
			out[i] = Entry[K, V]{Key: k, Value: v}
			return out
		}
	}
	out := make([]Entry[K, V], 0, len(s)+1)
	out = append(out, s[:i]...)
	out = append(out, Entry[K, V]{Key: k, Value: v})
	out = append(out, s[i:]...)
	return out
}

// Remove returns s without the entry whose key is equivalent to k. Removing
// an absent key yields a sequence equal to s.
func Remove[K, V any](cmp ordering.Func[K], s []Entry[K, V], k K) []Entry[K, V] {
	for i, e := range s {
		c := cmp(k, e.Key)
		if c < 0 {
			break
		}
		if c == 0 {
			out := make([]Entry[K, V], 0, len(s)-1)
			out = append(out, s[:i]...)
			out = append(out, s[i+1:]...)
			return out
		}
	}
	return s
}

// Fold is a strict left fold in ascending key order:
// acc = f(kn, vn, ... f(k1, v1, init)).
func Fold[K, V, A any](s []Entry[K, V], init A, f func(k K, v V, acc A) A) A {
	acc := init
	for _, e := range s {
		acc = f(e.Key, e.Value, acc)
	}
	return acc
}

// MapValues rebuilds s with every value replaced by f(value). Keys and their
// order are untouched, so sortedness is preserved for free.
func MapValues[K, A, B any](s []Entry[K, A], f func(A) B) []Entry[K, B] {
	out := make([]Entry[K, B], len(s))
	for i, e := range s {
		out[i] = Entry[K, B]{Key: e.Key, Value: f(e.Value)}
	}
	return out
}

// MapKeyed is MapValues with the key passed alongside the value.
func MapKeyed[K, A, B any](s []Entry[K, A], f func(K, A) B) []Entry[K, B] {
	out := make([]Entry[K, B], len(s))
	for i, e := range s {
		out[i] = Entry[K, B]{Key: e.Key, Value: f(e.Key, e.Value)}
	}
	return out
}
