package seq

import "github.com/on-the-ground/persist_ive_go/ordering"

// Equal reports whether two sequences bind the same keys to values the
// supplied predicate accepts. Because both sequences are sorted, the first
// diverging position settles the answer; no reordering or hashing is ever
// needed, which keeps this linear.
func Equal[K, A, B any](cmp ordering.Func[K], eq func(A, B) bool, a []Entry[K, A], b []Entry[K, B]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if cmp(a[i].Key, b[i].Key) != 0 {
			return false
		}
		if !eq(a[i].Value, b[i].Value) {
			return false
		}
	}
	return true
}

// Compare is the lexicographic total order over sorted sequences, values
// ordered by valCmp. The shorter sequence orders first when one is a
// prefix of the other; otherwise the first differing key, then the first
// differing value, decides. Because it is itself a lawful ordering.Func,
// sequences of entries can key further maps.
func Compare[K, V any](cmp ordering.Func[K], valCmp ordering.Func[V], a, b []Entry[K, V]) int {
	i := 0
	for ; i < len(a) && i < len(b); i++ {
		if c := cmp(a[i].Key, b[i].Key); c != 0 {
			return c
		}
		if c := valCmp(a[i].Value, b[i].Value); c != 0 {
			return c
		}
	}
	switch {
	case i < len(b):
		return -1
	case i < len(a):
		return 1
	default:
		return 0
	}
}
